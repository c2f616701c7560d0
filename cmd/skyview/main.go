// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command skyview opens a window and renders the night sky for a
// configurable observer position and time, with the stars sweeping
// across the sky at an adjustable rate.
package main

import (
	"flag"
	"log/slog"
	"runtime"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/cosmoform/starfield"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

// viewUniform is the per-view camera payload, laid out to match the
// shader's View struct: two column-major matrices and the eye position.
type viewUniform struct {
	View       math32.Matrix4
	Projection math32.Matrix4
	WorldPos   math32.Vector3
	pad        float32
}

func main() {
	cfgPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := LoadConfig(*cfgPath)
	if err != nil {
		slog.Error("skyview: config", "err", err)
		return
	}

	if err := glfw.Init(); err != nil {
		errors.Log(err)
		return
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	width, height := 1024, 768
	window, err := glfw.CreateWindow(width, height, "skyview", nil, nil)
	if err != nil {
		errors.Log(err)
		return
	}
	defer window.Destroy()

	surface := starfield.Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	gp, err := starfield.NewGPU(surface)
	if err != nil {
		return
	}
	defer gp.Release()

	caps := surface.GetCapabilities(gp.Adapter)
	format := caps.Formats[0]
	configureSurface := func(w, h int) {
		surface.Configure(gp.Adapter, gp.Device, &wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      format,
			Width:       uint32(w),
			Height:      uint32(h),
			PresentMode: wgpu.PresentModeFifo,
			AlphaMode:   caps.AlphaModes[0],
		})
	}
	configureSurface(width, height)

	var depth *wgpu.Texture
	var depthView *wgpu.TextureView
	makeDepth := func(w, h int) {
		if depthView != nil {
			depthView.Release()
		}
		if depth != nil {
			depth.Release()
		}
		depth = errors.Log1(gp.Device.CreateTexture(&wgpu.TextureDescriptor{
			Label:         "skyview.Depth",
			Size:          wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     wgpu.TextureDimension2D,
			Format:        starfield.DepthFormat,
			Usage:         wgpu.TextureUsageRenderAttachment,
		}))
		depthView = errors.Log1(depth.CreateView(nil))
	}
	makeDepth(width, height)

	window.SetSizeCallback(func(w *glfw.Window, newW, newH int) {
		if newW == 0 || newH == 0 {
			return
		}
		width, height = newW, newH
		configureSurface(width, height)
		makeDepth(width, height)
	})

	ct, err := starfield.NewCatalog()
	if err != nil {
		return
	}
	sp, err := starfield.NewPipeline(gp, ct)
	if err != nil {
		return
	}
	sp.AlphaBlend = cfg.AlphaBlend
	defer sp.Release()

	ob := starfield.NewObserver().SetGeodetic(cfg.Latitude, cfg.Longitude, cfg.Heading)
	if cfg.JulianDate != 0 {
		ob.JulianDate = cfg.JulianDate
	}
	ob.TimeScale = cfg.TimeScale

	dp := starfield.NewDrawPass(sp)
	var phase starfield.RenderPhase

	// one slot of per-view uniform data, at a device-aligned offset
	viewSize := len(wgpu.ToBytes([]viewUniform{{}}))
	viewSlot := gp.UniformAlign(viewSize)
	viewBuf, err := gp.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "skyview.ViewUniform",
		Size:  uint64(viewSlot),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if errors.Log(err) != nil {
		return
	}
	defer viewBuf.Release()

	view := &starfield.View{
		Format:      format,
		Samples:     1,
		ViewUniform: viewBuf,
		ViewOffset:  0,
		ViewSize:    uint64(viewSize),
	}

	writeCamera := func() {
		// camera at the world origin, looking north, slightly above the
		// horizon; world axes are X east, Y north, Z up
		eye := math32.Vec3(0, 0, 0)
		target := math32.Vec3(0, 1, 0.35)
		var lookq math32.Quat
		lookq.SetFromRotationMatrix(math32.NewLookAt(eye, target, math32.Vec3(0, 0, 1)))
		var cam math32.Matrix4
		cam.SetTransform(eye, lookq, math32.Vec3(1, 1, 1))
		vm, _ := cam.Inverse()

		var vu viewUniform
		vu.View.CopyFrom(vm)
		aspect := float32(width) / float32(height)
		vu.Projection.SetPerspective(70, aspect, 0.1, 2e6)
		vu.WorldPos = eye
		errors.Log(gp.Queue.WriteBuffer(viewBuf, 0, wgpu.ToBytes([]viewUniform{vu})))
	}
	writeCamera()

	start := time.Now()
	renderFrame := func() {
		tex, err := surface.GetCurrentTexture()
		if err != nil {
			// stale swapchain, e.g. after a resize race
			configureSurface(width, height)
			return
		}
		defer tex.Release()
		texView, err := tex.CreateView(nil)
		if errors.Log(err) != nil {
			return
		}
		defer texView.Release()

		writeCamera()
		dp.Extract(ob)
		if err := dp.Prepare(time.Since(start).Seconds()); err != nil {
			return
		}
		dp.Queue(&phase, view)

		encoder, err := gp.Device.CreateCommandEncoder(nil)
		if errors.Log(err) != nil {
			return
		}
		defer encoder.Release()
		rp := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
			ColorAttachments: []wgpu.RenderPassColorAttachment{{
				View:       texView,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0, G: 0, B: 0.01, A: 1},
			}},
			DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
				View:            depthView,
				DepthLoadOp:     wgpu.LoadOpClear,
				DepthStoreOp:    wgpu.StoreOpStore,
				DepthClearValue: 1,
			},
		})
		phase.Run(rp)
		rp.End()
		rp.Release()

		cmd, err := encoder.Finish(nil)
		if errors.Log(err) != nil {
			return
		}
		gp.Queue.Submit(cmd)
		cmd.Release()
		surface.Present()
		dp.EndFrame()
	}

	fpsTicker := time.NewTicker(time.Second / 60)
	defer fpsTicker.Stop()
	for !window.ShouldClose() {
		<-fpsTicker.C
		glfw.PollEvents()
		renderFrame()
	}
}
