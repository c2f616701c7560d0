// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starfield

import (
	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// RenderTexture is an offscreen render target: a color texture plus a
// depth texture, both sized together, usable in place of a surface
// texture for headless rendering.
type RenderTexture struct {
	GPU *GPU

	// Format is the color texture format.
	Format wgpu.TextureFormat

	// Samples is the multisample count for both attachments.
	Samples uint32

	Width  uint32
	Height uint32

	// ClearColor is used by BeginRenderPass when clearing.
	ClearColor wgpu.Color

	color     *wgpu.Texture
	colorView *wgpu.TextureView
	depth     *wgpu.Texture
	depthView *wgpu.TextureView
}

// NewRenderTexture returns an offscreen target with the given color
// format and size, single sampled, with a black clear color.
// The depth attachment always uses [DepthFormat].
func NewRenderTexture(gp *GPU, format wgpu.TextureFormat, width, height uint32) (*RenderTexture, error) {
	rt := &RenderTexture{
		GPU:        gp,
		Format:     format,
		Samples:    1,
		ClearColor: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
	}
	if err := rt.SetSize(width, height); err != nil {
		return nil, err
	}
	return rt, nil
}

// SetSize allocates (or reallocates) the color and depth textures at
// the given pixel size. No-op if the size is unchanged.
func (rt *RenderTexture) SetSize(width, height uint32) error {
	if rt.color != nil && rt.Width == width && rt.Height == height {
		return nil
	}
	rt.release()
	rt.Width = width
	rt.Height = height

	size := wgpu.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1}
	color, err := rt.GPU.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "starfield.RenderTexture.color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   rt.Samples,
		Dimension:     wgpu.TextureDimension2D,
		Format:        rt.Format,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
	})
	if errors.Log(err) != nil {
		return err
	}
	cv, err := color.CreateView(nil)
	if errors.Log(err) != nil {
		color.Release()
		return err
	}
	depth, err := rt.GPU.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "starfield.RenderTexture.depth",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   rt.Samples,
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if errors.Log(err) != nil {
		cv.Release()
		color.Release()
		return err
	}
	dv, err := depth.CreateView(nil)
	if errors.Log(err) != nil {
		depth.Release()
		cv.Release()
		color.Release()
		return err
	}
	rt.color = color
	rt.colorView = cv
	rt.depth = depth
	rt.depthView = dv
	return nil
}

// ColorView returns the color attachment view.
func (rt *RenderTexture) ColorView() *wgpu.TextureView { return rt.colorView }

// DepthView returns the depth attachment view.
func (rt *RenderTexture) DepthView() *wgpu.TextureView { return rt.depthView }

// ColorTexture returns the color texture, e.g. for readback copies.
func (rt *RenderTexture) ColorTexture() *wgpu.Texture { return rt.color }

// VariantKey returns the pipeline variant matching this target.
func (rt *RenderTexture) VariantKey() VariantKey {
	return VariantKey{Format: rt.Format, Samples: int(rt.Samples)}
}

// BeginRenderPass starts a render pass targeting this texture,
// clearing color to ClearColor and depth to 1.
func (rt *RenderTexture) BeginRenderPass(encoder *wgpu.CommandEncoder) *wgpu.RenderPassEncoder {
	return encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       rt.colorView,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: rt.ClearColor,
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            rt.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1,
		},
	})
}

func (rt *RenderTexture) release() {
	if rt.depthView != nil {
		rt.depthView.Release()
		rt.depthView = nil
	}
	if rt.depth != nil {
		rt.depth.Release()
		rt.depth = nil
	}
	if rt.colorView != nil {
		rt.colorView.Release()
		rt.colorView = nil
	}
	if rt.color != nil {
		rt.color.Release()
		rt.color = nil
	}
}

// Release frees the textures and views.
func (rt *RenderTexture) Release() {
	rt.release()
}
