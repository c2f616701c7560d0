// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starfield

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// View describes one active render target (e.g., one window or one eye)
// for the sky draw. The view uniform buffer is owned by the host; the
// sky binds it with a dynamic offset supplied by the host's per-view
// uniform allocator.
type View struct {

	// Format is the color target format of this view.
	Format wgpu.TextureFormat

	// Samples is the multisample count of this view.
	Samples int

	// ViewUniform is the host-owned uniform buffer holding per-view data.
	// Nil until the host populates it for the frame.
	ViewUniform *wgpu.Buffer

	// ViewOffset is the dynamic byte offset of this view's data within
	// ViewUniform.
	ViewOffset uint32

	// ViewSize is the byte size of one view's uniform data.
	ViewSize uint64
}

// bound reports whether the view's uniform binding is populated.
func (v *View) bound() bool {
	return v != nil && v.ViewUniform != nil && v.ViewSize > 0
}

// DrawPass orchestrates the per-frame sky rendering in ordered phases:
// Extract copies an observer snapshot into the pass, Prepare computes
// and uploads the sky uniform, Queue registers the draw into a view's
// render phase, and EndFrame resets per-frame state. The engine's frame
// loop provides the ordering; the pass has no threads or locks of its
// own.
type DrawPass struct {

	// Pipe is the sky pipeline this pass draws with.
	Pipe *Pipeline

	// observer is the render-side snapshot, copied in Extract.
	observer Observer

	// extracted is true once an observer snapshot exists.
	extracted bool

	// prepared is true when the sky uniform has been uploaded this frame.
	prepared bool
}

// NewDrawPass returns a DrawPass drawing with the given pipeline.
func NewDrawPass(sp *Pipeline) *DrawPass {
	return &DrawPass{Pipe: sp}
}

// Extract copies a snapshot of the observer into the pass. Must be
// called before Prepare each frame; the observer itself is never
// retained, so the host may mutate it freely between frames.
func (dp *DrawPass) Extract(ob *Observer) {
	dp.observer = *ob
	dp.extracted = true
}

// Prepare computes the sky uniform from the extracted observer snapshot
// and the elapsed simulated seconds, and uploads it. Without a snapshot
// the frame is left unprepared and all views skip the sky.
func (dp *DrawPass) Prepare(elapsedSeconds float64) error {
	dp.prepared = false
	if !dp.extracted {
		return nil
	}
	u := BuildUniform(&dp.observer, elapsedSeconds)
	err := dp.Pipe.WriteUniform(&u)
	if err != nil {
		return err
	}
	dp.prepared = true
	return nil
}

// Prepared reports whether the sky uniform has been uploaded this frame.
func (dp *DrawPass) Prepared() bool { return dp.prepared }

// Queue registers the sky draw for the given view into its render
// phase, keyed at [BackgroundDistance] so it sorts behind all ordinary
// geometry.
func (dp *DrawPass) Queue(ph *RenderPhase, view *View) {
	ph.Add(BackgroundDistance, func(rp *wgpu.RenderPassEncoder) {
		dp.Render(rp, view)
	})
}

// Render issues the single draw covering the whole catalog for one
// view. If the view's uniform binding or this frame's sky uniform is
// not populated, the draw is skipped silently for this frame: absence
// is a normal transient condition during startup or view creation and
// self-heals once bindings appear. Reports whether a draw was issued.
func (dp *DrawPass) Render(rp *wgpu.RenderPassEncoder, view *View) bool {
	if !dp.prepared || !view.bound() {
		slog.Debug("starfield: view bindings not populated, skipping frame")
		return false
	}
	pl, err := dp.Pipe.Specialize(VariantKey{Format: view.Format, Samples: view.Samples})
	if err != nil {
		return false
	}
	bg, err := dp.Pipe.BindGroup(view)
	if err != nil {
		return false
	}
	rp.SetPipeline(pl)
	rp.SetBindGroup(0, bg, []uint32{view.ViewOffset})
	rp.Draw(dp.Pipe.VertexCount(), 1, 0, 0)
	bg.Release()
	return true
}

// EndFrame resets the per-frame state at the frame boundary.
func (dp *DrawPass) EndFrame() {
	dp.prepared = false
}
