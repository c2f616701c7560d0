// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starfield

import (
	"slices"

	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
)

// PhaseItem is one draw registered in a RenderPhase, keyed by the
// distance of the drawn content from the viewer.
type PhaseItem struct {

	// Distance is the sort key: larger distances draw earlier.
	Distance float32

	// Draw encodes the item's commands into the render pass.
	Draw func(rp *wgpu.RenderPassEncoder)
}

// RenderPhase is an ordered list of draws for one view's render pass.
// Items run back to front, so content at the maximum distance (the sky)
// is painted first and everything nearer draws over it.
type RenderPhase struct {
	Items []PhaseItem
}

// Add registers a draw with the given distance sort key.
func (ph *RenderPhase) Add(distance float32, draw func(rp *wgpu.RenderPassEncoder)) {
	ph.Items = append(ph.Items, PhaseItem{Distance: distance, Draw: draw})
}

// Sort orders the items back to front. The sort is stable, so items at
// equal distance keep their registration order.
func (ph *RenderPhase) Sort() {
	slices.SortStableFunc(ph.Items, func(a, b PhaseItem) int {
		switch {
		case a.Distance > b.Distance:
			return -1
		case a.Distance < b.Distance:
			return 1
		}
		return 0
	})
}

// Run sorts the phase and encodes all items into the render pass,
// then clears the phase for the next frame.
func (ph *RenderPhase) Run(rp *wgpu.RenderPassEncoder) {
	ph.Sort()
	for i := range ph.Items {
		ph.Items[i].Draw(rp)
	}
	ph.Clear()
}

// Clear drops all items, retaining capacity.
func (ph *RenderPhase) Clear() {
	ph.Items = ph.Items[:0]
}

// BackgroundDistance is the sort key used for the sky draw: the maximum
// finite distance, guaranteeing it sorts behind all ordinary geometry.
const BackgroundDistance = math32.MaxFloat32
