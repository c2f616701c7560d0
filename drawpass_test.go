// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starfield

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestDrawPassUnpreparedSkips(t *testing.T) {
	// No Extract, no Prepare: Render must skip without touching the
	// encoder or the GPU. A nil pass encoder proves nothing is encoded.
	dp := NewDrawPass(nil)
	view := &View{Format: wgpu.TextureFormatBGRA8Unorm, Samples: 1}
	assert.False(t, dp.Render(nil, view))
}

func TestDrawPassUnboundViewSkips(t *testing.T) {
	dp := &DrawPass{prepared: true}

	// view uniform buffer missing
	view := &View{Format: wgpu.TextureFormatBGRA8Unorm, Samples: 1}
	assert.False(t, dp.Render(nil, view))

	// nil view
	assert.False(t, dp.Render(nil, nil))
}

func TestDrawPassPrepareWithoutExtract(t *testing.T) {
	dp := NewDrawPass(nil)
	assert.NoError(t, dp.Prepare(0))
	assert.False(t, dp.Prepared())
}

func TestDrawPassExtractSnapshot(t *testing.T) {
	ob := NewObserver().SetGeodetic(10, 20, 30)
	dp := NewDrawPass(nil)
	dp.Extract(ob)

	// later host mutations must not affect the snapshot
	ob.Latitude = 80
	assert.Equal(t, float32(10), dp.observer.Latitude)
}

func TestDrawPassEndFrameResets(t *testing.T) {
	dp := &DrawPass{prepared: true}
	dp.EndFrame()
	assert.False(t, dp.Prepared())
}

func TestDrawPassQueueRegistersBackground(t *testing.T) {
	dp := NewDrawPass(nil)
	var ph RenderPhase
	view := &View{Format: wgpu.TextureFormatBGRA8Unorm, Samples: 1}
	dp.Queue(&ph, view)
	assert.Equal(t, 1, len(ph.Items))
	assert.Equal(t, float32(BackgroundDistance), ph.Items[0].Distance)
}
