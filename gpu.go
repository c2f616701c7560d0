// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starfield

import (
	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug enables extra logging of GPU configuration.
var Debug = false

var theInstance *wgpu.Instance

// Instance returns the global WebGPU instance, creating it on first use.
func Instance() *wgpu.Instance {
	if theInstance == nil {
		theInstance = wgpu.CreateInstance(nil)
	}
	return theInstance
}

// GPU holds the WebGPU adapter and device used for sky rendering,
// along with the device limits needed for buffer alignment.
type GPU struct {

	// Adapter is the physical GPU adapter.
	Adapter *wgpu.Adapter

	// Device is the logical device, used for all resource creation.
	Device *wgpu.Device

	// Queue is the command queue of Device.
	Queue *wgpu.Queue

	// Limits has the adapter limits, e.g., alignment factors.
	Limits wgpu.SupportedLimits
}

// NewGPU requests an adapter compatible with the given surface (which
// may be nil for offscreen use) and a device on it. A missing adapter
// or device is a fatal startup condition: there is nothing to retry.
func NewGPU(surface *wgpu.Surface) (*GPU, error) {
	gp := &GPU{}
	opts := &wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	}
	adapter, err := Instance().RequestAdapter(opts)
	if errors.Log(err) != nil {
		return nil, err
	}
	gp.Adapter = adapter
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "starfield",
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	gp.Device = device
	gp.Queue = device.GetQueue()
	gp.Limits = adapter.GetLimits()
	return gp, nil
}

// UniformAlign rounds size up to the device's minimum uniform buffer
// offset alignment, for allocating dynamically-offset uniform slots.
func (gp *GPU) UniformAlign(size int) int {
	align := int(gp.Limits.Limits.MinUniformBufferOffsetAlignment)
	if align <= 1 {
		return size
	}
	return align * ((size + align - 1) / align)
}

func (gp *GPU) Release() {
	if gp.Device != nil {
		gp.Device.Release()
		gp.Device = nil
	}
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
}
