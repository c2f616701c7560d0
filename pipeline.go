// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starfield

import (
	_ "embed"
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed shader.wgsl
var shaderSource string

// Fixed binding slots of the sky bind group. The shader program must
// use the same slots.
const (
	// ViewBinding is the host-owned per-view uniform, dynamically offset.
	ViewBinding = 0

	// SkyBinding is the per-frame sky uniform.
	SkyBinding = 1

	// StarBinding is the static read-only star storage buffer.
	StarBinding = 2
)

// DepthFormat is the depth attachment format all pipeline variants are
// built against.
const DepthFormat = wgpu.TextureFormatDepth32Float

// VariantKey selects a specialized pipeline variant for one combination
// of color target format and multisample count.
type VariantKey struct {
	Format  wgpu.TextureFormat
	Samples int
}

// Validate returns an error if the key does not describe a usable
// render target. Specialization must never be attempted with an
// invalid key.
func (k VariantKey) Validate() error {
	if k.Format == wgpu.TextureFormatUndefined {
		return fmt.Errorf("starfield.VariantKey: undefined color format")
	}
	switch k.Samples {
	case 1, 2, 4, 8, 16:
		return nil
	}
	return fmt.Errorf("starfield.VariantKey: invalid sample count %d", k.Samples)
}

// Pipeline owns the GPU-resident star buffer, the per-frame sky uniform
// buffer, the bind group layout, and a cache of render pipeline variants
// specialized by output format and sample count. Variants are created
// lazily and never evicted; the key space is bounded.
//
// The star buffer is written exactly once, at construction, and is
// read-only for the lifetime of the pipeline.
type Pipeline struct {

	// GPU is the device this pipeline allocates on.
	GPU *GPU

	// AlphaBlend enables straight alpha blending in all variants, for
	// dimming stars near a horizon glow. Must be set before the first
	// Specialize call; it is baked into every variant.
	AlphaBlend bool

	nStars     int
	starBuffer *wgpu.Buffer
	uniform    *wgpu.Buffer
	layout     *wgpu.BindGroupLayout
	pipeLayout *wgpu.PipelineLayout
	module     *wgpu.ShaderModule
	variants   map[VariantKey]*wgpu.RenderPipeline
}

// NewPipeline uploads the converted catalog to a read-only storage
// buffer and creates the fixed bind group layout and shader module.
// A nil GPU or device is a fatal startup condition.
func NewPipeline(gp *GPU, ct *Catalog) (*Pipeline, error) {
	if gp == nil || gp.Device == nil {
		err := fmt.Errorf("starfield.NewPipeline: no GPU device")
		return nil, errors.Log(err)
	}
	sp := &Pipeline{GPU: gp, nStars: ct.NumStars()}
	sp.variants = make(map[VariantKey]*wgpu.RenderPipeline)

	var err error
	sp.starBuffer, err = gp.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "starfield.Stars",
		Contents: wgpu.ToBytes(ct.Data()),
		Usage:    wgpu.BufferUsageStorage,
	})
	if errors.Log(err) != nil {
		return nil, err
	}

	sp.uniform, err = gp.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "starfield.SkyUniform",
		Size:  UniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if errors.Log(err) != nil {
		return nil, err
	}

	// MinBindingSize on the star binding makes a shader compiled against
	// a different catalog size fail at bind time instead of reading
	// out of bounds.
	sp.layout, err = gp.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "starfield.Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    ViewBinding,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:             wgpu.BufferBindingTypeUniform,
					HasDynamicOffset: true,
				},
			},
			{
				Binding:    SkyBinding,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: UniformSize,
				},
			},
			{
				Binding:    StarBinding,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeReadOnlyStorage,
					MinBindingSize: uint64(ct.ByteSize()),
				},
			},
		},
	})
	if errors.Log(err) != nil {
		return nil, err
	}

	sp.pipeLayout, err = gp.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "starfield.Pipeline",
		BindGroupLayouts: []*wgpu.BindGroupLayout{sp.layout},
	})
	if errors.Log(err) != nil {
		return nil, err
	}

	sp.module, err = gp.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "starfield.Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: shaderSource,
		},
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return sp, nil
}

// NumStars returns the number of stars the pipeline draws.
func (sp *Pipeline) NumStars() int { return sp.nStars }

// VertexCount returns the number of procedural vertices in one draw:
// 6 per star, forming a camera-facing quad of two triangles.
func (sp *Pipeline) VertexCount() uint32 { return uint32(6 * sp.nStars) }

// NumVariants returns the number of specialized pipeline variants
// created so far.
func (sp *Pipeline) NumVariants() int { return len(sp.variants) }

// Specialize returns the render pipeline variant for the given key,
// creating and caching it on first use. At most one variant exists per
// distinct key. The fixed state shared by all variants: triangle list
// topology, CCW front face, no culling (the sky dome encloses the
// viewer, so either winding may be visible), depth compare Always with
// depth writes off.
func (sp *Pipeline) Specialize(key VariantKey) (*wgpu.RenderPipeline, error) {
	if err := key.Validate(); err != nil {
		return nil, errors.Log(err)
	}
	if pl, ok := sp.variants[key]; ok {
		return pl, nil
	}
	target := wgpu.ColorTargetState{
		Format:    key.Format,
		WriteMask: wgpu.ColorWriteMaskAll,
	}
	if sp.AlphaBlend {
		target.Blend = &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		}
	} else {
		target.Blend = &wgpu.BlendStateReplace
	}
	pl, err := sp.GPU.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  fmt.Sprintf("starfield.Variant: %s x%d", key.Format.String(), key.Samples),
		Layout: sp.pipeLayout,
		Vertex: wgpu.VertexState{
			Module:     sp.module,
			EntryPoint: "vertex",
		},
		Fragment: &wgpu.FragmentState{
			Module:     sp.module,
			EntryPoint: "fragment",
			Targets:    []wgpu.ColorTargetState{target},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: false,
			DepthCompare:      wgpu.CompareFunctionAlways,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(key.Samples),
			Mask:  0xFFFFFFFF,
		},
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	sp.variants[key] = pl
	return pl, nil
}

// WriteUniform uploads the packed sky uniform to the GPU. The whole
// uniform is always written as one unit.
func (sp *Pipeline) WriteUniform(u *Uniform) error {
	p := u.Pack()
	return errors.Log(sp.GPU.Queue.WriteBuffer(sp.uniform, 0, wgpu.ToBytes(p[:])))
}

// BindGroup builds a fresh binding set for the given view: the view
// uniform at the dynamic-offset slot, the sky uniform, and the star
// storage buffer. The caller supplies the dynamic offset at
// SetBindGroup time and releases the group after the frame.
func (sp *Pipeline) BindGroup(view *View) (*wgpu.BindGroup, error) {
	bg, err := sp.GPU.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "starfield.BindGroup",
		Layout: sp.layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: ViewBinding,
				Buffer:  view.ViewUniform,
				Offset:  0,
				Size:    view.ViewSize, // one element; offset is dynamic
			},
			{
				Binding: SkyBinding,
				Buffer:  sp.uniform,
				Offset:  0,
				Size:    UniformSize,
			},
			{
				Binding: StarBinding,
				Buffer:  sp.starBuffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return bg, nil
}

func (sp *Pipeline) Release() {
	for _, pl := range sp.variants {
		pl.Release()
	}
	sp.variants = nil
	if sp.module != nil {
		sp.module.Release()
		sp.module = nil
	}
	if sp.pipeLayout != nil {
		sp.pipeLayout.Release()
		sp.pipeLayout = nil
	}
	if sp.layout != nil {
		sp.layout.Release()
		sp.layout = nil
	}
	if sp.uniform != nil {
		sp.uniform.Release()
		sp.uniform = nil
	}
	if sp.starBuffer != nil {
		sp.starBuffer.Release()
		sp.starBuffer = nil
	}
}
