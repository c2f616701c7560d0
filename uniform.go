// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starfield

import (
	"cogentcore.org/core/math32"
	"github.com/cosmoform/starfield/astro"
)

// UniformSize is the byte size of the packed per-frame sky uniform:
// a mat3x3<f32> occupying three vec4-aligned columns (48 bytes), one
// float32 sidereal time at offset 48, and padding to a 16-byte multiple.
const UniformSize = 64

// Uniform is the per-frame GPU payload for the sky: the world-to-ECEF
// rotation and the current Greenwich Mean Sidereal Time in radians.
// Both fields are always recomputed together, never partially updated,
// so the rotation and the time can never be out of skew.
type Uniform struct {

	// WorldToECEF is the rotation from world axes to ECEF axes.
	WorldToECEF Mat3

	// Sidereal is the Greenwich Mean Sidereal Time, in radians.
	Sidereal float32
}

// BuildUniform computes the sky uniform for the given observer snapshot
// and elapsed simulated seconds. It is a pure function of its inputs:
// the same observer state and elapsed time always produce the same
// uniform, bit for bit.
func BuildUniform(ob *Observer, elapsedSeconds float64) Uniform {
	jd := ob.EffectiveJulianDate(elapsedSeconds)
	return Uniform{
		WorldToECEF: ob.Matrix(),
		Sidereal:    math32.DegToRad(float32(astro.MeanSiderealTime(jd))),
	}
}

// Pack encodes the uniform in WGSL uniform-buffer layout, with each
// matrix column padded to a vec4 boundary. The result is exactly
// [UniformSize] bytes when viewed as bytes.
func (u *Uniform) Pack() [UniformSize / 4]float32 {
	var p [UniformSize / 4]float32
	for c := 0; c < 3; c++ {
		copy(p[4*c:4*c+3], u.WorldToECEF[3*c:3*c+3])
	}
	p[12] = u.Sidereal
	return p
}
