// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starfield

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/cosmoform/starfield/astro"
	"github.com/stretchr/testify/assert"
)

func assertOrthonormal(t *testing.T, m Mat3) {
	t.Helper()
	cols := []math32.Vector3{
		math32.Vec3(m[0], m[1], m[2]),
		math32.Vec3(m[3], m[4], m[5]),
		math32.Vec3(m[6], m[7], m[8]),
	}
	for i, c := range cols {
		assert.InDelta(t, 1, c.Length(), 1e-5, "column %d length", i)
	}
	assert.InDelta(t, 0, cols[0].Dot(cols[1]), 1e-5)
	assert.InDelta(t, 0, cols[1].Dot(cols[2]), 1e-5)
	assert.InDelta(t, 0, cols[0].Dot(cols[2]), 1e-5)

	// right-handed: x cross y = z
	z := cols[0].Cross(cols[1])
	assert.InDelta(t, cols[2].X, z.X, 1e-5)
	assert.InDelta(t, cols[2].Y, z.Y, 1e-5)
	assert.InDelta(t, cols[2].Z, z.Z, 1e-5)
}

func TestMat3Identity(t *testing.T) {
	id := Identity3()
	v := math32.Vec3(1, 2, 3)
	r := id.MulVector3(v)
	assert.Equal(t, v, r)
	assert.Equal(t, id, id.Mul(id))
	assert.Equal(t, id, id.Transpose())
}

func TestMat3TransposeInverse(t *testing.T) {
	ob := NewObserver().SetGeodetic(37.4, -122.1, 48)
	m := ob.Matrix()
	prod := m.Mul(m.Transpose())
	id := Identity3()
	for i := range prod {
		assert.InDelta(t, id[i], prod[i], 1e-5, "element %d", i)
	}
}

func TestObserverDefaults(t *testing.T) {
	ob := NewObserver()
	assert.Equal(t, Identity3(), ob.Matrix())
	assert.Equal(t, astro.J2000, ob.JulianDate)
	assert.Equal(t, 1.0, ob.TimeScale)
	assert.False(t, ob.Geodetic)
}

func TestObserverGeodeticOrthonormal(t *testing.T) {
	cases := []struct{ lat, lon, hdg float32 }{
		{0, 0, 0},
		{45, 0, 0},
		{-33.9, 151.2, 90},
		{89.9, 10, 180},
		{-89.9, -170, 270},
		{51.5, -0.13, 33.3},
	}
	for _, c := range cases {
		ob := NewObserver().SetGeodetic(c.lat, c.lon, c.hdg)
		assertOrthonormal(t, ob.Matrix())
	}
}

func TestObserverEquatorZeroHeading(t *testing.T) {
	// At lat=0 lon=0 with zero heading: right = ECEF east (0,1,0),
	// forward = ECEF north (0,0,1), up = radial (1,0,0).
	m := NewObserver().SetGeodetic(0, 0, 0).Matrix()
	want := Mat3FromCols(
		math32.Vec3(0, 1, 0),
		math32.Vec3(0, 0, 1),
		math32.Vec3(1, 0, 0),
	)
	for i := range m {
		assert.InDelta(t, want[i], m[i], 1e-6, "element %d", i)
	}
}

func TestObserverHeading(t *testing.T) {
	// Heading 90: forward swings from north to east.
	m := NewObserver().SetGeodetic(0, 0, 90).Matrix()
	forward := math32.Vec3(m[3], m[4], m[5])
	east := math32.Vec3(0, 1, 0)
	assert.InDelta(t, east.X, forward.X, 1e-6)
	assert.InDelta(t, east.Y, forward.Y, 1e-6)
	assert.InDelta(t, east.Z, forward.Z, 1e-6)
}

func TestObserverNorthPoleUp(t *testing.T) {
	m := NewObserver().SetGeodetic(90, 0, 0).Matrix()
	up := math32.Vec3(m[6], m[7], m[8])
	assert.InDelta(t, 0, up.X, 1e-6)
	assert.InDelta(t, 0, up.Y, 1e-6)
	assert.InDelta(t, 1, up.Z, 1e-6)
}

func TestObserverLiveGeodeticEdits(t *testing.T) {
	ob := NewObserver().SetGeodetic(10, 20, 0)
	m1 := ob.Matrix()
	ob.Latitude = 50
	m2 := ob.Matrix()
	assert.NotEqual(t, m1, m2)
}

func TestObserverSetMatrix(t *testing.T) {
	ob := NewObserver().SetGeodetic(10, 20, 30)
	ob.SetMatrix(Identity3())
	assert.False(t, ob.Geodetic)
	assert.Equal(t, Identity3(), ob.Matrix())
}

func TestEffectiveJulianDate(t *testing.T) {
	ob := NewObserver()
	assert.Equal(t, astro.J2000, ob.EffectiveJulianDate(0))
	assert.InDelta(t, astro.J2000+1, ob.EffectiveJulianDate(86400), 1e-12)

	ob.TimeScale = 0
	assert.Equal(t, astro.J2000, ob.EffectiveJulianDate(1e9))

	ob.TimeScale = 86400 // one simulated day per wall second
	assert.InDelta(t, astro.J2000+2, ob.EffectiveJulianDate(2), 1e-9)
}
