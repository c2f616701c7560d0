// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starfield

import (
	"cogentcore.org/core/math32"
	"github.com/cosmoform/starfield/astro"
)

// Mat3 is a 3x3 rotation matrix in column-major order, matching the
// column layout of a WGSL mat3x3<f32>: m[0..2] is the first column.
type Mat3 [9]float32

// Identity3 returns the identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromCols returns the matrix with the given column vectors.
func Mat3FromCols(x, y, z math32.Vector3) Mat3 {
	return Mat3{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
	}
}

// Mul returns m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for c := 0; c < 3; c++ {
		for w := 0; w < 3; w++ {
			r[3*c+w] = m[w]*o[3*c] + m[3+w]*o[3*c+1] + m[6+w]*o[3*c+2]
		}
	}
	return r
}

// Transpose returns the transposed matrix, which for a rotation is
// also its inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// MulVector3 returns m times v.
func (m Mat3) MulVector3(v math32.Vector3) math32.Vector3 {
	return math32.Vec3(
		m[0]*v.X+m[3]*v.Y+m[6]*v.Z,
		m[1]*v.X+m[4]*v.Y+m[7]*v.Z,
		m[2]*v.X+m[5]*v.Y+m[8]*v.Z,
	)
}

// Observer maps the application's world coordinate space to celestial
// coordinates. It holds the rotation from world axes to Earth-Centered-
// Earth-Fixed axes, the Julian Date at simulated time zero, and the scale
// between simulated seconds and real-world time.
//
// An Observer is created once by the host application and may be mutated
// at any time (for example to move the virtual observer); the draw pass
// takes a snapshot of it each frame and never retains a reference.
type Observer struct {

	// WorldToECEF is the rotation from world axes to ECEF axes.
	// Used directly when Geodetic is false.
	WorldToECEF Mat3

	// Geodetic derives WorldToECEF from Latitude, Longitude and Heading
	// on every query, so that live edits of those fields take effect
	// immediately.
	Geodetic bool

	// Latitude is the geodetic latitude of the world origin, in degrees.
	Latitude float32

	// Longitude is the geodetic longitude of the world origin, in degrees.
	Longitude float32

	// Heading is the azimuth of the world +Y axis, in degrees clockwise
	// from north.
	Heading float32

	// JulianDate is the Julian Date at simulated time zero.
	// Defaults to 2451545.0, noon UTC on January 1st, 2000 (J2000).
	JulianDate float64

	// TimeScale is the scale factor between simulated time and real-world
	// time. Defaults to 1.0. Set to 0.0 to freeze the stars, or to large
	// values to have them sweep quickly across the sky.
	TimeScale float64
}

// NewObserver returns an Observer with an identity world-to-ECEF mapping,
// the J2000 epoch as time origin, and a time scale of 1.
func NewObserver() *Observer {
	return &Observer{
		WorldToECEF: Identity3(),
		JulianDate:  astro.J2000,
		TimeScale:   1,
	}
}

// SetGeodetic places the world origin at the given geodetic latitude and
// longitude (degrees), with the world +Y axis pointing at the given
// heading (degrees clockwise from north), and switches the observer to
// geodetic mode.
func (ob *Observer) SetGeodetic(latitude, longitude, heading float32) *Observer {
	ob.Latitude = latitude
	ob.Longitude = longitude
	ob.Heading = heading
	ob.Geodetic = true
	return ob
}

// SetMatrix sets an explicit world-to-ECEF rotation and switches the
// observer out of geodetic mode.
func (ob *Observer) SetMatrix(m Mat3) *Observer {
	ob.WorldToECEF = m
	ob.Geodetic = false
	return ob
}

// Matrix returns the current world-to-ECEF rotation. In geodetic mode it
// is rederived from the live latitude, longitude and heading: rotation by
// longitude and latitude places the local tangent frame on the ellipsoid,
// then the heading rotates it about the local vertical.
//
// World axes are X = right (east at zero heading), Y = forward (north at
// zero heading), Z = up.
func (ob *Observer) Matrix() Mat3 {
	if !ob.Geodetic {
		return ob.WorldToECEF
	}
	sinLat, cosLat := math32.Sincos(math32.DegToRad(ob.Latitude))
	sinLon, cosLon := math32.Sincos(math32.DegToRad(ob.Longitude))
	sinHdg, cosHdg := math32.Sincos(math32.DegToRad(ob.Heading))

	east := math32.Vec3(-sinLon, cosLon, 0)
	north := math32.Vec3(-sinLat*cosLon, -sinLat*sinLon, cosLat)
	up := math32.Vec3(cosLat*cosLon, cosLat*sinLon, sinLat)

	// heading rotates the tangent axes about up, clockwise from north
	right := east.MulScalar(cosHdg).Sub(north.MulScalar(sinHdg))
	forward := north.MulScalar(cosHdg).Add(east.MulScalar(sinHdg))

	return Mat3FromCols(right, forward, up)
}

// EffectiveJulianDate returns the Julian Date corresponding to the given
// elapsed simulated seconds, applying the observer's time origin and
// time scale. Callers must guard against non-finite inputs.
func (ob *Observer) EffectiveJulianDate(elapsedSeconds float64) float64 {
	return ob.JulianDate + ob.TimeScale*elapsedSeconds/86400.0
}
