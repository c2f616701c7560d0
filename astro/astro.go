// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package astro provides the small set of positional-astronomy functions
// needed to place a star catalog on the sky: conversion from galactic to
// equatorial (J2000) coordinates, and Greenwich Mean Sidereal Time from a
// Julian Date. All functions are pure, operate in float64, and are total
// over finite inputs: callers are responsible for passing finite values.
package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Date of the J2000.0 epoch
// (January 1, 2000, 12:00:00 TT).
const J2000 = 2451545.0

// IAU galactic frame constants, J2000 equatorial values of the
// IAU 1958 definition. These are the single authoritative source for the
// galactic pole and node; do not re-derive them elsewhere.
const (
	// GalacticPoleRA is the right ascension of the north galactic pole,
	// in degrees.
	GalacticPoleRA = 192.85948

	// GalacticPoleDec is the declination of the north galactic pole,
	// in degrees.
	GalacticPoleDec = 27.12825

	// GalacticNodeLongitude is the galactic longitude of the north
	// celestial pole, in degrees.
	GalacticNodeLongitude = 122.93192
)

// EquatorialFromGalactic converts galactic coordinates (longitude l,
// latitude b, degrees) to J2000 equatorial coordinates, returning
// right ascension in [0, 360) and declination in [-90, 90], in degrees.
func EquatorialFromGalactic(l, b float64) (ra, dec float64) {
	lRad := l * math.Pi / 180
	bRad := b * math.Pi / 180
	poleRA := GalacticPoleRA * math.Pi / 180
	poleDec := GalacticPoleDec * math.Pi / 180
	node := GalacticNodeLongitude * math.Pi / 180

	sinB, cosB := math.Sincos(bRad)
	sinPD, cosPD := math.Sincos(poleDec)
	sinNL, cosNL := math.Sincos(node - lRad)

	sinDec := sinPD*sinB + cosPD*cosB*cosNL
	dec = math.Asin(sinDec)

	y := cosB * sinNL
	x := cosPD*sinB - sinPD*cosB*cosNL
	ra = math.Atan2(y, x) + poleRA

	ra = ra * 180 / math.Pi
	dec = dec * 180 / math.Pi
	ra = math.Mod(ra, 360)
	if ra < 0 {
		ra += 360
	}
	return ra, dec
}

// GalacticFromEquatorial is the inverse of [EquatorialFromGalactic],
// converting J2000 right ascension and declination (degrees) to galactic
// longitude in [0, 360) and latitude, in degrees.
func GalacticFromEquatorial(ra, dec float64) (l, b float64) {
	raRad := ra * math.Pi / 180
	decRad := dec * math.Pi / 180
	poleRA := GalacticPoleRA * math.Pi / 180
	poleDec := GalacticPoleDec * math.Pi / 180
	node := GalacticNodeLongitude * math.Pi / 180

	sinDec, cosDec := math.Sincos(decRad)
	sinPD, cosPD := math.Sincos(poleDec)
	sinRA, cosRA := math.Sincos(raRad - poleRA)

	sinB := sinPD*sinDec + cosPD*cosDec*cosRA
	b = math.Asin(sinB)

	y := cosDec * sinRA
	x := cosPD*sinDec - sinPD*cosDec*cosRA
	l = node - math.Atan2(y, x)

	l = l * 180 / math.Pi
	b = b * 180 / math.Pi
	l = math.Mod(l, 360)
	if l < 0 {
		l += 360
	}
	return l, b
}

// SiderealDegreesPerDay is the advance rate of GMST, in degrees per
// solar day. One sidereal day is 360/SiderealDegreesPerDay solar days.
const SiderealDegreesPerDay = 360.98564736629

// MeanSiderealTime returns Greenwich Mean Sidereal Time for the given
// Julian Date, in degrees normalized to [0, 360).
//
// Uses the standard IAU-82 polynomial in Julian centuries from J2000
// (Vallado Eq 3-47, expressed in degrees), numerically stable for dates
// within at least +-1000 years of J2000.
func MeanSiderealTime(jd float64) float64 {
	d := jd - J2000
	t := d / 36525.0

	gmst := 280.46061837 +
		SiderealDegreesPerDay*d +
		0.000387933*t*t -
		t*t*t/38710000.0

	gmst = math.Mod(gmst, 360)
	if gmst < 0 {
		gmst += 360
	}
	return gmst
}

// JulianDate converts a time.Time to a Julian Date, using the standard
// astronomical algorithm valid for dates after March 1, 4801 BC.
// The time is interpreted in UTC.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())
	h := float64(t.Hour())
	min := float64(t.Minute())
	s := float64(t.Second()) + float64(t.Nanosecond())/1e9

	// Jan/Feb count as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + b - 1524.5
	jd += (h + min/60.0 + s/3600.0) / 24.0
	return jd
}
