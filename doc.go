// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package starfield renders an astronomically accurate night sky as a
// backdrop for a real-time 3D application, using WebGPU.
//
// A fixed catalog of 9096 stars, stored in galactic coordinates, is
// converted once at load time to equatorial (J2000) coordinates and
// uploaded to a GPU storage buffer. Each frame, an [Observer] (the
// mapping from world space to Earth-Centered-Earth-Fixed space, plus a
// simulated-time origin and scale) and the elapsed simulated time are
// combined into a small uniform holding the world-to-ECEF rotation and
// the current sidereal time. The whole catalog is then drawn in a single
// procedural call of 6 vertices per star, with each star expanded into a
// camera-facing quad in the vertex shader.
//
// Typical use:
//
//	gp, err := starfield.NewGPU(surface)
//	ct, err := starfield.NewCatalog()
//	sp, err := starfield.NewPipeline(gp, ct)
//	dp := starfield.NewDrawPass(sp)
//	ob := starfield.NewObserver().SetGeodetic(46, 14, 0)
//
//	// each frame:
//	dp.Extract(ob)
//	dp.Prepare(elapsedSeconds)
//	dp.Queue(phase, view)
//	phase.Run(renderPass)
//	dp.EndFrame()
package starfield
