// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"cogentcore.org/core/base/errors"
	"gopkg.in/yaml.v3"
)

// Config is the skyview viewer configuration, loaded from a YAML file.
type Config struct {

	// Latitude is the observer's geodetic latitude in degrees.
	Latitude float32 `yaml:"latitude"`

	// Longitude is the observer's geodetic longitude in degrees.
	Longitude float32 `yaml:"longitude"`

	// Heading is the view azimuth in degrees clockwise from north.
	Heading float32 `yaml:"heading"`

	// JulianDate is the Julian Date at startup. Zero means the J2000
	// epoch.
	JulianDate float64 `yaml:"julian_date"`

	// TimeScale multiplies the passage of time; 3600 sweeps an hour of
	// sky per second.
	TimeScale float64 `yaml:"time_scale"`

	// AlphaBlend renders the stars with straight alpha blending.
	AlphaBlend bool `yaml:"alpha_blend"`
}

// DefaultConfig is a mid-latitude observer with moderately sped-up time,
// so the sky visibly rotates.
func DefaultConfig() *Config {
	return &Config{
		Latitude:  47.6,
		Longitude: -122.3,
		TimeScale: 600,
	}
}

// LoadConfig reads the YAML config at path, or returns the defaults if
// path is empty. A missing or malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Log(err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Log(err)
	}
	return cfg, nil
}
