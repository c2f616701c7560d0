// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starfield

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"cogentcore.org/core/base/errors"
	"github.com/cosmoform/starfield/astro"
)

//go:embed stars.bin
var starData []byte

const (
	// NumStars is the number of records in the embedded star catalog.
	NumStars = 9096

	// StarStride is the byte stride of one star record: two float32
	// coordinates plus 8 bytes of padding for 16-byte GPU alignment.
	StarStride = 16

	starFloats = StarStride / 4
)

// Catalog is the star catalog in GPU buffer layout: 4 float32 per star,
// [ra, dec, pad, pad] after conversion, with coordinates in degrees.
// The raw blob stores [galactic longitude, galactic latitude, pad, pad];
// conversion to equatorial coordinates is applied in place exactly once,
// at load time, and the data is immutable afterwards.
type Catalog struct {
	data []float32
	n    int

	convertOnce sync.Once
}

// NewCatalog loads the embedded star catalog and converts it to
// equatorial coordinates.
func NewCatalog() (*Catalog, error) {
	return CatalogFromBlob(starData, NumStars)
}

// CatalogFromBlob loads a catalog from a binary blob of n fixed-stride
// little-endian records and converts it to equatorial coordinates.
// A blob whose length is not exactly n*[StarStride] bytes is a packaging
// defect and returns an error that callers should treat as fatal.
func CatalogFromBlob(blob []byte, n int) (*Catalog, error) {
	if len(blob) != n*StarStride {
		err := fmt.Errorf("starfield.Catalog: blob is %d bytes, expected %d (%d stars at %d byte stride)", len(blob), n*StarStride, n, StarStride)
		return nil, errors.Log(err)
	}
	ct := &Catalog{n: n}
	ct.data = make([]float32, starFloats*n)
	for i := range ct.data {
		ct.data[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[4*i:]))
	}
	ct.Convert()
	return ct, nil
}

// Convert replaces the galactic coordinates of every record with the
// equivalent equatorial right ascension and declination, leaving the
// stride and padding untouched. It is guarded to run exactly once for
// the lifetime of the catalog; further calls are no-ops.
func (ct *Catalog) Convert() {
	ct.convertOnce.Do(func() {
		for i := 0; i < ct.n; i++ {
			s := ct.data[starFloats*i:]
			ra, dec := astro.EquatorialFromGalactic(float64(s[0]), float64(s[1]))
			s[0] = float32(ra)
			s[1] = float32(dec)
		}
	})
}

// NumStars returns the number of stars in the catalog.
func (ct *Catalog) NumStars() int { return ct.n }

// ByteSize returns the total size of the catalog in bytes, which is
// also the minimum binding size of the GPU star buffer.
func (ct *Catalog) ByteSize() int { return ct.n * StarStride }

// Star returns the equatorial coordinates of star i, in degrees.
func (ct *Catalog) Star(i int) (ra, dec float32) {
	s := ct.data[starFloats*i:]
	return s[0], s[1]
}

// Data returns the converted catalog as a flat float32 slice in GPU
// buffer layout. The returned slice must not be modified.
func (ct *Catalog) Data() []float32 { return ct.data }
