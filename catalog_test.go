// Copyright (c) 2026, Cosmoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starfield

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// blobFromGalactic encodes galactic [lon, lat] pairs in catalog layout.
func blobFromGalactic(coords [][2]float32) []byte {
	blob := make([]byte, StarStride*len(coords))
	for i, c := range coords {
		binary.LittleEndian.PutUint32(blob[StarStride*i:], math.Float32bits(c[0]))
		binary.LittleEndian.PutUint32(blob[StarStride*i+4:], math.Float32bits(c[1]))
	}
	return blob
}

func TestCatalogEmbedded(t *testing.T) {
	ct, err := NewCatalog()
	assert.NoError(t, err)
	assert.Equal(t, NumStars, ct.NumStars())
	assert.Equal(t, NumStars*StarStride, ct.ByteSize())
	assert.Equal(t, NumStars*StarStride/4, len(ct.Data()))

	for i := 0; i < ct.NumStars(); i++ {
		ra, dec := ct.Star(i)
		assert.GreaterOrEqual(t, ra, float32(0), "star %d", i)
		assert.Less(t, ra, float32(360), "star %d", i)
		assert.GreaterOrEqual(t, dec, float32(-90), "star %d", i)
		assert.LessOrEqual(t, dec, float32(90), "star %d", i)
	}
}

func TestCatalogBlobSizeMismatch(t *testing.T) {
	_, err := CatalogFromBlob(make([]byte, 10), NumStars)
	assert.Error(t, err)

	// off by one record
	_, err = CatalogFromBlob(make([]byte, (NumStars+1)*StarStride), NumStars)
	assert.Error(t, err)
}

func TestCatalogGalacticCenter(t *testing.T) {
	ct, err := CatalogFromBlob(blobFromGalactic([][2]float32{{0, 0}}), 1)
	assert.NoError(t, err)
	ra, dec := ct.Star(0)
	assert.InDelta(t, 266.405, ra, 0.01)
	assert.InDelta(t, -28.936, dec, 0.01)
}

func TestCatalogConvertOnce(t *testing.T) {
	ct, err := CatalogFromBlob(blobFromGalactic([][2]float32{{33, 12}, {251, -40}}), 2)
	assert.NoError(t, err)
	ra0, dec0 := ct.Star(0)
	ra1, dec1 := ct.Star(1)

	// a second conversion of already-equatorial data would corrupt it
	ct.Convert()
	ra, dec := ct.Star(0)
	assert.Equal(t, ra0, ra)
	assert.Equal(t, dec0, dec)
	ra, dec = ct.Star(1)
	assert.Equal(t, ra1, ra)
	assert.Equal(t, dec1, dec)
}

func TestCatalogPaddingPreserved(t *testing.T) {
	ct, err := CatalogFromBlob(blobFromGalactic([][2]float32{{120, 45}}), 1)
	assert.NoError(t, err)
	data := ct.Data()
	assert.Equal(t, float32(0), data[2])
	assert.Equal(t, float32(0), data[3])
}
