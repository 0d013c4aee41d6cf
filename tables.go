// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rom

import (
	"github.com/hevckit/rom/internal"
	"github.com/hevckit/rom/internal/zscan"
)

// Tables holds the addressing tables derived from a Geometry.
// A Tables is never modified after New returns and may be shared freely.
type Tables struct {
	geom Geometry

	zscanToRaster []uint32 // Z-scan index to raster index
	rasterToZscan []uint32 // Raster index to Z-scan index
	rasterToPelX  []uint32 // Raster index to horizontal pixel offset
	rasterToPelY  []uint32 // Raster index to vertical pixel offset
	convertToBit  []int8   // Block size to log2(size)-2, or -1
}

// New builds the addressing tables for g. It panics if g is invalid.
func New(g Geometry) *Tables {
	if err := g.Validate(); err != nil {
		panic(err)
	}
	n := g.NumUnits()
	t := &Tables{
		geom:          g,
		zscanToRaster: make([]uint32, n),
		rasterToZscan: make([]uint32, n),
		rasterToPelX:  make([]uint32, n),
		rasterToPelY:  make([]uint32, n),
		convertToBit:  make([]int8, g.MaxCUSize+1),
	}
	zscan.Generate(t.zscanToRaster, g.Depth())
	zscan.Invert(t.rasterToZscan, t.zscanToRaster)
	zscan.PelXY(t.rasterToPelX, t.rasterToPelY, g.UnitSize, g.UnitsPerRow())

	for i := range t.convertToBit {
		t.convertToBit[i] = -1
	}
	var c int8
	for i := 4; i <= g.MaxCUSize; i *= 2 {
		t.convertToBit[i] = c
		c++
	}
	return t
}

// Geometry returns the geometry that t was built for.
func (t *Tables) Geometry() Geometry { return t.geom }

// NumPartitions reports the number of units inside a block at the given
// quad-tree depth below the coding unit.
func (t *Tables) NumPartitions(depth int) int {
	if internal.Debug && (depth < 0 || depth > t.geom.Depth()) {
		panic(Error("depth out of range"))
	}
	return t.geom.NumUnits() >> uint(2*depth)
}

func (t *Tables) checkIndex(i int) {
	if internal.Debug && uint(i) >= uint(len(t.zscanToRaster)) {
		panic(Error("unit index out of range"))
	}
}

// ZScanToRaster returns the raster index of Z-scan index i.
func (t *Tables) ZScanToRaster(i int) uint32 {
	t.checkIndex(i)
	return t.zscanToRaster[i]
}

// RasterToZScan returns the Z-scan index of raster index i.
func (t *Tables) RasterToZScan(i int) uint32 {
	t.checkIndex(i)
	return t.rasterToZscan[i]
}

// RasterToPelX returns the horizontal pixel offset of raster index i
// relative to the top-left corner of the coding unit.
func (t *Tables) RasterToPelX(i int) uint32 {
	t.checkIndex(i)
	return t.rasterToPelX[i]
}

// RasterToPelY returns the vertical pixel offset of raster index i
// relative to the top-left corner of the coding unit.
func (t *Tables) RasterToPelY(i int) uint32 {
	t.checkIndex(i)
	return t.rasterToPelY[i]
}

// ConvertToBit returns log2(size)-2 for block sizes from 4 up to the coding
// unit size, and -1 for any other size.
func (t *Tables) ConvertToBit(size int) int {
	if size < 0 || size >= len(t.convertToBit) {
		return -1
	}
	return int(t.convertToBit[size])
}
