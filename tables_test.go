// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hevckit/rom/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometry(t *testing.T) {
	var vectors = []struct {
		geom   Geometry
		valid  bool
		depth  int
		perRow int
	}{
		{Geometry{64, 4}, true, 4, 16},
		{Geometry{8, 4}, true, 1, 2},
		{Geometry{32, 8}, true, 2, 4},
		{Geometry{16, 16}, true, 0, 1},
		{Geometry{64, 1}, false, 0, 0},
		{Geometry{48, 4}, false, 0, 0},
		{Geometry{64, 3}, false, 0, 0},
		{Geometry{64, 0}, false, 0, 0},
		{Geometry{4, 8}, false, 0, 0},
		{Geometry{-64, 4}, false, 0, 0},
	}
	for i, v := range vectors {
		err := v.geom.Validate()
		if (err == nil) != v.valid {
			t.Errorf("test %d, %+v: got error %v, want valid %v", i, v.geom, err, v.valid)
			continue
		}
		if !v.valid {
			assert.IsType(t, Error(""), err, "test %d", i)
			continue
		}
		assert.Equal(t, v.depth, v.geom.Depth(), "test %d", i)
		assert.Equal(t, v.perRow, v.geom.UnitsPerRow(), "test %d", i)
		assert.Equal(t, v.perRow*v.perRow, v.geom.NumUnits(), "test %d", i)
	}
}

func TestNewInvalid(t *testing.T) {
	assert.PanicsWithValue(t, Error("coding unit size is not a power of two"), func() {
		New(Geometry{MaxCUSize: 48, UnitSize: 4})
	})
}

func TestNewSmallest(t *testing.T) {
	// An 8x8 coding unit of 4x4 units is a 2x2 grid visited as
	// (0,0), (1,0), (0,1), (1,1).
	tab := New(Geometry{MaxCUSize: 8, UnitSize: 4})
	var got []uint32
	for i := 0; i < 4; i++ {
		got = append(got, tab.ZScanToRaster(i))
	}
	assert.Equal(t, []uint32{0, 1, 2, 3}, got)
	for i, xy := range [][2]uint32{{0, 0}, {4, 0}, {0, 4}, {4, 4}} {
		assert.Equal(t, xy[0], tab.RasterToPelX(i), "x of raster %d", i)
		assert.Equal(t, xy[1], tab.RasterToPelY(i), "y of raster %d", i)
	}
}

func TestNewDepthTwo(t *testing.T) {
	tab := New(Geometry{MaxCUSize: 16, UnitSize: 4})
	var got []uint32
	for i := 0; i < 16; i++ {
		got = append(got, tab.ZScanToRaster(i))
	}
	assert.Equal(t, []uint32{0, 1, 4, 5}, got[:4], "first quad")
	assert.Equal(t, []uint32{10, 11, 14, 15}, got[12:], "last quad")
}

func TestNewGolden(t *testing.T) {
	want := testutil.MustParseUint32s(testutil.MustLoadFile("testdata/zscan_64x4.txt"))
	tab := New(DefaultGeometry)
	if diff := cmp.Diff(want, tab.zscanToRaster); diff != "" {
		t.Errorf("zscanToRaster mismatch (-want +got):\n%s", diff)
	}
}

func TestBijection(t *testing.T) {
	geoms := []Geometry{{8, 4}, {16, 4}, {32, 4}, {64, 4}, {64, 8}, {64, 16}, {32, 2}}
	for _, g := range geoms {
		tab := New(g)
		n := g.NumUnits()
		require.NoError(t, testutil.CheckPermutation(tab.zscanToRaster), "%+v", g)
		require.NoError(t, testutil.CheckPermutation(tab.rasterToZscan), "%+v", g)
		for i := 0; i < n; i++ {
			if got := tab.RasterToZScan(int(tab.ZScanToRaster(i))); got != uint32(i) {
				t.Fatalf("%+v: rasterToZscan[zscanToRaster[%d]] = %d", g, i, got)
			}
			if got := tab.ZScanToRaster(int(tab.RasterToZScan(i))); got != uint32(i) {
				t.Fatalf("%+v: zscanToRaster[rasterToZscan[%d]] = %d", g, i, got)
			}
		}
		assert.Equal(t, uint32(0), tab.ZScanToRaster(0), "%+v", g)
		assert.Equal(t, uint32(n-1), tab.ZScanToRaster(n-1), "%+v", g)
	}
}

func TestSampledPelXY(t *testing.T) {
	tab := New(DefaultGeometry)
	rand := testutil.NewRand(0)
	for _, z := range rand.Indexes(1000, MaxNumUnits) {
		r := int(tab.ZScanToRaster(z))
		x, y := tab.RasterToPelX(r), tab.RasterToPelY(r)
		if x%UnitSize != 0 || y%UnitSize != 0 || x >= MaxCUSize || y >= MaxCUSize {
			t.Fatalf("z-scan %d at (%d, %d) is off the unit grid", z, x, y)
		}
		if got := int(y/UnitSize)*MaxNumUnitsW + int(x/UnitSize); got != r {
			t.Fatalf("z-scan %d: pixel (%d, %d) maps back to raster %d, want %d", z, x, y, got, r)
		}
	}
}

func TestConvertToBit(t *testing.T) {
	tab := New(DefaultGeometry)
	want := map[int]int{4: 0, 8: 1, 16: 2, 32: 3, 64: 4}
	for size := -2; size <= MaxCUSize+8; size++ {
		w, ok := want[size]
		if !ok {
			w = -1
		}
		if got := tab.ConvertToBit(size); got != w {
			t.Errorf("ConvertToBit(%d): got %d, want %d", size, got, w)
		}
	}

	small := New(Geometry{MaxCUSize: 16, UnitSize: 4})
	assert.Equal(t, 2, small.ConvertToBit(16))
	assert.Equal(t, -1, small.ConvertToBit(32))
}

func TestNumPartitions(t *testing.T) {
	tab := New(DefaultGeometry)
	for d, want := range []int{256, 64, 16, 4, 1} {
		assert.Equal(t, want, tab.NumPartitions(d), "depth %d", d)
	}
}

func TestChecksum(t *testing.T) {
	a, b := New(DefaultGeometry), New(DefaultGeometry)
	assert.Equal(t, a.Checksum(), b.Checksum())

	c := New(Geometry{MaxCUSize: 32, UnitSize: 4})
	assert.NotEqual(t, a.Checksum(), c.Checksum())

	// Swapping two entries must change the fingerprint.
	b.zscanToRaster[1], b.zscanToRaster[2] = b.zscanToRaster[2], b.zscanToRaster[1]
	assert.NotEqual(t, a.Checksum(), b.Checksum())
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(DefaultGeometry)
	}
}
