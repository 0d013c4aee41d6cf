// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyDefault(t *testing.T) {
	require.NoError(t, Verify(New(DefaultGeometry)))
}

func TestVerify(t *testing.T) {
	for _, g := range []Geometry{DefaultGeometry, {8, 4}, {16, 4}, {32, 8}, {64, 16}, {4, 4}} {
		assert.NoError(t, Verify(New(g)), "%+v", g)
	}
}

func TestVerifyCorrupt(t *testing.T) {
	var vectors = []struct {
		name    string
		corrupt func(*Tables)
		errStr  string
	}{{
		name: "SwapZScan",
		corrupt: func(t *Tables) {
			t.zscanToRaster[1], t.zscanToRaster[2] = t.zscanToRaster[2], t.zscanToRaster[1]
		},
		errStr: "rasterToZscan[zscanToRaster[1]]",
	}, {
		name:    "Duplicate",
		corrupt: func(t *Tables) { t.zscanToRaster[5] = t.zscanToRaster[4] },
		errStr:  "not a permutation",
	}, {
		name:    "PelX",
		corrupt: func(t *Tables) { t.rasterToPelX[3]++ },
		errStr:  "raster 3 at",
	}, {
		name:    "Truncated",
		corrupt: func(t *Tables) { t.rasterToPelY = t.rasterToPelY[:10] },
		errStr:  "rasterToPelY has 10 entries",
	}, {
		name:    "ConvertToBit",
		corrupt: func(t *Tables) { t.convertToBit[16] = 3 },
		errStr:  "convertToBit[16]",
	}}
	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			tab := New(DefaultGeometry)
			v.corrupt(tab)
			err := Verify(tab)
			require.Error(t, err)
			assert.IsType(t, Error(""), err)
			assert.Contains(t, err.Error(), v.errStr)
		})
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	tab := New(DefaultGeometry)
	require.NoError(t, Dump(&buf, tab))
	out := buf.String()

	var names []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "var ") {
			names = append(names, strings.Fields(line)[1])
		}
	}
	require.Len(t, names, len(tab.all()))
	assert.Equal(t, "zscanToRaster", names[0])
	assert.Equal(t, "chroma422IntraAngle", names[len(names)-1])

	assert.Contains(t, out, "var zscanToRaster []uint32 = {\n\t0 1 16 17 2 3 18 19 32 33 48 49 34 35 50 51\n")
	assert.Contains(t, out, "var lambdaTab []float64 = [0.25 ")
	assert.Contains(t, out, "var convertToBit []int8 = [-1 ")
	assert.Contains(t, out, "var transform4 [][]int16 = [[64 64 64 64] [83 36 -36 -83] ")

	// Dumps are deterministic.
	var again bytes.Buffer
	require.NoError(t, Dump(&again, New(DefaultGeometry)))
	assert.Equal(t, out, again.String())
}
