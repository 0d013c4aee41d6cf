// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rom

import (
	"math"
	"testing"

	"github.com/hevckit/rom/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLPSTable(t *testing.T) {
	assert.Equal(t, [4]uint8{128, 176, 208, 240}, LPSTable(0))
	assert.Equal(t, [4]uint8{2, 2, 2, 2}, LPSTable(NumStates-1))

	for s := 0; s < NumStates; s++ {
		row := LPSTable(s)
		for q := 1; q < 4; q++ {
			if row[q] < row[q-1] {
				t.Errorf("LPSTable(%d) decreases at %d: %v", s, q, row)
			}
		}
		if s > 0 {
			prev := LPSTable(s - 1)
			for q := 0; q < 4; q++ {
				if row[q] > prev[q] {
					t.Errorf("LPSTable column %d increases at state %d", q, s)
				}
			}
		}
	}

	var vectors = []struct {
		state int
		rng   uint32
		want  uint8
	}{
		{0, 256, 128}, {0, 319, 128}, {0, 320, 176}, {0, 510, 240},
		{12, 384, 111}, {62, 448, 9},
	}
	for i, v := range vectors {
		if got := LPSRange(v.state, v.rng); got != v.want {
			t.Errorf("test %d, LPSRange(%d, %d): got %d, want %d", i, v.state, v.rng, got, v.want)
		}
	}

	rand := testutil.NewRand(1)
	for k := 0; k < 1000; k++ {
		s, rng := rand.Intn(NumStates), uint32(rand.Range(256, 511))
		if got, want := LPSRange(s, rng), LPSTable(s)[(rng-256)/64]; got != want {
			t.Fatalf("LPSRange(%d, %d): got %d, want %d", s, rng, got, want)
		}
	}
}

func TestStateTransitions(t *testing.T) {
	for s := 0; s < NumStates; s++ {
		mps, lps := NextStateMPS(s), NextStateLPS(s)
		if mps >= NumStates || lps >= NumStates {
			t.Fatalf("state %d: transitions %d and %d out of range", s, mps, lps)
		}
		if s < NumStates-2 && int(mps) != s+1 {
			t.Errorf("NextStateMPS(%d): got %d, want %d", s, mps, s+1)
		}
		if s < NumStates-1 && int(lps) > s {
			t.Errorf("NextStateLPS(%d): got %d, want at most %d", s, lps, s)
		}
	}
	// The last two states are reserved for termination.
	assert.Equal(t, uint8(62), NextStateMPS(62))
	assert.Equal(t, uint8(63), NextStateMPS(63))
	assert.Equal(t, uint8(63), NextStateLPS(63))
}

func TestRenormBits(t *testing.T) {
	// After renormalization an LPS range is back in [256, 512).
	for s := 0; s < NumStates-1; s++ {
		for q := 0; q < 4; q++ {
			lps := LPSTable(s)[q]
			r := uint32(lps) << RenormBits(lps)
			if r < 256 || r >= 512 {
				t.Errorf("state %d, quarter %d: LPS %d renormalizes to %d", s, q, lps, r)
			}
		}
	}
}

func TestRiceTables(t *testing.T) {
	want := []uint8{0, 1, 2, 3, 4, 6, 8, 12, 16, 24}
	for g := 0; g < NumRiceGroups; g++ {
		assert.Equal(t, want[g], MinInGroup(g), "group %d", g)
	}
	for p := 1; p <= MaxGoRiceParam; p++ {
		if GoRiceRange(p) <= GoRiceRange(p-1) {
			t.Errorf("GoRiceRange(%d) = %d is not above GoRiceRange(%d) = %d", p, GoRiceRange(p), p-1, GoRiceRange(p-1))
		}
	}
	assert.Equal(t, uint8(7), GoRiceRange(0))
	assert.Equal(t, uint8(78), GoRiceRange(MaxGoRiceParam))
}

func TestExp2(t *testing.T) {
	for i := 0; i < Exp2LUTSize; i++ {
		want := (math.Exp2(float64(i)/64) - 1) * 256
		if got := float64(Exp2LUT(i)); math.Abs(got-want) > 0.5 {
			t.Errorf("Exp2LUT(%d): got %v, want %.3f", i, got, want)
		}
	}

	assert.Equal(t, uint16(256), Exp2Fix8(0))
	assert.Equal(t, uint16(128), Exp2Fix8(6))
	assert.Equal(t, uint16(512), Exp2Fix8(-6))
	for x := -42; x < 48; x += 6 {
		got, half := Exp2Fix8(float64(x)), Exp2Fix8(float64(x+6))
		if half != got/2 {
			t.Errorf("Exp2Fix8(%d) = %d, Exp2Fix8(%d) = %d", x, got, x+6, half)
		}
	}
	assert.Equal(t, uint16(0xffff), Exp2Fix8(-100))
	assert.Equal(t, uint16(0), Exp2Fix8(100))

	// Between multiples of six the result follows 256 * 2^(-x/6) closely.
	for x := -40.0; x < 40; x += 0.37 {
		want := 256 * math.Exp2(-x/6)
		if got := float64(Exp2Fix8(x)); math.Abs(got-want) > want/64+1 {
			t.Errorf("Exp2Fix8(%v): got %v, want %.2f", x, got, want)
		}
	}
}

func TestPartitionTables(t *testing.T) {
	assert.Equal(t, []uint32{0, 8, 4, 4, 2, 10, 1, 5}, puOffset[:])
	for p := 0; p < NumPartSizes; p++ {
		if PUOffset(p) >= 16 {
			t.Errorf("PUOffset(%d) = %d exceeds a coding unit", p, PUOffset(p))
		}
	}

	var vectors = []struct {
		format int
		x, y   int
	}{
		{0, 1, 1}, // 4:0:0
		{1, 2, 2}, // 4:2:0
		{2, 2, 1}, // 4:2:2
		{3, 1, 1}, // 4:4:4
	}
	for i, v := range vectors {
		if WinUnitX(v.format) != v.x || WinUnitY(v.format) != v.y {
			t.Errorf("test %d, format %d: got (%d, %d), want (%d, %d)",
				i, v.format, WinUnitX(v.format), WinUnitY(v.format), v.x, v.y)
		}
	}

	assert.Equal(t, uint8(0), Chroma422IntraAngle(0))
	assert.Equal(t, uint8(26), Chroma422IntraAngle(26))
	assert.Equal(t, uint8(DMChromaIdx), Chroma422IntraAngle(NumIntraModes-1))
	for m := 1; m < NumIntraModes-1; m++ {
		if Chroma422IntraAngle(m) < Chroma422IntraAngle(m-1) {
			t.Errorf("Chroma422IntraAngle decreases at mode %d", m)
		}
	}
}
