// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rom

import "github.com/hevckit/rom/internal"

// Entropy coder shapes.
const (
	NumStates      = 64 // Probability states of a context model
	NumRiceGroups  = 10 // Groups of last significant coefficient positions
	MaxGoRiceParam = 4  // Largest Golomb-Rice parameter
	Exp2LUTSize    = 64 // Entries in the fractional power-of-two table
)

// lpsTable[s][q] is the range of the least probable symbol in state s when
// the current range falls into quarter q of [256, 512).
var lpsTable = [NumStates][4]uint8{
	{128, 176, 208, 240}, {128, 167, 197, 227}, {128, 158, 187, 216}, {123, 150, 178, 205},
	{116, 142, 169, 195}, {111, 135, 160, 185}, {105, 128, 152, 175}, {100, 122, 144, 166},
	{95, 116, 137, 158}, {90, 110, 130, 150}, {85, 104, 123, 142}, {81, 99, 117, 135},
	{77, 94, 111, 128}, {73, 89, 105, 122}, {69, 85, 100, 116}, {66, 80, 95, 110},
	{62, 76, 90, 104}, {59, 72, 86, 99}, {56, 69, 81, 94}, {53, 65, 77, 89},
	{51, 62, 73, 85}, {48, 59, 69, 80}, {46, 56, 66, 76}, {43, 53, 63, 72},
	{41, 50, 59, 69}, {39, 48, 56, 65}, {37, 45, 54, 62}, {35, 43, 51, 59},
	{33, 41, 48, 56}, {32, 39, 46, 53}, {30, 37, 43, 50}, {29, 35, 41, 48},
	{27, 33, 39, 45}, {26, 31, 37, 43}, {24, 30, 35, 41}, {23, 28, 33, 39},
	{22, 27, 32, 37}, {21, 26, 30, 35}, {20, 24, 29, 33}, {19, 23, 27, 31},
	{18, 22, 26, 30}, {17, 21, 25, 28}, {16, 20, 23, 27}, {15, 19, 22, 25},
	{14, 18, 21, 24}, {14, 17, 20, 23}, {13, 16, 19, 22}, {12, 15, 18, 21},
	{12, 14, 17, 20}, {11, 14, 16, 19}, {11, 13, 15, 18}, {10, 12, 15, 17},
	{10, 12, 14, 16}, {9, 11, 13, 15}, {9, 11, 12, 14}, {8, 10, 12, 14},
	{8, 9, 11, 13}, {7, 9, 11, 12}, {7, 9, 10, 12}, {7, 8, 10, 11},
	{6, 8, 9, 11}, {6, 7, 9, 10}, {6, 7, 8, 9}, {2, 2, 2, 2},
}

var nextStateMPS = [NumStates]uint8{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
	33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47, 48,
	49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 62, 63,
}

var nextStateLPS = [NumStates]uint8{
	0, 0, 1, 2, 2, 4, 4, 5, 6, 7, 8, 9, 9, 11, 11, 12,
	13, 13, 15, 15, 16, 16, 18, 18, 19, 19, 21, 21, 22, 22, 23, 24,
	24, 25, 26, 26, 27, 27, 28, 29, 29, 30, 30, 30, 31, 32, 32, 33,
	33, 33, 34, 34, 35, 35, 35, 36, 36, 36, 37, 37, 37, 38, 38, 63,
}

// renormTable[lps>>3] is the shift that brings an LPS range back to 256.
var renormTable = [32]uint8{
	6, 5, 4, 4, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
}

var minInGroup = [NumRiceGroups]uint8{0, 1, 2, 3, 4, 6, 8, 12, 16, 24}

var goRiceRange = [MaxGoRiceParam + 1]uint8{7, 14, 26, 46, 78}

// exp2LUT[i] is 256 * (2^(i/64) - 1), rounded.
var exp2LUT = [Exp2LUTSize]uint8{
	0, 3, 6, 8, 11, 14, 17, 20, 23, 26, 29, 32, 36, 39, 42, 45,
	48, 52, 55, 58, 62, 65, 69, 72, 76, 80, 83, 87, 91, 94, 98, 102,
	106, 110, 114, 118, 122, 126, 130, 135, 139, 143, 147, 152, 156, 161, 165, 170,
	175, 179, 184, 189, 194, 198, 203, 208, 214, 219, 224, 229, 234, 240, 245, 250,
}

func checkState(state int) {
	if internal.Debug && uint(state) >= NumStates {
		panic(Error("context state out of range"))
	}
}

// LPSTable returns the four LPS ranges of a context state.
func LPSTable(state int) [4]uint8 {
	checkState(state)
	return lpsTable[state]
}

// LPSRange returns the LPS range of a context state for the current coder
// range, which must lie in [256, 512).
func LPSRange(state int, rng uint32) uint8 {
	checkState(state)
	return lpsTable[state][(rng>>6)&3]
}

// NextStateMPS returns the state that follows state after coding the most
// probable symbol.
func NextStateMPS(state int) uint8 {
	checkState(state)
	return nextStateMPS[state]
}

// NextStateLPS returns the state that follows state after coding the least
// probable symbol. The caller swaps the MPS value when state is 0.
func NextStateLPS(state int) uint8 {
	checkState(state)
	return nextStateLPS[state]
}

// RenormBits returns the number of bits the coder shifts out after coding
// a least probable symbol whose range is lps.
func RenormBits(lps uint8) uint8 { return renormTable[lps>>3] }

// MinInGroup returns the smallest last-position value of a group.
func MinInGroup(g int) uint8 {
	if internal.Debug && uint(g) >= NumRiceGroups {
		panic(Error("group out of range"))
	}
	return minInGroup[g]
}

// GoRiceRange returns the largest prefix value coded with Golomb-Rice
// parameter p before switching to exponential Golomb codes.
func GoRiceRange(p int) uint8 {
	if internal.Debug && uint(p) > MaxGoRiceParam {
		panic(Error("rice parameter out of range"))
	}
	return goRiceRange[p]
}

// Exp2LUT returns entry i of the fractional power-of-two table.
func Exp2LUT(i int) uint8 {
	if internal.Debug && uint(i) >= Exp2LUTSize {
		panic(Error("exp2 index out of range"))
	}
	return exp2LUT[i]
}

// Exp2Fix8 returns 256 * 2^(-x/6) in fixed point, saturating at 0 for
// large x and at 0xffff for x at or below -48.
func Exp2Fix8(x float64) uint16 {
	i := int(x*(-64.0/6.0) + 512.5)
	if i < 0 {
		return 0
	}
	if i > 1023 {
		return 0xffff
	}
	return uint16((uint32(exp2LUT[i&63]) + 256) << uint(i>>6) >> 8)
}
