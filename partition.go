// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rom

import "github.com/hevckit/rom/internal"

const (
	NumPartSizes     = 8  // Prediction unit partition shapes
	NumChromaFormats = 4  // 4:0:0, 4:2:0, 4:2:2 and 4:4:4
	NumIntraModes    = 36 // Intra prediction modes including DM
	DMChromaIdx      = 36 // Chroma mode that reuses the luma direction
)

// puOffset[p] is the Z-scan distance between consecutive prediction units
// of partition shape p, in sixteenths of the partitions of the coding unit.
var puOffset = [NumPartSizes]uint32{0, 8, 4, 4, 2, 10, 1, 5}

var (
	winUnitX = [NumChromaFormats]int{1, 2, 2, 1}
	winUnitY = [NumChromaFormats]int{1, 2, 1, 1}
)

// chroma422IntraAngle maps an intra direction to the direction used for
// 4:2:2 chroma, whose blocks are twice as tall as they are wide.
var chroma422IntraAngle = [NumIntraModes]uint8{
	0, 1, 2, 2, 2, 2, 3, 5, 7, 8, 10, 12,
	13, 15, 17, 18, 19, 20, 21, 22, 23, 23, 24, 24,
	25, 25, 26, 27, 27, 28, 28, 29, 29, 30, 31, DMChromaIdx,
}

// PUOffset returns the Z-scan distance between consecutive prediction units
// of partition shape p. Scale by NumPartitions(depth) and shift right by 4
// to get a distance in units.
func PUOffset(p int) uint32 {
	if internal.Debug && uint(p) >= NumPartSizes {
		panic(Error("partition size out of range"))
	}
	return puOffset[p]
}

// WinUnitX returns the horizontal conformance window unit of a chroma format.
func WinUnitX(chromaFormat int) int {
	if internal.Debug && uint(chromaFormat) >= NumChromaFormats {
		panic(Error("chroma format out of range"))
	}
	return winUnitX[chromaFormat]
}

// WinUnitY returns the vertical conformance window unit of a chroma format.
func WinUnitY(chromaFormat int) int {
	if internal.Debug && uint(chromaFormat) >= NumChromaFormats {
		panic(Error("chroma format out of range"))
	}
	return winUnitY[chromaFormat]
}

// Chroma422IntraAngle returns the 4:2:2 chroma direction for intra mode m.
// Mode 35 maps to DMChromaIdx.
func Chroma422IntraAngle(m int) uint8 {
	if internal.Debug && uint(m) >= NumIntraModes {
		panic(Error("intra mode out of range"))
	}
	return chroma422IntraAngle[m]
}
