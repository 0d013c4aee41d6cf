// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package zscan builds the addressing tables that relate the quad-tree
// (Z-scan) order of minimum units inside a coding unit to their raster order.
//
// A coding unit of depth D is a square grid of 2^D by 2^D minimum units.
// Raster index r addresses unit (r%w, r/w) where w = 2^D. Z-scan index z is
// the position of a unit in a depth-first walk of the quad-tree that visits
// the children of every node in the order top-left, top-right, bottom-left,
// bottom-right. Entropy coding depends on this exact visiting order.
package zscan

import "github.com/hevckit/rom/internal"

// MaxDepth is the deepest grid that the generators support.
// The Morton generator packs each coordinate into 16 bits.
const MaxDepth = 15

// NumUnits reports the number of minimum units in a grid of the given depth.
func NumUnits(depth int) int { return 1 << uint(2*depth) }

func checkDepth(buf []uint32, depth int) {
	if depth < 0 || depth > MaxDepth {
		panic(internal.Error("zscan: invalid depth"))
	}
	if len(buf) != NumUnits(depth) {
		panic(internal.Error("zscan: buffer does not match grid size"))
	}
}

// Generate fills buf with the raster index of every minimum unit in Z-scan
// order, so that buf[z] is the raster index of Z-scan index z.
// The length of buf must be exactly 4^depth.
func Generate(buf []uint32, depth int) {
	checkDepth(buf, depth)
	width := 1 << uint(depth)
	if n := walk(buf, 0, 0, depth, width, 0); n != len(buf) {
		panic(internal.Error("zscan: incomplete walk")) // This should never occur
	}
}

// walk visits the quad-tree node at the given level whose top-left unit has
// raster index start. It writes leaves starting at buf[pos] and returns the
// position following the last leaf written.
func walk(buf []uint32, pos, level, depth, width int, start uint32) int {
	if level == depth {
		buf[pos] = start
		return pos + 1
	}
	step := uint32(width >> uint(level+1))
	stride := uint32(width)
	pos = walk(buf, pos, level+1, depth, width, start)                  // Top-left
	pos = walk(buf, pos, level+1, depth, width, start+step)             // Top-right
	pos = walk(buf, pos, level+1, depth, width, start+step*stride)      // Bottom-left
	pos = walk(buf, pos, level+1, depth, width, start+step*stride+step) // Bottom-right
	return pos
}

// Morton fills buf with the same contents as Generate, but derives each
// entry directly by de-interleaving the bits of the Z-scan index.
func Morton(buf []uint32, depth int) {
	checkDepth(buf, depth)
	for z := range buf {
		x, y := internal.Deinterleave(uint32(z))
		buf[z] = y<<uint(depth) | x
	}
}

// Invert stores the inverse permutation of src into dst, such that
// dst[src[i]] == i for every i. Both slices must have the same length and
// src must be a permutation of [0, len(src)).
func Invert(dst, src []uint32) {
	if len(dst) != len(src) {
		panic(internal.Error("zscan: mismatching table sizes"))
	}
	for i, v := range src {
		dst[v] = uint32(i)
	}
}

// PelXY fills x and y with the pixel offset of every raster index of a grid
// that has unitsPerRow units of unitSize pixels on each row.
// Both slices must hold exactly unitsPerRow^2 entries.
func PelXY(x, y []uint32, unitSize, unitsPerRow int) {
	n := unitsPerRow * unitsPerRow
	if len(x) != n || len(y) != n || unitsPerRow <= 0 {
		panic(internal.Error("zscan: buffer does not match grid size"))
	}

	// The first row advances by one unit per column, the rest are copies.
	x[0] = 0
	for i := 1; i < unitsPerRow; i++ {
		x[i] = x[i-1] + uint32(unitSize)
	}
	for i := unitsPerRow; i < n; i += unitsPerRow {
		copy(x[i:i+unitsPerRow], x[:unitsPerRow])
	}

	for i := range y {
		y[i] = uint32(i/unitsPerRow) * uint32(unitSize)
	}
}
