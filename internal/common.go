// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of common addressing algorithms.
//
// For performance reasons, these packages lack strong error checking and
// require the caller to ensure that strict invariants are kept.
package internal

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "rom: " + string(e) }

var (
	// SpreadLUT returns the input key with a zero bit inserted above each of
	// its bits. Bit i of the key moves to bit 2*i of the result.
	SpreadLUT [256]uint16

	// CompactLUT is the inverse of SpreadLUT for keys whose odd bits are zero.
	// It is indexed by the low 8 bits of a spread value and returns 4 bits.
	CompactLUT [256]uint8
)

func init() {
	for i := range SpreadLUT {
		v := uint16(i)
		v = (v | v<<4) & 0x0f0f
		v = (v | v<<2) & 0x3333
		v = (v | v<<1) & 0x5555
		SpreadLUT[i] = v
	}
	for i := range CompactLUT {
		v := uint8(i) & 0x55
		v = (v | v>>1) & 0x33
		v = (v | v>>2) & 0x0f
		CompactLUT[i] = v
	}
}

// SpreadUint32 spreads the lower 16 bits of v across all 32 bits.
func SpreadUint32(v uint32) (x uint32) {
	x |= uint32(SpreadLUT[byte(v>>0)]) << 0
	x |= uint32(SpreadLUT[byte(v>>8)]) << 16
	return x
}

// Interleave returns the Morton code of (x, y) with x occupying the even bits.
func Interleave(x, y uint32) uint32 {
	return SpreadUint32(x) | SpreadUint32(y)<<1
}

// Deinterleave splits a Morton code into its x and y components.
func Deinterleave(m uint32) (x, y uint32) {
	for i := uint(0); i < 4; i++ {
		x |= uint32(CompactLUT[byte(m>>(8*i))]) << (4 * i)
		y |= uint32(CompactLUT[byte(m>>(8*i+1))]) << (4 * i)
	}
	return x, y
}

// Log2 returns the base-2 logarithm of n, or -1 if n is not a power of two.
func Log2(n int) int {
	if n <= 0 || n&(n-1) != 0 {
		return -1
	}
	var k int
	for n > 1 {
		n >>= 1
		k++
	}
	return k
}
