// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

// Uint64 returns the next 64 pseudo-random bits.
func (r *Rand) Uint64() uint64 {
	r.Encrypt(r.blk[:], r.blk[:])
	return binary.LittleEndian.Uint64(r.blk[:8])
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	return int(r.Uint64()>>1) % n
}

// Range returns a value in [lo, hi].
func (r *Rand) Range(lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// Indexes returns n values sampled from [0, max), possibly repeated.
func (r *Rand) Indexes(n, max int) []int {
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = r.Intn(max)
	}
	return idxs
}
