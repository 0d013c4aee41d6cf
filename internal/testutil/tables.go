// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import "fmt"

// Integer is the set of element types used by the ROM tables.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int | ~uint8 | ~uint16 | ~uint32
}

// CheckPermutation reports an error unless s holds every value of
// [0, len(s)) exactly once.
func CheckPermutation[T Integer](s []T) error {
	seen := make([]bool, len(s))
	for i, v := range s {
		if int(v) < 0 || int(v) >= len(s) {
			return fmt.Errorf("entry %d: value %d out of range [0, %d)", i, v, len(s))
		}
		if seen[v] {
			return fmt.Errorf("entry %d: duplicate value %d", i, v)
		}
		seen[v] = true
	}
	return nil
}

// Dot returns the inner product of two equally sized rows.
func Dot[T Integer](a, b []T) int64 {
	if len(a) != len(b) {
		panic("mismatching row lengths")
	}
	var sum int64
	for i := range a {
		sum += int64(a[i]) * int64(b[i])
	}
	return sum
}

// Sum returns the sum of all entries of s.
func Sum[T Integer](s []T) int64 {
	var sum int64
	for _, v := range s {
		sum += int64(v)
	}
	return sum
}
