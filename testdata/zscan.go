// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore

// Generates zscan_64x4.txt. The Z-scan order is computed by de-interleaving
// the bits of each Z-scan index, independently of the recursive walk used by
// the library, so that the two implementations can be checked against each
// other.
package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"strings"
)

const (
	name  = "zscan_64x4.txt"
	depth = 4 // 64x64 coding unit, 4x4 minimum units
)

func main() {
	width := 1 << depth
	var vals []string
	for z := 0; z < width*width; z++ {
		var x, y int
		for b := 0; b < depth; b++ {
			x |= (z >> (2 * b) & 1) << b
			y |= (z >> (2*b + 1) & 1) << b
		}
		vals = append(vals, fmt.Sprint(y*width+x))
	}

	var bb bytes.Buffer
	fmt.Fprintf(&bb, "# Z-scan to raster table for a 64x64 coding unit of 4x4 units (%dx%d grid).\n", width, width)
	fmt.Fprintf(&bb, "# Generated by zscan.go; do not edit.\n")
	for i := 0; i < len(vals); i += width {
		fmt.Fprintln(&bb, strings.Join(vals[i:i+width], ", "))
	}
	if err := ioutil.WriteFile(name, bb.Bytes(), 0664); err != nil {
		panic(err)
	}
}
