// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_zscan_lib

package bench

import "github.com/hevckit/rom/internal/zscan"

func init() {
	RegisterGenerator("rec", zscan.Generate)
	RegisterGenerator("morton", zscan.Morton)
	RegisterGenerator("table", func(buf []uint32, depth int) {
		// Builds the inverse table as well, as the full addressing setup does.
		zscan.Generate(buf, depth)
		inv := make([]uint32, len(buf))
		zscan.Invert(inv, buf)
	})
}
