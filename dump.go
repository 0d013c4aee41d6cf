// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rom

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type namedTable struct {
	name string
	obj  interface{}
}

// all lists every table in a fixed order. Derived tables come first.
func (t *Tables) all() []namedTable {
	return []namedTable{
		{"zscanToRaster", t.zscanToRaster},
		{"rasterToZscan", t.rasterToZscan},
		{"rasterToPelX", t.rasterToPelX},
		{"rasterToPelY", t.rasterToPelY},
		{"convertToBit", t.convertToBit},

		{"lambdaTab", lambdaTab[:]},
		{"lambda2Tab", lambda2Tab[:]},
		{"chromaLambda2OffsetTab", chromaLambda2OffsetTab[:]},
		{"chromaScaleTab", chromaScaleTab[:]},

		{"transform4", transform4},
		{"transform8", transform8},
		{"transform16", transform16},
		{"transform32", transform32},
		{"lumaFilter", lumaFilter},
		{"chromaFilter", chromaFilter},

		{"scan2x2", scan2x2[:]},
		{"scan4x4", scan4x4[:]},
		{"scan8x8", scan8x8[:]},
		{"scan8x8Diag", scan8x8Diag},
		{"scan16x16", scan16x16},
		{"scan32x32", scan32x32},

		{"lpsTable", lpsTable[:]},
		{"nextStateMPS", nextStateMPS[:]},
		{"nextStateLPS", nextStateLPS[:]},
		{"renormTable", renormTable[:]},
		{"minInGroup", minInGroup[:]},
		{"goRiceRange", goRiceRange[:]},
		{"exp2LUT", exp2LUT[:]},

		{"puOffset", puOffset[:]},
		{"winUnitX", winUnitX[:]},
		{"winUnitY", winUnitY[:]},
		{"chroma422IntraAngle", chroma422IntraAngle[:]},
	}
}

// Dump writes every table held by t and every literal table to w, one
// "var name type = value" line per table.
func Dump(w io.Writer, t *Tables) error {
	bw := bufio.NewWriter(w)
	for _, nt := range t.all() {
		if _, err := fmt.Fprintf(bw, "var %s %T = %s\n", nt.name, nt.obj, formatTable(nt.obj)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatTable(obj interface{}) string {
	var n int
	var at func(int) string
	switch v := obj.(type) {
	case []uint32:
		n, at = len(v), func(i int) string { return fmt.Sprint(v[i]) }
	case []uint16:
		n, at = len(v), func(i int) string { return fmt.Sprint(v[i]) }
	}
	if n < 64 {
		return fmt.Sprintf("%v", obj)
	}

	// Large integer tables are laid out in rows of 16 entries.
	var ss []string
	ss = append(ss, "{")
	var row []string
	for i := 0; i < n; i++ {
		row = append(row, at(i))
		if i%16 == 15 || i+1 == n {
			ss = append(ss, "\t"+strings.Join(row, " "))
			row = row[:0]
		}
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}
