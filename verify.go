// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rom

import (
	"fmt"
	"math"

	"github.com/hevckit/rom/internal"
)

func errorf(format string, a ...interface{}) {
	panic(Error(fmt.Sprintf(format, a...)))
}

// Verify checks the structural properties of t and of every literal table,
// and reports the first property that does not hold.
func Verify(t *Tables) (err error) {
	defer errRecover(&err)
	verifyAddressing(t)
	verifyLambda()
	verifyTransforms()
	verifyFilters()
	verifyScans()
	verifyEntropy()
	return nil
}

func verifyAddressing(t *Tables) {
	g := t.geom
	if err := g.Validate(); err != nil {
		panic(err)
	}
	n, w, u := g.NumUnits(), g.UnitsPerRow(), uint32(g.UnitSize)
	for _, nt := range t.all()[:4] {
		if len(nt.obj.([]uint32)) != n {
			errorf("%s has %d entries, want %d", nt.name, len(nt.obj.([]uint32)), n)
		}
	}
	checkPermutation("zscanToRaster", t.zscanToRaster)
	for i := range t.zscanToRaster {
		if r := t.zscanToRaster[i]; t.rasterToZscan[r] != uint32(i) {
			errorf("rasterToZscan[zscanToRaster[%d]] = %d", i, t.rasterToZscan[r])
		}
	}
	for r := 0; r < n; r++ {
		if z := internal.Interleave(uint32(r%w), uint32(r/w)); t.rasterToZscan[r] != z {
			errorf("rasterToZscan[%d] = %d, want Morton index %d", r, t.rasterToZscan[r], z)
		}
	}
	if t.zscanToRaster[0] != 0 || t.zscanToRaster[n-1] != uint32(n-1) {
		errorf("zscanToRaster does not start at 0 and end at %d", n-1)
	}
	if n >= 4 {
		want := [4]uint32{0, 1, uint32(w), uint32(w + 1)}
		for i, v := range want {
			if t.zscanToRaster[i] != v {
				errorf("zscanToRaster[%d] = %d, want %d", i, t.zscanToRaster[i], v)
			}
		}
	}
	for i := 0; i < n; i++ {
		x, y := uint32(i%w)*u, uint32(i/w)*u
		if t.rasterToPelX[i] != x || t.rasterToPelY[i] != y {
			errorf("raster %d at (%d, %d), want (%d, %d)", i, t.rasterToPelX[i], t.rasterToPelY[i], x, y)
		}
	}
	for size, c := 4, 0; size <= g.MaxCUSize; size, c = size*2, c+1 {
		if t.ConvertToBit(size) != c {
			errorf("convertToBit[%d] = %d, want %d", size, t.ConvertToBit(size), c)
		}
	}
}

func verifyLambda() {
	for qp := 1; qp <= MaxQP; qp++ {
		if lambdaTab[qp] <= lambdaTab[qp-1] {
			errorf("lambda not increasing at qp %d", qp)
		}
		if lambda2Tab[qp] <= lambda2Tab[qp-1] {
			errorf("lambda2 not increasing at qp %d", qp)
		}
	}
	for qp := 0; qp <= MaxQP; qp++ {
		want := math.Pow(2, float64(qp)/6-2)
		if math.Abs(lambdaTab[qp]-want) > 1e-4 {
			errorf("lambda[%d] = %v, want %v", qp, lambdaTab[qp], want)
		}
		want = want * want * 0.85
		if math.Abs(lambda2Tab[qp]-want) > 5e-5+want*1e-3 {
			errorf("lambda2[%d] = %v, want %v", qp, lambda2Tab[qp], want)
		}
	}
	for i := 1; i <= MaxChromaLambdaOffset; i++ {
		if chromaLambda2OffsetTab[i] <= chromaLambda2OffsetTab[i-1] {
			errorf("chroma lambda offset not increasing at %d", i)
		}
	}
	for qp, v := range chromaScaleTab {
		switch {
		case qp < 30 && int(v) != qp:
			errorf("chromaScale[%d] = %d, want identity", qp, v)
		case qp > 0 && (v < chromaScaleTab[qp-1] || v > chromaScaleTab[qp-1]+1):
			errorf("chromaScale steps from %d to %d at qp %d", chromaScaleTab[qp-1], v, qp)
		case v > 51:
			errorf("chromaScale[%d] = %d exceeds 51", qp, v)
		}
	}
	if chromaScaleTab[ChromaQPMappingTableSize-1] != 51 {
		errorf("chromaScale does not saturate at 51")
	}
}

func verifyTransforms() {
	for _, n := range []int{4, 8, 16, 32} {
		m := TransformBasis(n)
		norm := 64 * 64 * n
		for i := range m {
			if len(m[i]) != n {
				errorf("transform %d row %d has %d entries", n, i, len(m[i]))
			}
			for j := i; j < n; j++ {
				var dot int
				for k := 0; k < n; k++ {
					dot += int(m[i][k]) * int(m[j][k])
				}
				switch {
				case i == j && abs(dot-norm) > norm/128:
					errorf("transform %d row %d has norm %d, want %d", n, i, dot, norm)
				case i != j && abs(dot) > norm/256:
					errorf("transform %d rows %d and %d are not orthogonal (%d)", n, i, j, dot)
				}
			}
		}
	}
}

func verifyFilters() {
	for _, k := range []FilterKind{FilterLuma, FilterChroma} {
		taps, phases := NTapsLuma, NumLumaPhases
		if k == FilterChroma {
			taps, phases = NTapsChroma, NumChromaPhases
		}
		for p := 0; p < phases; p++ {
			f := InterpolationFilter(k, p)
			if len(f) != taps {
				errorf("%v filter phase %d has %d taps", k, p, len(f))
			}
			var sum int
			for _, c := range f {
				sum += int(c)
			}
			if sum != FilterSum {
				errorf("%v filter phase %d sums to %d", k, p, sum)
			}
		}
	}
}

func verifyScans() {
	for st := ScanType(0); st < NumScanTypes; st++ {
		for _, size := range []int{4, 8, 16, 32} {
			s := ScanOrder(st, size)
			if len(s) != size*size {
				errorf("%v scan of %d has %d entries", st, size, len(s))
			}
			checkPermutation(fmt.Sprintf("%v scan of %d", st, size), s)
			checkPermutation(fmt.Sprintf("%v group scan of %d", st, size), ScanOrderCG(st, size))
		}
	}
}

func verifyEntropy() {
	for s := 0; s < NumStates; s++ {
		for q := 0; q < 4; q++ {
			if q > 0 && lpsTable[s][q] < lpsTable[s][q-1] {
				errorf("lpsTable[%d] decreases at %d", s, q)
			}
			if s > 0 && lpsTable[s][q] > lpsTable[s-1][q] {
				errorf("lpsTable column %d increases at state %d", q, s)
			}
		}
		if nextStateMPS[s] >= NumStates || nextStateLPS[s] >= NumStates {
			errorf("state %d transitions out of range", s)
		}
	}
	for i := 1; i < len(minInGroup); i++ {
		if minInGroup[i] <= minInGroup[i-1] {
			errorf("minInGroup not increasing at %d", i)
		}
	}
	for i := 1; i < len(goRiceRange); i++ {
		if goRiceRange[i] <= goRiceRange[i-1] {
			errorf("goRiceRange not increasing at %d", i)
		}
	}
	for i, v := range exp2LUT {
		want := (math.Exp2(float64(i)/64) - 1) * 256
		if math.Abs(float64(v)-want) > 0.5 {
			errorf("exp2LUT[%d] = %d, want %.2f", i, v, want)
		}
	}
}

// checkPermutation reports whether s holds every value in [0, len(s)) once.
func checkPermutation[T uint16 | uint32](name string, s []T) {
	seen := make([]bool, len(s))
	for i, v := range s {
		if int(v) >= len(s) || seen[v] {
			errorf("%s is not a permutation at %d", name, i)
		}
		seen[v] = true
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
