// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of various Z-scan table generators
// and of building the complete set of addressing tables.
package bench

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"testing"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/hevckit/rom"
	"github.com/hevckit/rom/internal/zscan"
)

// Generator fills buf with the raster index of every unit of a grid of the
// given depth, in Z-scan order.
type Generator func(buf []uint32, depth int)

var Generators map[string]Generator

func RegisterGenerator(name string, gen Generator) {
	if Generators == nil {
		Generators = make(map[string]Generator)
	}
	Generators[name] = gen
}

// Names returns the registered generator names in sorted order, with the
// reference generator "rec" first when present.
func Names() []string {
	var s []string
	for k := range Generators {
		if k != "rec" {
			s = append(s, k)
		}
	}
	sort.Strings(s)
	if _, ok := Generators["rec"]; ok {
		s = append([]string{"rec"}, s...)
	}
	return s
}

// BenchmarkGenerator benchmarks a single generator on a grid of the given
// depth and reports the result. Every iteration counts one byte per unit.
func BenchmarkGenerator(depth int, gen Generator) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if gen == nil {
			b.Fatalf("unexpected error: nil Generator")
		}
		buf := make([]uint32, zscan.NumUnits(depth))
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			gen(buf, depth)
			b.SetBytes(int64(len(buf)))
		}
	})
}

// BenchmarkNew benchmarks building every addressing table of a geometry.
func BenchmarkNew(g rom.Geometry) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if err := g.Validate(); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			rom.New(g)
			b.SetBytes(int64(g.NumUnits()))
		}
	})
}

type Result struct {
	R float64 // Rate (Munits/s)
	D float64 // Delta ratio relative to the first generator
}

// BenchmarkGeneratorSuite runs the benchmark for every generator and depth.
//
// The values returned have the following structure:
//
//	results: [len(depths)][len(gens)]Result
//	names:   [len(depths)]string
func BenchmarkGeneratorSuite(gens []string, depths []int, tick func()) (results [][]Result, names []string) {
	results = make([][]Result, len(depths))
	names = make([]string, len(depths))
	for i, d := range depths {
		results[i] = make([]Result, len(gens))
		names[i] = getName(d)
		for j, g := range gens {
			if tick != nil {
				tick()
			}
			if d >= 0 && d <= zscan.MaxDepth {
				results[i][j] = rate(BenchmarkGenerator(d, Generators[g]))
			}
			results[i][j].D = results[i][j].R / results[i][0].R
		}
	}
	return results, names
}

func rate(result testing.BenchmarkResult) Result {
	if result.N == 0 {
		return Result{}
	}
	us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
	return Result{R: float64(result.Bytes) / us}
}

// getName formats a depth as "depth:width:units", for example "4:16:256"
// or "8:256:64Ki".
func getName(depth int) string {
	if depth < 0 || depth > zscan.MaxDepth {
		return fmt.Sprintf("%d:invalid", depth)
	}
	n := zscan.NumUnits(depth)
	s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
	s = strings.Replace(s, ".00", "", -1)
	return fmt.Sprintf("%d:%d:%s", depth, 1<<uint(depth), s)
}
