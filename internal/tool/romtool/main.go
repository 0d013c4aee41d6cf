// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Romtool inspects the ROM tables.
//
// Example usage:
//
//	$ go build -o romtool ./internal/tool/romtool
//	$ ./romtool bench -gens rec,morton -depths 2,4,6
//
//	BENCHMARK: zscan
//		benchmark     rec Munits/s  delta      morton Munits/s  delta
//		2:4:16              310.20  1.00x               401.55  1.29x
//		4:16:256            295.81  1.00x               612.03  2.07x
//		6:64:4Ki            280.47  1.00x               640.92  2.29x
//
//	BENCHMARK: new
//		64x64/4         12.34 Munits/s
//
//	$ ./romtool dump -o tables.txt.zst
//	$ ./romtool verify -cu 32 -unit 4
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
	"time"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/hevckit/rom"
	"github.com/hevckit/rom/internal/tool/bench"
	"github.com/hevckit/rom/internal/tool/dump"
)

const defaultDepths = "1,2,4,6"

var sep = regexp.MustCompile("[,:]")

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "bench":
		err = runBench(args)
	case "dump":
		err = runDump(args)
	case "verify":
		err = runVerify(args)
	default:
		usage()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "romtool: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: romtool bench|dump|verify [flags]")
	os.Exit(2)
}

// geometryFlags registers the flags that select a coding-unit geometry.
// Sizes accept SI and IEC prefixes.
func geometryFlags(fs *flag.FlagSet) func() (rom.Geometry, error) {
	cu := fs.String("cu", fmt.Sprint(rom.MaxCUSize), "Coding unit size in pixels")
	unit := fs.String("unit", fmt.Sprint(rom.UnitSize), "Minimum unit size in pixels")
	return func() (rom.Geometry, error) {
		var g rom.Geometry
		for _, f := range []struct {
			s string
			v *int
		}{{*cu, &g.MaxCUSize}, {*unit, &g.UnitSize}} {
			n, err := strconv.ParsePrefix(f.s, strconv.AutoParse)
			if err != nil || n != math.Trunc(n) {
				return g, fmt.Errorf("invalid size %q", f.s)
			}
			*f.v = int(n)
		}
		return g, g.Validate()
	}
}

func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	f0 := fs.String("gens", strings.Join(bench.Names(), ","), "List of generators to benchmark")
	f1 := fs.String("depths", defaultDepths, "List of grid depths to benchmark")
	geom := geometryFlags(fs)
	fs.Parse(args)

	g, err := geom()
	if err != nil {
		return err
	}
	gens := sep.Split(*f0, -1)
	for _, s := range gens {
		if _, ok := bench.Generators[s]; !ok {
			return fmt.Errorf("unknown generator %q", s)
		}
	}
	var depths []int
	for _, s := range sep.Split(*f1, -1) {
		d, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			return fmt.Errorf("invalid depth %q", s)
		}
		depths = append(depths, int(d))
	}

	ts := time.Now()
	fmt.Println("BENCHMARK: zscan")
	var cnt int
	tick := func() {
		total := len(gens) * len(depths)
		pct := 100.0 * float64(cnt) / float64(total)
		fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
		cnt++
	}
	results, names := bench.BenchmarkGeneratorSuite(gens, depths, tick)
	printResults(results, names, gens, "Munits/s", "")
	fmt.Println()

	fmt.Println("BENCHMARK: new")
	r := bench.BenchmarkNew(g)
	if r.N > 0 {
		us := (float64(r.T.Nanoseconds()) / 1e3) / float64(r.N)
		fmt.Printf("\t%dx%d/%d\t%.2f Munits/s\n\n", g.MaxCUSize, g.MaxCUSize, g.UnitSize, float64(r.Bytes)/us)
	}
	fmt.Printf("RUNTIME: %v\n", time.Since(ts))
	return nil
}

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	out := fs.String("o", "", "Output file; the extension selects the compression (.zst, .xz)")
	geom := geometryFlags(fs)
	fs.Parse(args)

	g, err := geom()
	if err != nil {
		return err
	}
	t := rom.New(g)
	if *out == "" {
		return dump.Write(os.Stdout, t, dump.FormatText)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := dump.Write(f, t, dump.FormatFromPath(*out)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	geom := geometryFlags(fs)
	fs.Parse(args)

	g, err := geom()
	if err != nil {
		return err
	}
	t := rom.New(g)
	if err := rom.Verify(t); err != nil {
		return err
	}
	fmt.Printf("OK %dx%d/%d checksum 0x%08x\n", g.MaxCUSize, g.MaxCUSize, g.UnitSize, t.Checksum())
	return nil
}

func printResults(results [][]bench.Result, names, gens []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(gens))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range gens {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(gens))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
