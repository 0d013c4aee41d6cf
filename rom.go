// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package rom holds the read-only tables of an HEVC encoder.
//
// Literal tables (lambda, transform bases, interpolation filters, scan
// orders and entropy tables) are package variables and may be read at any
// time. Tables that depend on the coding-unit geometry (Z-scan and raster
// addressing) are held by a Tables value built with New. A single shared
// instance for DefaultGeometry is managed by Init and Destroy.
//
// Accessors do not validate their arguments beyond what the Go runtime
// already does. Callers must range-check indexes against the constants of
// this package. Building with the "debug" tag turns on descriptive checks.
package rom

import (
	"runtime"
	"sync/atomic"
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "rom: " + string(e) }

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

const (
	stateIdle int32 = iota
	stateBuilding
	stateReady
)

var (
	state       atomic.Int32
	shared      atomic.Pointer[Tables]
	populations atomic.Int64 // Number of times the shared tables were built
)

// Init builds the shared tables for DefaultGeometry.
//
// It is safe to call from multiple goroutines. Exactly one caller builds the
// tables; every caller returns only after the tables are published.
// Calling Init again without an intervening Destroy does nothing.
func Init() {
	for {
		if state.CompareAndSwap(stateIdle, stateBuilding) {
			shared.Store(New(DefaultGeometry))
			populations.Add(1)
			state.Store(stateReady)
			return
		}
		if state.Load() == stateReady {
			return
		}
		runtime.Gosched()
	}
}

// Destroy releases the shared tables. It does nothing if Init has not
// completed. Literal tables are not affected.
func Destroy() {
	if !state.CompareAndSwap(stateReady, stateBuilding) {
		return
	}
	shared.Store(nil)
	state.Store(stateIdle)
}

// Default returns the shared tables. It panics if Init has not completed.
func Default() *Tables {
	t := shared.Load()
	if t == nil {
		panic(Error("tables used before Init"))
	}
	return t
}

// ZScanToRaster returns the raster index of Z-scan index i in the shared tables.
func ZScanToRaster(i int) uint32 { return Default().ZScanToRaster(i) }

// RasterToZScan returns the Z-scan index of raster index i in the shared tables.
func RasterToZScan(i int) uint32 { return Default().RasterToZScan(i) }

// RasterToPelX returns the horizontal pixel offset of raster index i.
func RasterToPelX(i int) uint32 { return Default().RasterToPelX(i) }

// RasterToPelY returns the vertical pixel offset of raster index i.
func RasterToPelY(i int) uint32 { return Default().RasterToPelY(i) }

// ConvertToBit returns log2(size)-2 for a supported block size, or -1.
func ConvertToBit(size int) int { return Default().ConvertToBit(size) }
