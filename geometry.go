// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rom

import "github.com/hevckit/rom/internal"

// Coding-unit geometry limits.
const (
	MaxLog2CUSize = 6                            // Log2 of the largest coding unit
	MaxCUSize     = 1 << MaxLog2CUSize           // Largest coding unit in pixels
	Log2UnitSize  = 2                            // Log2 of the minimum addressable unit
	UnitSize      = 1 << Log2UnitSize            // Minimum addressable unit in pixels
	MaxFullDepth  = MaxLog2CUSize - Log2UnitSize // Quad-tree depth from CU down to a unit
	MaxNumUnitsW  = MaxCUSize / UnitSize         // Units along one side of the largest CU
	MaxNumUnits   = MaxNumUnitsW * MaxNumUnitsW  // Units inside the largest CU
)

// Geometry describes the grid of minimum units inside a coding unit.
// Both sizes are in pixels and must be powers of two.
type Geometry struct {
	MaxCUSize int // Width and height of the coding unit
	UnitSize  int // Width and height of a minimum unit
}

// DefaultGeometry is the geometry used by the shared tables.
var DefaultGeometry = Geometry{MaxCUSize: MaxCUSize, UnitSize: UnitSize}

// Validate reports whether g describes a supported grid.
func (g Geometry) Validate() error {
	l2CU, l2Unit := internal.Log2(g.MaxCUSize), internal.Log2(g.UnitSize)
	switch {
	case l2CU < 0:
		return Error("coding unit size is not a power of two")
	case l2Unit < 0:
		return Error("unit size is not a power of two")
	case l2Unit > l2CU:
		return Error("unit size exceeds coding unit size")
	case g.MaxCUSize/g.UnitSize > MaxNumUnitsW:
		return Error("too many units per coding unit")
	}
	return nil
}

// Depth reports the quad-tree depth between the coding unit and a unit.
func (g Geometry) Depth() int {
	return internal.Log2(g.MaxCUSize) - internal.Log2(g.UnitSize)
}

// UnitsPerRow reports the number of units along one side of the coding unit.
func (g Geometry) UnitsPerRow() int { return g.MaxCUSize / g.UnitSize }

// NumUnits reports the number of units inside the coding unit.
func (g Geometry) NumUnits() int { return g.UnitsPerRow() * g.UnitsPerRow() }
