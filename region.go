// seehuhn.de/go/gridview - a pan/zoom viewer for cost grids
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package gridview

import (
	"iter"
	"math"
)

const (
	// RegionMargin is the number of extra cells added on each side of the
	// visible region, so that partially visible border cells are drawn and
	// fast pans do not show gaps.
	RegionMargin = 3

	// MaxVisibleCells is the cell budget for the per-cell drawing pass.
	// Regions with at least this many cells are reported by TooBig.
	MaxVisibleCells = 20000
)

// Range is a half-open range [Start, End) of grid indices.
type Range struct {
	Start, End int
}

// Len returns the number of indices in r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether r contains no indices.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Contains reports whether i lies in r.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// VisibleRegion is the set of grid cells which must be drawn for a frame.
// Rows index logical y, columns index logical x.
type VisibleRegion struct {
	Rows, Cols Range
}

// Visible returns the cells of a rows × cols grid which are shown inside the
// screen rectangle viewport, padded by RegionMargin cells on every side and
// clamped to the grid.  The result never refers to cells outside the grid.
// A viewport without area, or one outside the grid, gives an empty region.
func Visible(t *Transform, viewport ScreenRect, rows, cols int) VisibleRegion {
	viewport = viewport.Canon()
	if viewport.Empty() || rows <= 0 || cols <= 0 {
		return VisibleRegion{}
	}
	lr := t.LogicalRect(viewport)
	return VisibleRegion{
		Rows: axisRange(lr.LLy, lr.URy, rows),
		Cols: axisRange(lr.LLx, lr.URx, cols),
	}
}

// axisRange converts the logical interval [lo, hi] on one axis into a
// padded, clamped index range within [0, n).
func axisRange(lo, hi float64, n int) Range {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return Range{}
	}

	// Truncate in float64, limited to a range where the conversion to int
	// is exact and the margin arithmetic cannot overflow.
	limit := float64(n + RegionMargin + 1)
	start := int(math.Trunc(min(max(lo, -limit), limit))) - RegionMargin
	end := int(math.Trunc(min(max(hi, -limit), limit))) + RegionMargin

	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	return Range{Start: start, End: end}
}

// Len returns the number of cells in the region.
func (v VisibleRegion) Len() int {
	if v.Rows.Empty() || v.Cols.Empty() {
		return 0
	}
	return v.Rows.Len() * v.Cols.Len()
}

// Empty reports whether the region contains no cells.
func (v VisibleRegion) Empty() bool {
	return v.Len() == 0
}

// TooBig reports whether the region holds MaxVisibleCells cells or more.
// Callers skip the per-cell drawing pass for such regions.
func (v VisibleRegion) TooBig() bool {
	return v.Len() >= MaxVisibleCells
}

// Contains reports whether cell c lies in the region.
func (v VisibleRegion) Contains(c Cell) bool {
	return v.Rows.Contains(c.Row) && v.Cols.Contains(c.Col)
}

// Cells iterates over the cells of the region in row-major order.
func (v VisibleRegion) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for r := v.Rows.Start; r < v.Rows.End; r++ {
			for c := v.Cols.Start; c < v.Cols.End; c++ {
				if !yield(Cell{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}
