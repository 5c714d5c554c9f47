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
	"fmt"
	"math"
)

// Cell identifies a grid cell.  Cell (Row, Col) covers the logical square
// [Col, Col+1) × [Row, Row+1).
type Cell struct {
	Row, Col int
}

// Cost is an optional cell cost.  Cells with Valid == false have no cost and
// are not drawn.
type Cost struct {
	Value int64
	Valid bool
}

// GridField is a dense rows × cols grid of optional costs.
//
// Cells are stored in a flat row-major slice, indexed by row*cols + col,
// with a parallel presence flag.  The field must not be modified once it has
// been handed to NewScene.
type GridField struct {
	rows, cols int
	costs      []int64
	present    []bool
}

// NewGridField returns a rows × cols field in which no cell has a cost.
func NewGridField(rows, cols int) (*GridField, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	n := rows * cols
	return &GridField{
		rows:    rows,
		cols:    cols,
		costs:   make([]int64, n),
		present: make([]bool, n),
	}, nil
}

// FieldFromRows builds a field from nested rows of optional costs.
// The input is copied.
func FieldFromRows(values [][]Cost) (*GridField, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	f, err := NewGridField(len(values), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		for c, v := range row {
			i := f.index(r, c)
			f.costs[i] = v.Value
			f.present[i] = v.Valid
		}
	}
	return f, nil
}

// Rows returns the number of rows.
func (f *GridField) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *GridField) Cols() int { return f.cols }

// InBounds reports whether c lies within the grid.
func (f *GridField) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < f.rows && c.Col >= 0 && c.Col < f.cols
}

// At returns the cost of cell (row, col).  Cells outside the grid have no
// cost.
func (f *GridField) At(row, col int) Cost {
	if !f.InBounds(Cell{Row: row, Col: col}) {
		return Cost{}
	}
	i := f.index(row, col)
	return Cost{Value: f.costs[i], Valid: f.present[i]}
}

// Set assigns a cost to cell (row, col).
func (f *GridField) Set(row, col int, cost int64) error {
	if !f.InBounds(Cell{Row: row, Col: col}) {
		return fmt.Errorf("set (%d, %d) in %d×%d grid: %w", row, col, f.rows, f.cols, ErrOutOfBounds)
	}
	i := f.index(row, col)
	f.costs[i] = cost
	f.present[i] = true
	return nil
}

// Clear removes the cost of cell (row, col).
func (f *GridField) Clear(row, col int) error {
	if !f.InBounds(Cell{Row: row, Col: col}) {
		return fmt.Errorf("clear (%d, %d) in %d×%d grid: %w", row, col, f.rows, f.cols, ErrOutOfBounds)
	}
	i := f.index(row, col)
	f.costs[i] = 0
	f.present[i] = false
	return nil
}

// MaxAbs returns the largest magnitude of all present costs, or 0 if no
// cell has a cost.
func (f *GridField) MaxAbs() int64 {
	var m int64
	for i, ok := range f.present {
		if !ok {
			continue
		}
		v := f.costs[i]
		if v == math.MinInt64 {
			return math.MaxInt64
		}
		if v < 0 {
			v = -v
		}
		m = max(m, v)
	}
	return m
}

// index maps (row, col) to the row-major index row*cols + col.
func (f *GridField) index(row, col int) int {
	return row*f.cols + col
}
