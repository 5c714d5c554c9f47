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
	"iter"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Snake is a traced route through the grid: a sequence of cells in which
// each cell is a 4-neighbour of the one before.
type Snake []Cell

// NewSnake validates the cells and returns them as a Snake.
// The input is copied.
func NewSnake(cells []Cell) (Snake, error) {
	s := Snake(append([]Cell(nil), cells...))
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that s is non-empty and that consecutive cells differ by
// exactly one unit in exactly one axis.
func (s Snake) Validate() error {
	if len(s) == 0 {
		return ErrEmptySnake
	}
	for i := 1; i < len(s); i++ {
		if !Adjacent(s[i-1], s[i]) {
			return fmt.Errorf("step %d, %v -> %v: %w", i, s[i-1], s[i], ErrNotAdjacent)
		}
	}
	return nil
}

// CheckBounds reports an error if any cell of s lies outside f.
func (s Snake) CheckBounds(f *GridField) error {
	for i, c := range s {
		if !f.InBounds(c) {
			return fmt.Errorf("cell %d at %v: %w", i, c, ErrOutOfBounds)
		}
	}
	return nil
}

// Adjacent reports whether a and b are 4-neighbours.
func Adjacent(a, b Cell) bool {
	dr := a.Row - b.Row
	dc := a.Col - b.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// CellCenter returns the logical centre of cell c.
func CellCenter(c Cell) vec.Vec2 {
	return vec.Vec2{X: float64(c.Col) + 0.5, Y: float64(c.Row) + 0.5}
}

// Path returns the snake as an open polyline through the cell centres, in
// logical coordinates.
func (s Snake) Path() *path.Data {
	p := &path.Data{}
	for i, c := range s {
		if i == 0 {
			p = p.MoveTo(CellCenter(c))
		} else {
			p = p.LineTo(CellCenter(c))
		}
	}
	return p
}

// Segments iterates over the steps of s which touch the region, in path
// order.  A step is yielded if at least one of its two cells lies inside reg.
func (s Snake) Segments(reg VisibleRegion) iter.Seq2[Cell, Cell] {
	return func(yield func(Cell, Cell) bool) {
		for i := 1; i < len(s); i++ {
			a, b := s[i-1], s[i]
			if !reg.Contains(a) && !reg.Contains(b) {
				continue
			}
			if !yield(a, b) {
				return
			}
		}
	}
}
