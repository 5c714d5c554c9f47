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

import "errors"

var (
	// ErrEmptyGrid indicates a grid without rows or without columns.
	ErrEmptyGrid = errors.New("gridview: grid must have at least one row and one column")
	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("gridview: all rows must have the same length")
	// ErrOutOfBounds indicates a cell index outside the grid.
	ErrOutOfBounds = errors.New("gridview: cell outside the grid")
	// ErrEmptySnake indicates a path without any cells.
	ErrEmptySnake = errors.New("gridview: snake must contain at least one cell")
	// ErrNotAdjacent indicates consecutive path cells which are not
	// 4-neighbours.
	ErrNotAdjacent = errors.New("gridview: consecutive snake cells are not adjacent")
)
