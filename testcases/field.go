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


package testcases

import (
	"math"

	"seehuhn.de/go/gridview"
)

var fieldCases = []TestCase{
	{
		Name:   "small_dense",
		Scene:  fieldScene(10, 10, 1, 100, 1),
		Width:  400,
		Height: 400,
		View:   View{ZoomLog: math.Log(40)},
	},
	{
		Name:   "sparse",
		Scene:  fieldScene(40, 60, 0.3, 50, 2),
		Width:  600,
		Height: 400,
		View:   View{ZoomLog: math.Log(10)},
	},
	{
		// the grid starts left of and above the canvas
		Name:   "clipped",
		Scene:  fieldScene(200, 200, 0.9, 20, 3),
		Width:  400,
		Height: 300,
		View:   View{ZoomLog: math.Log(8), Shift: gridview.ScreenVector{X: -404, Y: -402}},
	},
	{
		// too many cells for the per-cell pass
		Name:   "too_big",
		Scene:  fieldScene(1000, 1000, 0.8, 1000, 4),
		Width:  800,
		Height: 600,
		View:   View{},
	},
	{
		Name:   "outside",
		Scene:  fieldScene(10, 10, 1, 10, 5),
		Width:  200,
		Height: 200,
		View:   View{ZoomLog: math.Log(10), Shift: gridview.ScreenVector{X: 5000, Y: 5000}},
	},
	{
		Name:   "single_cell",
		Scene:  fieldScene(1, 1, 1, 7, 6),
		Width:  100,
		Height: 100,
		View:   View{ZoomLog: math.Log(50), Shift: gridview.ScreenVector{X: 25, Y: 25}},
	},
}

// fieldScene returns a builder for a scene showing only a CostField.
func fieldScene(rows, cols int, density float64, maxCost int64, seed uint64) func() (*gridview.Scene, error) {
	return func() (*gridview.Scene, error) {
		f, err := CostField(rows, cols, density, maxCost, seed)
		if err != nil {
			return nil, err
		}
		return gridview.NewScene(f, nil, nil)
	}
}
