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

var snakeCases = []TestCase{
	{
		Name: "straight",
		Scene: snakeScene(20, 20, func() ([]gridview.Snake, error) {
			return []gridview.Snake{
				line(gridview.Cell{Row: 2, Col: 2}, gridview.Cell{Row: 2, Col: 17}),
				line(gridview.Cell{Row: 3, Col: 17}, gridview.Cell{Row: 17, Col: 17}),
			}, nil
		}),
		Width:  400,
		Height: 400,
		View:   View{ZoomLog: math.Log(20)},
	},
	{
		Name:   "random_walks",
		Scene:  snakeScene(50, 50, randomWalks(50, 50, 5, 200, 10)),
		Width:  400,
		Height: 400,
		View:   View{ZoomLog: math.Log(8)},
	},
	{
		// most of the snake is outside the visible region
		Name: "partial",
		Scene: snakeScene(100, 100, func() ([]gridview.Snake, error) {
			return []gridview.Snake{
				line(gridview.Cell{Row: 10, Col: 0}, gridview.Cell{Row: 10, Col: 99}),
			}, nil
		}),
		Width:  305,
		Height: 305,
		View:   View{ZoomLog: math.Log(10)},
	},
}

// snakeScene returns a builder for a scene with a sparse rows × cols cost
// field and the given snakes on top.
func snakeScene(rows, cols int, snakes func() ([]gridview.Snake, error)) func() (*gridview.Scene, error) {
	return func() (*gridview.Scene, error) {
		f, err := CostField(rows, cols, 0.5, 10, uint64(rows*cols))
		if err != nil {
			return nil, err
		}
		ss, err := snakes()
		if err != nil {
			return nil, err
		}
		return gridview.NewScene(f, ss, nil)
	}
}

// randomWalks returns n random snakes of the given length, all starting in
// the middle of the grid.
func randomWalks(rows, cols, n, length int, seed uint64) func() ([]gridview.Snake, error) {
	return func() ([]gridview.Snake, error) {
		res := make([]gridview.Snake, n)
		start := gridview.Cell{Row: rows / 2, Col: cols / 2}
		for i := range res {
			s, err := RandomSnake(rows, cols, start, length, seed+uint64(i))
			if err != nil {
				return nil, err
			}
			res[i] = s
		}
		return res, nil
	}
}
