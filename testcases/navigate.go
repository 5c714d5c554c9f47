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

var navigateCases = []TestCase{
	{
		Name:   "zoom_in",
		Scene:  mixedScene,
		Width:  400,
		Height: 400,
		View:   View{ZoomLog: math.Log(4)},
		Events: []gridview.Input{scroll(200, 200, 250), scroll(200, 200, 250)},
	},
	{
		Name:   "zoom_out",
		Scene:  mixedScene,
		Width:  400,
		Height: 400,
		View:   View{ZoomLog: math.Log(40)},
		Events: []gridview.Input{scroll(0, 0, -1000)},
	},
	{
		Name:   "pan",
		Scene:  mixedScene,
		Width:  400,
		Height: 400,
		View:   View{ZoomLog: math.Log(10)},
		Events: []gridview.Input{drag(-40, -20), drag(-40, -20), drag(-40, -20)},
	},
	{
		// zoom in on circle 9 and pick it
		Name:   "zoom_select",
		Scene:  mixedScene,
		Width:  400,
		Height: 400,
		View:   View{ZoomLog: math.Log(4)},
		Events: []gridview.Input{
			scroll(38, 38, 500),
			scroll(38, 38, 500),
			click(38, 38),
		},
	},
}

// mixedScene has a 60 × 60 field, a few snakes and a circle at each cell
// centre on the diagonal.
func mixedScene() (*gridview.Scene, error) {
	const n = 60
	f, err := CostField(n, n, 0.7, 100, 20)
	if err != nil {
		return nil, err
	}
	snakes, err := randomWalks(n, n, 3, 150, 21)()
	if err != nil {
		return nil, err
	}
	circles := make([]gridview.Circle, n)
	for i := range circles {
		circles[i] = gridview.Circle{
			Center: gridview.CellCenter(gridview.Cell{Row: i, Col: i}),
			R:      0.3,
		}
	}
	return gridview.NewScene(f, snakes, circles)
}
