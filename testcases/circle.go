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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/gridview"
)

// threeCircles are placed for an unscaled view: the cursor positions used
// below are screen positions.
var threeCircles = []gridview.Circle{
	{Center: vec.Vec2{X: 100, Y: 100}, R: 10},
	{Center: vec.Vec2{X: 200, Y: 100}, R: 10},
	{Center: vec.Vec2{X: 150, Y: 200}, R: 20},
}

var circleCases = []TestCase{
	{
		Name:   "plain",
		Scene:  circleScene(threeCircles),
		Width:  300,
		Height: 300,
	},
	{
		Name:   "hover",
		Scene:  circleScene(threeCircles),
		Width:  300,
		Height: 300,
		Events: []gridview.Input{at(203, 98)},
	},
	{
		Name:   "select",
		Scene:  circleScene(threeCircles),
		Width:  300,
		Height: 300,
		Events: []gridview.Input{click(100, 100), at(150, 215)},
	},
	{
		// a click near nothing keeps the selection
		Name:   "select_miss",
		Scene:  circleScene(threeCircles),
		Width:  300,
		Height: 300,
		Events: []gridview.Input{click(150, 200), click(20, 280)},
	},
	{
		// hovering the selected circle still shows it as selected
		Name:   "select_hover",
		Scene:  circleScene(threeCircles),
		Width:  300,
		Height: 300,
		Events: []gridview.Input{click(200, 100), at(201, 101)},
	},
	{
		// within the hit threshold of the circle's edge
		Name:   "near_edge",
		Scene:  circleScene(threeCircles),
		Width:  300,
		Height: 300,
		Events: []gridview.Input{click(114, 100)},
	},
	{
		Name:   "offscreen",
		Scene:  circleScene(threeCircles),
		Width:  300,
		Height: 300,
		View:   View{Shift: gridview.ScreenVector{X: -180}},
	},
}

func circleScene(circles []gridview.Circle) func() (*gridview.Scene, error) {
	return func() (*gridview.Scene, error) {
		return gridview.NewScene(nil, nil, circles)
	}
}
