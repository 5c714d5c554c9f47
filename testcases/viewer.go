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

import "seehuhn.de/go/gridview"

// CloudSize is the number of circles in the viewer's default scene.
const CloudSize = 100_000

var viewerCases = []TestCase{
	{
		Name:   "default",
		Scene:  ViewerScene,
		Width:  1024,
		Height: 768,
		View:   DefaultView,
	},
	{
		Name:   "default_zoomed",
		Scene:  ViewerScene,
		Width:  1024,
		Height: 768,
		View:   DefaultView,
		Events: []gridview.Input{
			scroll(600, 600, 1000),
			scroll(600, 600, 1000),
			at(600, 600),
		},
	},
}

// ViewerScene returns the scene the interactive viewer starts with: a
// 100 × 100 cost field, three random snakes and CloudSize circles spread
// over the field.
func ViewerScene() (*gridview.Scene, error) {
	const n = 100
	f, err := CostField(n, n, 0.6, 1000, CloudSeed)
	if err != nil {
		return nil, err
	}
	snakes, err := randomWalks(n, n, 3, 500, CloudSeed)()
	if err != nil {
		return nil, err
	}
	circles := CircleCloud(CloudSize, n, CloudSeed)
	return gridview.NewScene(f, snakes, circles)
}
