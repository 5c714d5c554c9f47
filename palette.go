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

import "image/color"

// Colours used for frame output.
var (
	BackgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	CircleColor     = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	HoverColor      = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	SelectedColor   = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
)

// snakeColors is cycled through by SnakeColor.
var snakeColors = []color.NRGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 230, G: 120, B: 0, A: 255},
	{R: 140, G: 0, B: 200, A: 255},
	{R: 0, G: 150, B: 150, A: 255},
	{R: 150, G: 90, B: 40, A: 255},
}

// SnakeColor returns the stroke colour for snake number i.
func SnakeColor(i int) color.NRGBA {
	if i < 0 {
		i = -i
	}
	return snakeColors[i%len(snakeColors)]
}

// CostColor maps a cell cost to a colour.  Positive costs shade from pale to
// saturated red, negative costs from pale to saturated blue, relative to
// maxAbs.  A zero cost is light grey.
func CostColor(cost, maxAbs int64) color.NRGBA {
	if cost == 0 || maxAbs <= 0 {
		return color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	}

	mag := float64(cost)
	if mag < 0 {
		mag = -mag
	}
	// minimum intensity 0.2, so that small costs stay distinguishable from 0
	t := 0.2 + 0.8*min(mag/float64(maxAbs), 1)
	fade := uint8(255 * (1 - t))
	if cost > 0 {
		return color.NRGBA{R: 255, G: fade, B: fade, A: 255}
	}
	return color.NRGBA{R: fade, G: fade, B: 255, A: 255}
}
