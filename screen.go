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

import "math"

// ScreenPoint is a position on the rendering surface, in pixels.
type ScreenPoint struct {
	X, Y float32
}

// ScreenVector is a displacement on the rendering surface, in pixels.
type ScreenVector struct {
	X, Y float32
}

// Add returns p shifted by v.
func (p ScreenPoint) Add(v ScreenVector) ScreenPoint {
	return ScreenPoint{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p ScreenPoint) Sub(q ScreenPoint) ScreenVector {
	return ScreenVector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between p and q.
// The computation is done in float64 to avoid overflow of the squares.
func (p ScreenPoint) Distance(q ScreenPoint) float32 {
	dx := float64(p.X) - float64(q.X)
	dy := float64(p.Y) - float64(q.Y)
	return float32(math.Hypot(dx, dy))
}

// Add returns the sum of two vectors.
func (v ScreenVector) Add(w ScreenVector) ScreenVector {
	return ScreenVector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v-w.
func (v ScreenVector) Sub(w ScreenVector) ScreenVector {
	return ScreenVector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul scales v by k.
func (v ScreenVector) Mul(k float32) ScreenVector {
	return ScreenVector{X: v.X * k, Y: v.Y * k}
}

// ScreenRect is an axis-aligned rectangle on the rendering surface.
// Min is the top-left corner, Max the bottom-right corner.
type ScreenRect struct {
	Min, Max ScreenPoint
}

// Canon returns the rectangle with Min and Max ordered on both axes.
func (r ScreenRect) Canon() ScreenRect {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Dx returns the width of r.
func (r ScreenRect) Dx() float32 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r ScreenRect) Dy() float32 { return r.Max.Y - r.Min.Y }

// Empty reports whether r has no area.
func (r ScreenRect) Empty() bool {
	return !(r.Min.X < r.Max.X && r.Min.Y < r.Max.Y)
}

// Contains reports whether p lies in the half-open rectangle [Min, Max).
func (r ScreenRect) Contains(p ScreenPoint) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether r and s share any area.
func (r ScreenRect) Overlaps(s ScreenRect) bool {
	return r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Grow returns r enlarged by d pixels on every side.
func (r ScreenRect) Grow(d float32) ScreenRect {
	return ScreenRect{
		Min: ScreenPoint{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: ScreenPoint{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}
