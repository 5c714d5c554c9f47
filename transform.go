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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const (
	// ZoomSensitivity converts scroll units into a change of the logarithmic
	// zoom level: one unit of zoom log per ZoomSensitivity scroll units.
	ZoomSensitivity = 500

	// MinZoomLog and MaxZoomLog bound the logarithmic zoom level.  Within
	// this range the zoom factor and its inverse stay finite, and screen
	// coordinates of logical points up to about 1e20 fit into a float32.
	MinZoomLog = -30
	MaxZoomLog = 30
)

// Transform maps between logical coordinates and screen pixels.
//
// A logical point p is shown at p*zoom + shift, where zoom = exp(zoomLog)
// is always strictly positive.  The zero value is the identity mapping.
//
// A Transform is not safe for concurrent use.
type Transform struct {
	zoomLog float64
	shift   ScreenVector
}

// NewTransform returns a transform with the given logarithmic zoom level and
// screen shift.  The zoom level is clamped to [MinZoomLog, MaxZoomLog].
func NewTransform(zoomLog float64, shift ScreenVector) *Transform {
	return &Transform{zoomLog: clampZoomLog(zoomLog), shift: shift}
}

// Zoom returns the current zoom factor exp(zoomLog).
func (t *Transform) Zoom() float64 {
	return math.Exp(t.zoomLog)
}

// ZoomLog returns the logarithmic zoom level.
func (t *Transform) ZoomLog() float64 {
	return t.zoomLog
}

// Shift returns the screen position of the logical origin.
func (t *Transform) Shift() ScreenVector {
	return t.shift
}

// ToScreen maps a logical point to screen coordinates.  The product is
// formed in float64 and then narrowed; the shift is added in float32.
func (t *Transform) ToScreen(p vec.Vec2) ScreenPoint {
	z := t.Zoom()
	s := ScreenPoint{X: float32(z * p.X), Y: float32(z * p.Y)}
	return s.Add(t.shift)
}

// ToScreenDist scales a logical length to pixels.
func (t *Transform) ToScreenDist(d float64) float32 {
	return float32(d * t.Zoom())
}

// FromScreen maps a screen point back to logical coordinates.
func (t *Transform) FromScreen(p ScreenPoint) vec.Vec2 {
	z := t.Zoom()
	res := p.Sub(ScreenPoint(t.shift))
	return vec.Vec2{
		X: float64(res.X) / z,
		Y: float64(res.Y) / z,
	}
}

// LogicalRect returns the logical rectangle shown inside the screen
// rectangle r.  The result is normalized, LLx <= URx and LLy <= URy.
func (t *Transform) LogicalRect(r ScreenRect) rect.Rect {
	r = r.Canon()
	a := t.FromScreen(r.Min)
	b := t.FromScreen(r.Max)
	return rect.Rect{
		LLx: min(a.X, b.X),
		LLy: min(a.Y, b.Y),
		URx: max(a.X, b.X),
		URy: max(a.Y, b.Y),
	}
}

// Matrix returns the transform as an affine matrix [z 0 0 z sx sy], suitable
// as a current transformation matrix for page description output.
func (t *Transform) Matrix() matrix.Matrix {
	z := t.Zoom()
	return matrix.Matrix{z, 0, 0, z, float64(t.shift.X), float64(t.shift.Y)}
}

// ZoomAt changes the zoom level by scrollDelta/ZoomSensitivity while keeping
// the logical point under anchor in place.
//
// Scroll deltas which would move the zoom level outside [MinZoomLog,
// MaxZoomLog] are clamped.  A NaN delta is ignored.
func (t *Transform) ZoomAt(anchor ScreenPoint, scrollDelta float32) {
	if math.IsNaN(float64(scrollDelta)) {
		return
	}
	prevZoom := t.Zoom()
	t.zoomLog = clampZoomLog(t.zoomLog + float64(scrollDelta/ZoomSensitivity))
	ratio := float32(t.Zoom() / prevZoom)

	// new_shift = anchor + (old_shift - anchor) * ratio
	rel := t.shift.Sub(ScreenVector(anchor)).Mul(ratio)
	t.shift = ScreenVector(anchor.Add(rel))
}

// Pan moves everything on screen by delta.
func (t *Transform) Pan(delta ScreenVector) {
	t.shift = t.shift.Add(delta)
}

func clampZoomLog(zl float64) float64 {
	if math.IsNaN(zl) {
		return 0
	}
	return min(max(zl, MinZoomLog), MaxZoomLog)
}
