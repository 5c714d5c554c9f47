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
	"testing"

	"seehuhn.de/go/geom/vec"
)

var transformCases = []struct {
	name    string
	zoomLog float64
	shift   ScreenVector
}{
	{"identity", 0, ScreenVector{}},
	{"app_start", 1, ScreenVector{X: 500, Y: 500}},
	{"zoomed_out", -4, ScreenVector{X: -120, Y: 33.5}},
	{"zoomed_in", 6, ScreenVector{X: 12, Y: -900}},
}

var logicalPoints = []vec.Vec2{
	{X: 0, Y: 0},
	{X: 1, Y: 1},
	{X: 99.75, Y: 0.125},
	{X: -3.5, Y: 42},
	{X: 12.3456, Y: -7.891},
}

// closeRel reports whether a and b agree to within a relative tolerance
// tol, falling back to an absolute tolerance of tol near zero.
func closeRel(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*max(1, math.Abs(a), math.Abs(b))
}

func TestZoomIsExp(t *testing.T) {
	for _, tc := range transformCases {
		tr := NewTransform(tc.zoomLog, tc.shift)
		if got, want := tr.Zoom(), math.Exp(tc.zoomLog); got != want {
			t.Errorf("%s: Zoom() = %g, want %g", tc.name, got, want)
		}
		if tr.Zoom() <= 0 {
			t.Errorf("%s: zoom %g is not positive", tc.name, tr.Zoom())
		}
	}
}

func TestZeroTransformIsIdentity(t *testing.T) {
	var tr Transform
	p := vec.Vec2{X: 3.25, Y: -8}
	got := tr.ToScreen(p)
	if got != (ScreenPoint{X: 3.25, Y: -8}) {
		t.Errorf("ToScreen(%v) = %v", p, got)
	}
}

func TestToScreen(t *testing.T) {
	tr := NewTransform(math.Log(2), ScreenVector{X: 10, Y: 20})
	got := tr.ToScreen(vec.Vec2{X: 3, Y: -4})
	want := ScreenPoint{X: 16, Y: 12}
	if math.Abs(float64(got.X-want.X)) > 1e-4 || math.Abs(float64(got.Y-want.Y)) > 1e-4 {
		t.Errorf("ToScreen = %v, want %v", got, want)
	}
	if d := tr.ToScreenDist(1.5); math.Abs(float64(d)-3) > 1e-5 {
		t.Errorf("ToScreenDist(1.5) = %g, want 3", d)
	}
}

func TestToScreenDeterministic(t *testing.T) {
	for _, tc := range transformCases {
		tr := NewTransform(tc.zoomLog, tc.shift)
		for _, p := range logicalPoints {
			a := tr.ToScreen(p)
			b := tr.ToScreen(p)
			if a != b {
				t.Errorf("%s: ToScreen(%v) gave %v and %v", tc.name, p, a, b)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range transformCases {
		tr := NewTransform(tc.zoomLog, tc.shift)
		for _, p := range logicalPoints {
			q := tr.FromScreen(tr.ToScreen(p))

			// The screen position carries float32 precision; measure the
			// error in pixels, relative to the size of the screen value.
			s := tr.ToScreen(p)
			tol := 1e-6 * max(1, math.Abs(float64(s.X)), math.Abs(float64(s.Y)))
			dx := math.Abs(q.X-p.X) * tr.Zoom()
			dy := math.Abs(q.Y-p.Y) * tr.Zoom()
			if dx > tol*4 || dy > tol*4 {
				t.Errorf("%s: round trip of %v gave %v", tc.name, p, q)
			}
		}
	}
}

func TestFromScreenInverse(t *testing.T) {
	tr := NewTransform(1, ScreenVector{X: 500, Y: 500})
	screen := []ScreenPoint{{0, 0}, {500, 500}, {1999, 3}, {-40, 812.5}}
	for _, s := range screen {
		got := tr.ToScreen(tr.FromScreen(s))
		if !closeRel(float64(got.X), float64(s.X), 1e-4) || !closeRel(float64(got.Y), float64(s.Y), 1e-4) {
			t.Errorf("ToScreen(FromScreen(%v)) = %v", s, got)
		}
	}
}

func TestZoomAnchored(t *testing.T) {
	anchors := []ScreenPoint{{0, 0}, {500, 500}, {123.5, 987.25}, {-50, 20}}
	deltas := []float32{1, -1, 120, -120, 500, -2000}
	for _, tc := range transformCases {
		for _, anchor := range anchors {
			for _, delta := range deltas {
				tr := NewTransform(tc.zoomLog, tc.shift)
				before := tr.FromScreen(anchor)
				tr.ZoomAt(anchor, delta)

				// the logical point under the anchor stays under the anchor
				got := tr.ToScreen(before)
				sh := tr.Shift()
				tol := 1e-5 * max(1, math.Abs(float64(anchor.X)), math.Abs(float64(anchor.Y)),
					math.Abs(float64(sh.X)), math.Abs(float64(sh.Y)))
				if math.Abs(float64(got.X-anchor.X)) > tol || math.Abs(float64(got.Y-anchor.Y)) > tol {
					t.Errorf("%s: ZoomAt(%v, %g) moved anchor to %v", tc.name, anchor, delta, got)
				}

				back := tr.ToScreen(tr.FromScreen(anchor))
				if math.Abs(float64(back.X-anchor.X)) > tol || math.Abs(float64(back.Y-anchor.Y)) > tol {
					t.Errorf("%s: anchor %v maps back to %v", tc.name, anchor, back)
				}
			}
		}
	}
}

func TestZoomSensitivity(t *testing.T) {
	tr := NewTransform(0, ScreenVector{})
	tr.ZoomAt(ScreenPoint{}, 250)
	if got := tr.ZoomLog(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("zoom log after scrolling 250 = %g, want 0.5", got)
	}
	tr.ZoomAt(ScreenPoint{}, -250)
	if got := tr.ZoomLog(); math.Abs(got) > 1e-9 {
		t.Errorf("zoom log after scrolling back = %g, want 0", got)
	}
}

func TestZoomClamped(t *testing.T) {
	tr := NewTransform(0, ScreenVector{X: 10, Y: 10})
	for range 1000 {
		tr.ZoomAt(ScreenPoint{X: 5, Y: 5}, 1e6)
	}
	if tr.ZoomLog() != MaxZoomLog {
		t.Errorf("zoom log = %g, want %d", tr.ZoomLog(), MaxZoomLog)
	}
	checkFinite(t, tr)

	for range 1000 {
		tr.ZoomAt(ScreenPoint{X: 5, Y: 5}, -1e6)
	}
	if tr.ZoomLog() != MinZoomLog {
		t.Errorf("zoom log = %g, want %d", tr.ZoomLog(), MinZoomLog)
	}
	checkFinite(t, tr)

	tr.ZoomAt(ScreenPoint{}, float32(math.Inf(1)))
	if tr.ZoomLog() != MaxZoomLog {
		t.Errorf("zoom log after +Inf scroll = %g", tr.ZoomLog())
	}
	checkFinite(t, tr)

	before := *tr
	tr.ZoomAt(ScreenPoint{}, float32(math.NaN()))
	if *tr != before {
		t.Errorf("NaN scroll changed the transform")
	}

	if got := NewTransform(1e9, ScreenVector{}).ZoomLog(); got != MaxZoomLog {
		t.Errorf("NewTransform did not clamp: %g", got)
	}
}

func checkFinite(t *testing.T, tr *Transform) {
	t.Helper()
	z := tr.Zoom()
	if math.IsInf(z, 0) || math.IsNaN(z) || z <= 0 {
		t.Fatalf("zoom %g is not finite and positive", z)
	}
	s := tr.ToScreen(vec.Vec2{X: 1000, Y: -1000})
	for _, v := range []float32{s.X, s.Y} {
		if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
			t.Fatalf("screen coordinate %v is not finite", s)
		}
	}
	p := tr.FromScreen(ScreenPoint{X: 1000, Y: 1000})
	if math.IsInf(p.X, 0) || math.IsNaN(p.X) {
		t.Fatalf("logical coordinate %v is not finite", p)
	}
}

func TestPan(t *testing.T) {
	d := ScreenVector{X: 17.5, Y: -3}
	for _, tc := range transformCases {
		tr := NewTransform(tc.zoomLog, tc.shift)
		for _, p := range logicalPoints {
			before := tr.ToScreen(p)
			moved := *tr
			moved.Pan(d)
			after := moved.ToScreen(p)
			want := before.Add(d)
			tol := 1e-6 * max(1, math.Abs(float64(want.X)), math.Abs(float64(want.Y)))
			if math.Abs(float64(after.X-want.X)) > tol || math.Abs(float64(after.Y-want.Y)) > tol {
				t.Errorf("%s: after Pan(%v), %v is at %v, want %v", tc.name, d, p, after, want)
			}
		}
	}
}

func TestLogicalRect(t *testing.T) {
	tr := NewTransform(0, ScreenVector{X: 10, Y: 10})
	r := tr.LogicalRect(ScreenRect{Min: ScreenPoint{X: 110, Y: 50}, Max: ScreenPoint{X: 10, Y: 10}})
	if r.LLx != 0 || r.LLy != 0 || r.URx != 100 || r.URy != 40 {
		t.Errorf("LogicalRect = %+v", r)
	}
}

func TestMatrix(t *testing.T) {
	tr := NewTransform(1, ScreenVector{X: 500, Y: 250})
	m := tr.Matrix()
	p := vec.Vec2{X: 3, Y: 7}
	x := m[0]*p.X + m[2]*p.Y + m[4]
	y := m[1]*p.X + m[3]*p.Y + m[5]
	s := tr.ToScreen(p)
	if !closeRel(x, float64(s.X), 1e-6) || !closeRel(y, float64(s.Y), 1e-6) {
		t.Errorf("matrix maps %v to (%g, %g), ToScreen gives %v", p, x, y, s)
	}
}
