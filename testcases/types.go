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
	"seehuhn.de/go/gridview"
)

// TestCase defines a single viewer session: a scene, a canvas size, a
// starting view and the input events replayed before the frame is taken.
type TestCase struct {
	Name   string                          // lowercase a-z, 0-9 and _ only
	Scene  func() (*gridview.Scene, error) // builds the data shown
	Width  int                             // canvas width in pixels
	Height int                             // canvas height in pixels
	View   View                            // initial transform
	Events []gridview.Input                // one entry per frame
}

// View describes an initial transform.
type View struct {
	ZoomLog float64
	Shift   gridview.ScreenVector
}

// DefaultView is the starting view of the interactive viewer.
var DefaultView = View{ZoomLog: 1, Shift: gridview.ScreenVector{X: 500, Y: 500}}

// Transform returns a new transform for v.
func (v View) Transform() *gridview.Transform {
	return gridview.NewTransform(v.ZoomLog, v.Shift)
}

// Viewport returns the canvas rectangle of tc.
func (tc *TestCase) Viewport() gridview.ScreenRect {
	return gridview.ScreenRect{
		Max: gridview.ScreenPoint{X: float32(tc.Width), Y: float32(tc.Height)},
	}
}

// Result is the outcome of replaying a test case.
type Result struct {
	Scene *gridview.Scene
	State *gridview.State
	Frame *gridview.Frame
}

// Run builds the scene, applies all events in order and computes the final
// frame.
func (tc *TestCase) Run() (*Result, error) {
	sc, err := tc.Scene()
	if err != nil {
		return nil, err
	}
	st := gridview.NewState(tc.View.Transform())
	for _, in := range tc.Events {
		st.Update(sc, in)
	}
	return &Result{
		Scene: sc,
		State: st,
		Frame: st.Frame(sc, tc.Viewport()),
	}, nil
}

// at returns an input event with the cursor at (x, y).
func at(x, y float32) gridview.Input {
	return gridview.Input{Cursor: gridview.ScreenPoint{X: x, Y: y}, HasCursor: true}
}

// click returns a click at (x, y).
func click(x, y float32) gridview.Input {
	in := at(x, y)
	in.Clicked = true
	return in
}

// scroll returns a scroll event at (x, y).
func scroll(x, y, delta float32) gridview.Input {
	in := at(x, y)
	in.Scroll = delta
	return in
}

// drag returns a cursor-less drag by (dx, dy).
func drag(dx, dy float32) gridview.Input {
	return gridview.Input{Drag: gridview.ScreenVector{X: dx, Y: dy}}
}
