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

// Selection refers to one circle of a scene, or to none.
type Selection struct {
	Index int
	Valid bool
}

// Input holds the input events of one frame, as polled by the host.
type Input struct {
	// Cursor is the pointer position.  It is only used if HasCursor is set.
	Cursor    ScreenPoint
	HasCursor bool

	// Scroll is the vertical scroll delta.  Positive values zoom in.
	Scroll float32

	// Drag is the pointer movement while a button is held.
	Drag ScreenVector

	// Clicked is set on the frame in which a click completed.
	Clicked bool
}

// State is the viewer state of one session.  It is changed only by Update.
//
// A State is not safe for concurrent use.
type State struct {
	Transform Transform

	// Hover is the circle under the cursor after the last Update.
	Hover Selection

	// Selected is the circle chosen by the last click which hit a circle.
	// There is no way to clear a selection.
	Selected Selection

	hits []HitCandidate // reused across frames
}

// NewState returns a state which starts with the given transform.
func NewState(t *Transform) *State {
	return &State{Transform: *t}
}

// Update applies the input events of one frame.
//
// With a cursor present, a non-zero scroll delta zooms around the cursor,
// and the circles of sc are then hit-tested against the cursor using the
// new transform.  The hit becomes the hover target, and on a click also the
// selection; a click which hits nothing leaves the selection unchanged.
// Without a cursor there is no hover target.  Finally the view is panned by
// the drag delta.
func (s *State) Update(sc *Scene, in Input) {
	s.Hover = Selection{}
	if in.HasCursor {
		if in.Scroll != 0 {
			s.Transform.ZoomAt(in.Cursor, in.Scroll)
		}
		if idx, ok := s.HitTest(sc, in.Cursor); ok {
			s.Hover = Selection{Index: idx, Valid: true}
			if in.Clicked {
				s.Selected = s.Hover
			}
		}
	}
	s.Transform.Pan(in.Drag)
}

// HitTest returns the circle of sc nearest to the screen point p under the
// current transform, within HitThreshold pixels.
func (s *State) HitTest(sc *Scene, p ScreenPoint) (int, bool) {
	if sc == nil {
		return 0, false
	}
	s.hits = Project(s.hits[:0], &s.Transform, sc.circles)
	return Nearest(p, s.hits, HitThreshold)
}
