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

import "seehuhn.de/go/geom/vec"

// HitThreshold is the largest surface distance, in pixels, at which an
// object still counts as being under the cursor.
const HitThreshold = 5

// Circle is a point-like object in logical space.
type Circle struct {
	Center vec.Vec2
	R      float64
}

// HitCandidate is an object projected to the screen for hit-testing.
// Index identifies the object in the caller's collection.
type HitCandidate struct {
	Index  int
	Center ScreenPoint
	Radius float32
}

// Project appends the screen projections of circles to dst and returns the
// extended slice.  Candidate i has Index i.
func Project(dst []HitCandidate, t *Transform, circles []Circle) []HitCandidate {
	for i, c := range circles {
		dst = append(dst, HitCandidate{
			Index:  i,
			Center: t.ToScreen(c.Center),
			Radius: t.ToScreenDist(c.R),
		})
	}
	return dst
}

// Nearest returns the Index of the candidate whose surface is closest to
// cursor.  The surface distance is the distance to the centre minus the
// radius, and is negative inside the circle.  Only candidates with a
// surface distance below threshold are considered; ok is false if there are
// none.  Ties go to the candidate which comes first in cands.
func Nearest(cursor ScreenPoint, cands []HitCandidate, threshold float32) (index int, ok bool) {
	best := threshold
	for _, c := range cands {
		d := cursor.Distance(c.Center) - c.Radius
		if d < best {
			best = d
			index = c.Index
			ok = true
		}
	}
	return index, ok
}
