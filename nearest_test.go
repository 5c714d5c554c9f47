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

func TestNearestTieBreak(t *testing.T) {
	cands := []HitCandidate{
		{Index: 0, Center: ScreenPoint{}, Radius: 1},
		{Index: 1, Center: ScreenPoint{}, Radius: 1},
	}
	idx, ok := Nearest(ScreenPoint{}, cands, HitThreshold)
	if !ok || idx != 0 {
		t.Errorf("Nearest = %d, %t, want 0, true", idx, ok)
	}
}

func TestNearestThreshold(t *testing.T) {
	cases := []struct {
		name   string
		center ScreenPoint
		radius float32
		ok     bool
	}{
		{"distance_6", ScreenPoint{X: 10}, 4, false},
		{"distance_4.9", ScreenPoint{X: 8.9}, 4, true},
		{"distance_5", ScreenPoint{Y: 8}, 3, false},
		{"inside", ScreenPoint{X: 1}, 3, true},
	}
	for _, tc := range cases {
		cands := []HitCandidate{{Index: 7, Center: tc.center, Radius: tc.radius}}
		idx, ok := Nearest(ScreenPoint{}, cands, 5)
		if ok != tc.ok {
			t.Errorf("%s: ok = %t, want %t", tc.name, ok, tc.ok)
		}
		if ok && idx != 7 {
			t.Errorf("%s: index = %d, want 7", tc.name, idx)
		}
	}
}

func TestNearestSurfaceDistance(t *testing.T) {
	// The big circle's centre is further away, but its surface is closer.
	cands := []HitCandidate{
		{Index: 0, Center: ScreenPoint{X: 3}, Radius: 0.5},
		{Index: 1, Center: ScreenPoint{X: -6}, Radius: 5},
		{Index: 2, Center: ScreenPoint{Y: 2}, Radius: 0.1},
	}
	idx, ok := Nearest(ScreenPoint{}, cands, HitThreshold)
	if !ok || idx != 1 {
		t.Errorf("Nearest = %d, %t, want 1, true", idx, ok)
	}
}

func TestNearestInsideBeatsOutside(t *testing.T) {
	cands := []HitCandidate{
		{Index: 0, Center: ScreenPoint{X: 0.5}, Radius: 0.5}, // surface at distance 0
		{Index: 1, Center: ScreenPoint{X: 1}, Radius: 3},     // cursor 2px inside
	}
	idx, ok := Nearest(ScreenPoint{}, cands, HitThreshold)
	if !ok || idx != 1 {
		t.Errorf("Nearest = %d, %t, want 1, true", idx, ok)
	}
}

func TestNearestEmpty(t *testing.T) {
	if _, ok := Nearest(ScreenPoint{}, nil, HitThreshold); ok {
		t.Errorf("Nearest on no candidates reported a hit")
	}
}

func TestNearestDeterministic(t *testing.T) {
	tr := NewTransform(1, ScreenVector{X: 500, Y: 500})
	circles := []Circle{
		{Center: vec.Vec2{X: 1, Y: 1}, R: 0.05},
		{Center: vec.Vec2{X: 1.01, Y: 1}, R: 0.05},
		{Center: vec.Vec2{X: 2, Y: 2}, R: 0.01},
	}
	cands := Project(nil, tr, circles)
	cursor := tr.ToScreen(vec.Vec2{X: 1.005, Y: 1})
	first, ok := Nearest(cursor, cands, HitThreshold)
	if !ok {
		t.Fatal("no hit")
	}
	for range 10 {
		idx, ok := Nearest(cursor, cands, HitThreshold)
		if !ok || idx != first {
			t.Fatalf("Nearest changed from %d to %d, %t", first, idx, ok)
		}
	}
}

func TestProject(t *testing.T) {
	tr := NewTransform(math.Log(4), ScreenVector{X: 10})
	circles := []Circle{
		{Center: vec.Vec2{X: 1, Y: 2}, R: 0.5},
		{Center: vec.Vec2{X: -1, Y: 0}, R: 2},
	}
	buf := make([]HitCandidate, 0, 8)
	cands := Project(buf, tr, circles)
	if len(cands) != 2 {
		t.Fatalf("got %d candidates", len(cands))
	}
	for i, c := range cands {
		if c.Index != i {
			t.Errorf("candidate %d has index %d", i, c.Index)
		}
		if c.Center != tr.ToScreen(circles[i].Center) {
			t.Errorf("candidate %d centre %v, want %v", i, c.Center, tr.ToScreen(circles[i].Center))
		}
		if c.Radius != tr.ToScreenDist(circles[i].R) {
			t.Errorf("candidate %d radius %g", i, c.Radius)
		}
	}
	if math.Abs(float64(cands[1].Radius)-8) > 1e-5 {
		t.Errorf("radius = %g, want 8", cands[1].Radius)
	}
}
