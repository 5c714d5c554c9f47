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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// kappa is the Bézier control point distance for approximating a quarter
// circle of radius 1.
const kappa = 0.5522847498

// zeroLength is the segment length below which a Line has no direction.
const zeroLength = 1e-6

// Outline returns the boundary of r as a closed path in screen
// coordinates.
func (r FillRect) Outline() *path.Data {
	r.Rect = r.Rect.Canon()
	x0, y0 := float64(r.Rect.Min.X), float64(r.Rect.Min.Y)
	x1, y1 := float64(r.Rect.Max.X), float64(r.Rect.Max.Y)
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// Outline returns the boundary of the disc as a closed path made of four
// cubic Bézier arcs.
func (c FillCircle) Outline() *path.Data {
	return circlePath(&path.Data{}, toVec(c.Center), float64(c.Radius))
}

// Outline returns the area covered by stroking l, as a closed path in
// screen coordinates.  Round caps are built from cubic arcs.
//
// A line of zero length covers a disc for round caps, a square for square
// caps, and nothing for butt caps.
func (l Line) Outline() *path.Data {
	a, b := toVec(l.From), toVec(l.To)
	d := float64(l.Width) / 2
	p := &path.Data{}
	if d <= 0 {
		return p
	}

	dir := b.Sub(a)
	length := dir.Length()
	if length < zeroLength {
		switch l.Cap {
		case graphics.LineCapRound:
			return circlePath(p, a, d)
		case graphics.LineCapSquare:
			t := vec.Vec2{X: d, Y: 0}
			n := vec.Vec2{X: 0, Y: d}
			return p.MoveTo(a.Add(t).Add(n)).
				LineTo(a.Add(t).Sub(n)).
				LineTo(a.Sub(t).Sub(n)).
				LineTo(a.Sub(t).Add(n)).
				Close()
		}
		return p
	}

	t := dir.Mul(d / length)       // tangent, length d
	n := vec.Vec2{X: -t.Y, Y: t.X} // normal, length d
	if l.Cap == graphics.LineCapSquare {
		a = a.Sub(t)
		b = b.Add(t)
	}

	p = p.MoveTo(a.Add(n)).LineTo(b.Add(n))
	p = addCap(p, l.Cap, b, n, t)
	p = p.LineTo(a.Sub(n))
	p = addCap(p, l.Cap, a, n.Mul(-1), t.Mul(-1))
	return p.Close()
}

// addCap continues p, which ends at P+N, around the line end P to P-N.
// T points away from the line.  Both T and N have the length of half the
// line width.
func addCap(p *path.Data, style graphics.LineCapStyle, P, N, T vec.Vec2) *path.Data {
	if style != graphics.LineCapRound {
		return p.LineTo(P.Sub(N))
	}
	// two quarter arcs, through P+T
	p = p.CubeTo(P.Add(N).Add(T.Mul(kappa)), P.Add(T).Add(N.Mul(kappa)), P.Add(T))
	return p.CubeTo(P.Add(T).Sub(N.Mul(kappa)), P.Sub(N).Add(T.Mul(kappa)), P.Sub(N))
}

func circlePath(p *path.Data, c vec.Vec2, r float64) *path.Data {
	k := r * kappa
	pt := func(dx, dy float64) vec.Vec2 { return vec.Vec2{X: c.X + dx, Y: c.Y + dy} }
	return p.MoveTo(pt(r, 0)).
		CubeTo(pt(r, -k), pt(k, -r), pt(0, -r)).
		CubeTo(pt(-k, -r), pt(-r, -k), pt(-r, 0)).
		CubeTo(pt(-r, k), pt(-k, r), pt(0, r)).
		CubeTo(pt(k, r), pt(r, k), pt(r, 0)).
		Close()
}

func toVec(p ScreenPoint) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
