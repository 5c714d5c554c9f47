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
	"image"
	"image/color"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// SnakeWidth is the stroke width of snakes, in logical units.
const SnakeWidth = 0.2

// DrawOp is a drawing primitive in screen coordinates.
// It is one of FillRect, FillCircle, Line or TexturedQuad.
type DrawOp interface {
	isDrawOp()
}

// FillRect fills an axis-aligned rectangle.
type FillRect struct {
	Rect  ScreenRect
	Color color.NRGBA
}

// FillCircle fills a disc.
type FillCircle struct {
	Center ScreenPoint
	Radius float32
	Color  color.NRGBA
}

// Line strokes a straight line segment.
type Line struct {
	From, To ScreenPoint
	Width    float32
	Cap      graphics.LineCapStyle
	Color    color.NRGBA
}

// TexturedQuad draws an image stretched over a rectangle, without
// smoothing.  Texture pixel (0, 0) goes to the Min corner of Rect.
type TexturedQuad struct {
	Rect    ScreenRect
	Texture *image.NRGBA
}

func (FillRect) isDrawOp()     {}
func (FillCircle) isDrawOp()   {}
func (Line) isDrawOp()         {}
func (TexturedQuad) isDrawOp() {}

// Frame is the output of one frame: what to draw and where.
type Frame struct {
	Viewport ScreenRect
	Region   VisibleRegion

	// CellsSkipped is set when the visible region was too big for the
	// per-cell pass and the field was drawn as a single textured quad.
	CellsSkipped bool

	// Ops lists the drawing primitives in painter's order, back to front.
	Ops []DrawOp
}

// Frame computes the drawing primitives for sc as seen through the screen
// rectangle viewport.  It does not change s.
//
// Only cells inside the visible region are emitted.  If the region is too
// big, the whole field is emitted as one TexturedQuad instead.  Only snake
// steps touching the region and circles overlapping the viewport are
// emitted.
func (s *State) Frame(sc *Scene, viewport ScreenRect) *Frame {
	viewport = viewport.Canon()
	t := &s.Transform
	rows, cols := sc.Size()

	f := &Frame{
		Viewport: viewport,
		Region:   Visible(t, viewport, rows, cols),
	}
	f.Ops = append(f.Ops, FillRect{Rect: viewport, Color: BackgroundColor})
	if viewport.Empty() {
		return f
	}

	if !f.Region.Empty() {
		if f.Region.TooBig() {
			f.CellsSkipped = true
			f.Ops = append(f.Ops, TexturedQuad{
				Rect:    cellRect(t, Cell{}, rows, cols),
				Texture: sc.texture,
			})
		} else {
			for c := range f.Region.Cells() {
				cost := sc.field.At(c.Row, c.Col)
				if !cost.Valid {
					continue
				}
				f.Ops = append(f.Ops, FillRect{
					Rect:  cellRect(t, c, 1, 1),
					Color: CostColor(cost.Value, sc.maxAbs),
				})
			}
		}

		width := t.ToScreenDist(SnakeWidth)
		for i, snake := range sc.snakes {
			col := SnakeColor(i)
			for a, b := range snake.Segments(f.Region) {
				f.Ops = append(f.Ops, Line{
					From:  t.ToScreen(CellCenter(a)),
					To:    t.ToScreen(CellCenter(b)),
					Width: width,
					Cap:   graphics.LineCapRound,
					Color: col,
				})
			}
		}
	}

	for i, c := range sc.circles {
		center := t.ToScreen(c.Center)
		r := t.ToScreenDist(c.R)
		bbox := ScreenRect{Min: center, Max: center}.Grow(r)
		if !bbox.Overlaps(viewport) {
			continue
		}
		col := CircleColor
		if s.Hover.Valid && s.Hover.Index == i {
			col = HoverColor
		}
		if s.Selected.Valid && s.Selected.Index == i {
			col = SelectedColor
		}
		f.Ops = append(f.Ops, FillCircle{Center: center, Radius: r, Color: col})
	}

	return f
}

// cellRect returns the screen rectangle covered by the block of rows × cols
// cells whose top-left cell is c.
func cellRect(t *Transform, c Cell, rows, cols int) ScreenRect {
	p0 := vec.Vec2{X: float64(c.Col), Y: float64(c.Row)}
	p1 := vec.Vec2{X: float64(c.Col + cols), Y: float64(c.Row + rows)}
	return ScreenRect{Min: t.ToScreen(p0), Max: t.ToScreen(p1)}
}
