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


// Package canvas paints gridview drawing primitives into an image, using
// anti-aliased scan conversion from golang.org/x/image/vector.
package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/gridview"
)

// Canvas paints drawing primitives into an RGBA image.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	r   *vector.Rasterizer
}

// New returns a canvas of the given size, in pixels.  All pixels are
// initially transparent.
func New(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		r:   vector.NewRasterizer(0, 0),
	}
}

// Image returns the image painted into.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Draw paints the operations in order, each one over the previous ones.
func (c *Canvas) Draw(ops []gridview.DrawOp) {
	for _, op := range ops {
		switch op := op.(type) {
		case gridview.FillRect:
			c.fill(op.Outline(), op.Color)
		case gridview.FillCircle:
			c.fill(op.Outline(), op.Color)
		case gridview.Line:
			c.fill(op.Outline(), op.Color)
		case gridview.TexturedQuad:
			c.texture(op)
		}
	}
}

// Render paints a frame into a new image of the given size.
func Render(f *gridview.Frame, width, height int) *image.RGBA {
	c := New(width, height)
	c.Draw(f.Ops)
	return c.Image()
}

// fill paints the area enclosed by p, using the non-zero winding rule.
// Only the pixels within the bounding box of p are visited.
func (c *Canvas) fill(p *path.Data, col color.NRGBA) {
	box, ok := pixelBox(bounds(p), c.img.Bounds())
	if !ok {
		return
	}

	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	c.r.Reset(box.Dx(), box.Dy())
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			c.r.MoveTo(float32(pts[0].X)-ox, float32(pts[0].Y)-oy)
		case path.CmdLineTo:
			c.r.LineTo(float32(pts[0].X)-ox, float32(pts[0].Y)-oy)
		case path.CmdQuadTo:
			c.r.QuadTo(
				float32(pts[0].X)-ox, float32(pts[0].Y)-oy,
				float32(pts[1].X)-ox, float32(pts[1].Y)-oy)
		case path.CmdCubeTo:
			c.r.CubeTo(
				float32(pts[0].X)-ox, float32(pts[0].Y)-oy,
				float32(pts[1].X)-ox, float32(pts[1].Y)-oy,
				float32(pts[2].X)-ox, float32(pts[2].Y)-oy)
		case path.CmdClose:
			c.r.ClosePath()
		}
	}
	c.r.Draw(c.img, box, image.NewUniform(col), image.Point{})
}

// texture scales the quad's image onto the canvas without smoothing.
// Transparent texels leave the canvas unchanged.
func (c *Canvas) texture(q gridview.TexturedQuad) {
	if q.Texture == nil {
		return
	}
	r := q.Rect.Canon()
	dr := image.Rect(clampInt(r.Min.X), clampInt(r.Min.Y), clampInt(r.Max.X), clampInt(r.Max.Y))
	if dr.Empty() || !dr.Overlaps(c.img.Bounds()) {
		return
	}
	draw.NearestNeighbor.Scale(c.img, dr, q.Texture, q.Texture.Bounds(), draw.Over, nil)
}

// bounds returns the bounding box of all points of p, control points
// included.
func bounds(p *path.Data) rect.Rect {
	res := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, q := range p.Coords {
		res.LLx = min(res.LLx, q.X)
		res.LLy = min(res.LLy, q.Y)
		res.URx = max(res.URx, q.X)
		res.URy = max(res.URy, q.Y)
	}
	return res
}

// pixelBox returns the pixels touched by bbox, clipped to clip.
func pixelBox(bbox rect.Rect, clip image.Rectangle) (image.Rectangle, bool) {
	if !(bbox.LLx <= bbox.URx && bbox.LLy <= bbox.URy) {
		return image.Rectangle{}, false
	}
	clamp := func(x float64, a, b int) float64 { return min(max(x, float64(a)), float64(b)) }
	lo := func(x float64, a, b int) int { return int(math.Floor(clamp(x, a, b))) }
	hi := func(x float64, a, b int) int { return int(math.Ceil(clamp(x, a, b))) }
	box := image.Rectangle{
		Min: image.Pt(lo(bbox.LLx, clip.Min.X, clip.Max.X), lo(bbox.LLy, clip.Min.Y, clip.Max.Y)),
		Max: image.Pt(hi(bbox.URx, clip.Min.X, clip.Max.X), hi(bbox.URy, clip.Min.Y, clip.Max.Y)),
	}
	if box.Empty() {
		return image.Rectangle{}, false
	}
	return box, true
}

// clampInt rounds x to the nearest integer in a range that image
// arithmetic can handle.
func clampInt(x float32) int {
	const limit = 1 << 24
	return int(math.Round(min(max(float64(x), -limit), limit)))
}
