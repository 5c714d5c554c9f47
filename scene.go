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
	"fmt"
	"image"
)

// Scene is the read-only data shown by a viewer: an optional cost field,
// snakes over the field's cells, and point-like circles.
type Scene struct {
	field   *GridField
	snakes  []Snake
	circles []Circle

	maxAbs  int64
	texture *image.NRGBA // one pixel per cell, nil without a field
}

// NewScene validates the data and prepares it for drawing.  Snakes are
// checked for adjacency and must lie within the field; snakes without a
// field are rejected.  The slices are not copied and must not be modified
// afterwards.
func NewScene(field *GridField, snakes []Snake, circles []Circle) (*Scene, error) {
	if field == nil && len(snakes) > 0 {
		return nil, fmt.Errorf("snakes without a field: %w", ErrEmptyGrid)
	}
	for i, s := range snakes {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("snake %d: %w", i, err)
		}
		if err := s.CheckBounds(field); err != nil {
			return nil, fmt.Errorf("snake %d: %w", i, err)
		}
	}

	sc := &Scene{
		field:   field,
		snakes:  snakes,
		circles: circles,
	}
	if field != nil {
		sc.maxAbs = field.MaxAbs()
		sc.texture = fieldTexture(field, sc.maxAbs)
	}
	return sc, nil
}

// Field returns the cost field, or nil.
func (sc *Scene) Field() *GridField { return sc.field }

// Snakes returns the snakes of the scene.
func (sc *Scene) Snakes() []Snake { return sc.snakes }

// Circles returns the circles of the scene.
func (sc *Scene) Circles() []Circle { return sc.circles }

// Texture returns an image of the field with one pixel per cell, or nil if
// the scene has no field.  Pixel (x, y) shows cell (y, x); cells without a
// cost are transparent.
func (sc *Scene) Texture() *image.NRGBA { return sc.texture }

// Size returns the grid dimensions, or 0, 0 without a field.
func (sc *Scene) Size() (rows, cols int) {
	if sc.field == nil {
		return 0, 0
	}
	return sc.field.rows, sc.field.cols
}

func fieldTexture(f *GridField, maxAbs int64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.cols, f.rows))
	for r := range f.rows {
		for c := range f.cols {
			i := f.index(r, c)
			if !f.present[i] {
				continue
			}
			img.SetNRGBA(c, r, CostColor(f.costs[i], maxAbs))
		}
	}
	return img
}
