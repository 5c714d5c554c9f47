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
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/gridview"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range All {
		require.Regexp(t, validName, category)
		for _, tc := range cases {
			assert.Regexp(t, validName, tc.Name)
			full := category + "_" + tc.Name
			assert.False(t, seen[full], "duplicate test case %s", full)
			seen[full] = true
		}
	}
}

func TestRunAll(t *testing.T) {
	for category, cases := range All {
		for _, tc := range cases {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				if testing.Short() && category == "viewer" {
					t.Skip("large scene")
				}
				res, err := tc.Run()
				require.NoError(t, err)
				require.NotEmpty(t, res.Frame.Ops)
				bg, ok := res.Frame.Ops[0].(gridview.FillRect)
				require.True(t, ok)
				assert.Equal(t, tc.Viewport(), bg.Rect)

				rows, cols := res.Scene.Size()
				reg := res.Frame.Region
				assert.True(t, reg.Rows.Start >= 0 && reg.Rows.End <= rows)
				assert.True(t, reg.Cols.Start >= 0 && reg.Cols.End <= cols)
			})
		}
	}
}

func run(t *testing.T, fullName string) *Result {
	t.Helper()
	tc, ok := Find(fullName)
	require.True(t, ok, "test case %s not found", fullName)
	res, err := tc.Run()
	require.NoError(t, err)
	return res
}

func countCircles(f *gridview.Frame) int {
	n := 0
	for _, op := range f.Ops {
		if _, ok := op.(gridview.FillCircle); ok {
			n++
		}
	}
	return n
}

func TestFieldCases(t *testing.T) {
	res := run(t, "field_too_big")
	assert.True(t, res.Frame.CellsSkipped)
	require.Len(t, res.Frame.Ops, 2)
	assert.IsType(t, gridview.TexturedQuad{}, res.Frame.Ops[1])

	res = run(t, "field_outside")
	assert.True(t, res.Frame.Region.Empty())
	assert.Len(t, res.Frame.Ops, 1)

	res = run(t, "field_small_dense")
	assert.False(t, res.Frame.CellsSkipped)
	assert.Len(t, res.Frame.Ops, 1+100)

	res = run(t, "field_clipped")
	assert.Equal(t, gridview.Range{Start: 47, End: 100}, res.Frame.Region.Cols)
	assert.Equal(t, gridview.Range{Start: 47, End: 90}, res.Frame.Region.Rows)
}

func TestSnakeCases(t *testing.T) {
	res := run(t, "snake_partial")
	lines := 0
	for _, op := range res.Frame.Ops {
		if _, ok := op.(gridview.Line); ok {
			lines++
		}
	}
	// columns 0..32 are in the region, so steps 0-1 up to 32-33 are drawn
	assert.Equal(t, 33, lines)
}

func TestCircleCases(t *testing.T) {
	sel := func(i int) gridview.Selection {
		return gridview.Selection{Index: i, Valid: true}
	}

	res := run(t, "circle_plain")
	assert.False(t, res.State.Hover.Valid)
	assert.False(t, res.State.Selected.Valid)
	assert.Equal(t, 3, countCircles(res.Frame))

	res = run(t, "circle_hover")
	assert.Equal(t, sel(1), res.State.Hover)
	assert.False(t, res.State.Selected.Valid)

	res = run(t, "circle_select")
	assert.Equal(t, sel(0), res.State.Selected)
	assert.Equal(t, sel(2), res.State.Hover)

	res = run(t, "circle_select_miss")
	assert.Equal(t, sel(2), res.State.Selected)
	assert.False(t, res.State.Hover.Valid)

	res = run(t, "circle_select_hover")
	assert.Equal(t, sel(1), res.State.Selected)
	assert.Equal(t, sel(1), res.State.Hover)
	for _, op := range res.Frame.Ops {
		if c, ok := op.(gridview.FillCircle); ok {
			assert.NotEqual(t, gridview.HoverColor, c.Color)
		}
	}

	res = run(t, "circle_near_edge")
	assert.Equal(t, sel(0), res.State.Selected)

	res = run(t, "circle_offscreen")
	assert.Equal(t, 1, countCircles(res.Frame))
}

func TestNavigateCases(t *testing.T) {
	res := run(t, "navigate_pan")
	assert.Equal(t, gridview.ScreenVector{X: -120, Y: -60}, res.State.Transform.Shift())

	res = run(t, "navigate_zoom_in")
	assert.InDelta(t, 2.386, res.State.Transform.ZoomLog(), 1e-3)

	res = run(t, "navigate_zoom_select")
	assert.Equal(t, gridview.Selection{Index: 9, Valid: true}, res.State.Selected)
}

func TestCircleCloud(t *testing.T) {
	a := CircleCloud(1000, 100, CloudSeed)
	b := CircleCloud(1000, 100, CloudSeed)
	require.Equal(t, a, b)
	assert.NotEqual(t, a, CircleCloud(1000, 100, CloudSeed+1))
	for _, c := range a {
		assert.True(t, c.Center.X >= 0 && c.Center.X < 100)
		assert.True(t, c.Center.Y >= 0 && c.Center.Y < 100)
		assert.True(t, c.R >= 0.005 && c.R < 0.05)
	}
}

func TestCostField(t *testing.T) {
	f, err := CostField(20, 30, 1, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, f.Rows())
	assert.Equal(t, 30, f.Cols())
	for r := range 20 {
		for c := range 30 {
			cost := f.At(r, c)
			require.True(t, cost.Valid)
			assert.True(t, cost.Value >= -5 && cost.Value <= 5)
		}
	}

	f, err = CostField(5, 5, 0, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.MaxAbs())
	assert.False(t, f.At(2, 2).Valid)

	_, err = CostField(0, 5, 1, 5, 1)
	assert.ErrorIs(t, err, gridview.ErrEmptyGrid)
}

func TestRandomSnake(t *testing.T) {
	start := gridview.Cell{Row: 0, Col: 0}
	s, err := RandomSnake(3, 4, start, 500, 7)
	require.NoError(t, err)
	require.Len(t, s, 500)
	assert.Equal(t, start, s[0])
	assert.NoError(t, s.Validate())
	f, err := gridview.NewGridField(3, 4)
	require.NoError(t, err)
	assert.NoError(t, s.CheckBounds(f))

	_, err = RandomSnake(3, 4, gridview.Cell{Row: 3, Col: 0}, 5, 7)
	assert.ErrorIs(t, err, gridview.ErrOutOfBounds)
	_, err = RandomSnake(3, 4, start, 0, 7)
	assert.ErrorIs(t, err, gridview.ErrEmptySnake)
}

func TestLine(t *testing.T) {
	s := line(gridview.Cell{Row: 2, Col: 5}, gridview.Cell{Row: 2, Col: 2})
	assert.Equal(t, gridview.Snake{{Row: 2, Col: 5}, {Row: 2, Col: 4}, {Row: 2, Col: 3}, {Row: 2, Col: 2}}, s)
	assert.Len(t, line(gridview.Cell{}, gridview.Cell{}), 1)
}
