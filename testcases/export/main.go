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


// Command export writes the frame of every test case to JSON, as a list of
// drawing primitives in painter's order.
// Run from the gridview module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/gridview"
	"seehuhn.de/go/gridview/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			res, err := tc.Run()
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, toJSON(category, &tc, res))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/frames.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name         string     `json:"name"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	ZoomLog      float64    `json:"zoom_log"`
	Shift        [2]float32 `json:"shift"`
	Region       [4]int     `json:"region"` // row start, row end, col start, col end
	CellsSkipped bool       `json:"cells_skipped,omitempty"`
	Hover        *int       `json:"hover,omitempty"`
	Selected     *int       `json:"selected,omitempty"`
	Ops          []jsonOp   `json:"ops"`
}

type jsonOp struct {
	Op     string      `json:"op"`
	Pts    [][]float32 `json:"pts"`
	Radius float32     `json:"radius,omitempty"`
	Width  float32     `json:"width,omitempty"`
	Cap    string      `json:"cap,omitempty"`
	Color  string      `json:"color,omitempty"`
	Size   []int       `json:"size,omitempty"` // texture width and height
}

func toJSON(category string, tc *testcases.TestCase, res *testcases.Result) jsonTestCase {
	t := &res.State.Transform
	reg := res.Frame.Region
	jtc := jsonTestCase{
		Name:         category + "_" + tc.Name,
		Width:        tc.Width,
		Height:       tc.Height,
		ZoomLog:      t.ZoomLog(),
		Shift:        [2]float32{t.Shift().X, t.Shift().Y},
		Region:       [4]int{reg.Rows.Start, reg.Rows.End, reg.Cols.Start, reg.Cols.End},
		CellsSkipped: res.Frame.CellsSkipped,
		Hover:        index(res.State.Hover),
		Selected:     index(res.State.Selected),
	}
	for _, op := range res.Frame.Ops {
		jtc.Ops = append(jtc.Ops, opToJSON(op))
	}
	return jtc
}

func opToJSON(op gridview.DrawOp) jsonOp {
	switch op := op.(type) {
	case gridview.FillRect:
		return jsonOp{
			Op:    "rect",
			Pts:   [][]float32{pt(op.Rect.Min), pt(op.Rect.Max)},
			Color: hex(op.Color),
		}
	case gridview.FillCircle:
		return jsonOp{
			Op:     "circle",
			Pts:    [][]float32{pt(op.Center)},
			Radius: op.Radius,
			Color:  hex(op.Color),
		}
	case gridview.Line:
		return jsonOp{
			Op:    "line",
			Pts:   [][]float32{pt(op.From), pt(op.To)},
			Width: op.Width,
			Cap:   op.Cap.String(),
			Color: hex(op.Color),
		}
	case gridview.TexturedQuad:
		b := op.Texture.Bounds()
		return jsonOp{
			Op:   "texture",
			Pts:  [][]float32{pt(op.Rect.Min), pt(op.Rect.Max)},
			Size: []int{b.Dx(), b.Dy()},
		}
	}
	panic("unknown drawing operation")
}

func pt(p gridview.ScreenPoint) []float32 {
	return []float32{p.X, p.Y}
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func index(s gridview.Selection) *int {
	if !s.Valid {
		return nil
	}
	return &s.Index
}
