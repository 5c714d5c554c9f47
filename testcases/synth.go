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
	"fmt"
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/gridview"
)

// CloudSeed is the seed of the viewer's default circle cloud.
const CloudSeed = 787788

// CircleCloud returns n circles with centres uniform in [0, size)² and radii
// uniform in [0.005, 0.05).  The result depends only on n, size and seed.
func CircleCloud(n int, size float64, seed uint64) []gridview.Circle {
	rng := rand.New(rand.NewPCG(seed, 0))
	res := make([]gridview.Circle, n)
	for i := range res {
		res[i] = gridview.Circle{
			Center: vec.Vec2{X: rng.Float64() * size, Y: rng.Float64() * size},
			R:      0.005 + rng.Float64()*0.045,
		}
	}
	return res
}

// CostField returns a rows × cols field.  Each cell has a cost with
// probability density, drawn uniformly from [-maxCost, maxCost].
func CostField(rows, cols int, density float64, maxCost int64, seed uint64) (*gridview.GridField, error) {
	f, err := gridview.NewGridField(rows, cols)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(seed, 1))
	for r := range rows {
		for c := range cols {
			if rng.Float64() >= density {
				continue
			}
			cost := rng.Int64N(2*maxCost+1) - maxCost
			if err := f.Set(r, c, cost); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// RandomSnake returns a random walk of the given length inside a rows × cols
// grid, starting at start.  Steps which would leave the grid are redrawn.
func RandomSnake(rows, cols int, start gridview.Cell, length int, seed uint64) (gridview.Snake, error) {
	if length < 1 {
		return nil, gridview.ErrEmptySnake
	}
	if rows <= 0 || cols <= 0 || rows*cols < 2 && length > 1 {
		return nil, fmt.Errorf("%d×%d grid: %w", rows, cols, gridview.ErrEmptyGrid)
	}
	if start.Row < 0 || start.Row >= rows || start.Col < 0 || start.Col >= cols {
		return nil, fmt.Errorf("start %v: %w", start, gridview.ErrOutOfBounds)
	}

	steps := [4]gridview.Cell{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}}
	rng := rand.New(rand.NewPCG(seed, 2))
	cells := make([]gridview.Cell, 1, length)
	cells[0] = start
	cur := start
	for len(cells) < length {
		d := steps[rng.IntN(len(steps))]
		next := gridview.Cell{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
		if next.Row < 0 || next.Row >= rows || next.Col < 0 || next.Col >= cols {
			continue
		}
		cells = append(cells, next)
		cur = next
	}
	return gridview.NewSnake(cells)
}

// line returns a straight snake from a to b, which must share a row or a
// column.
func line(a, b gridview.Cell) gridview.Snake {
	var s gridview.Snake
	dr, dc := sign(b.Row-a.Row), sign(b.Col-a.Col)
	for c := a; ; c = (gridview.Cell{Row: c.Row + dr, Col: c.Col + dc}) {
		s = append(s, c)
		if c == b {
			break
		}
	}
	return s
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
