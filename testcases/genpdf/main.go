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


// Command genpdf writes the frame of every test case as a one-page PDF.
// If Ghostscript is installed, each PDF is also rendered to a PNG, for
// comparison with the output of the canvas package.
package main

import (
	"fmt"
	"image/color"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/gridview"
	"seehuhn.de/go/gridview/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}
	_, err := exec.LookPath("gs")
	haveGS := err == nil

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			res, err := tc.Run()
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePDF(tc.Width, tc.Height, res.Frame, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if !haveGS {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(width, height int, f *gridview.Frame, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; frames use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})
	page.SetLineJoin(graphics.LineJoinRound)

	for _, op := range f.Ops {
		switch op := op.(type) {
		case gridview.FillRect:
			r := op.Rect.Canon()
			page.SetFillColor(pdfcolor.DeviceGray(gray(op.Color)))
			page.Rectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
			page.Fill()

		case gridview.FillCircle:
			page.SetFillColor(pdfcolor.DeviceGray(gray(op.Color)))
			for cmd, pts := range op.Outline().Iter().ToCubic() {
				switch cmd {
				case path.CmdMoveTo:
					page.MoveTo(pts[0].X, pts[0].Y)
				case path.CmdLineTo:
					page.LineTo(pts[0].X, pts[0].Y)
				case path.CmdCubeTo:
					page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				case path.CmdClose:
					page.ClosePath()
				}
			}
			page.Fill()

		case gridview.Line:
			page.SetStrokeColor(pdfcolor.DeviceGray(gray(op.Color)))
			page.SetLineWidth(float64(op.Width))
			page.SetLineCap(op.Cap)
			page.MoveTo(float64(op.From.X), float64(op.From.Y))
			page.LineTo(float64(op.To.X), float64(op.To.Y))
			page.Stroke()

		case gridview.TexturedQuad:
			// the field is shown as a solid block when zoomed out this far
			r := op.Rect.Canon()
			page.SetFillColor(pdfcolor.DeviceGray(0.5))
			page.Rectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
			page.Fill()
		}
	}

	return page.Close()
}

// gray converts c to a gray level in [0, 1], using Rec. 601 luma weights.
func gray(c color.NRGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
