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


// Package gridview implements the viewport logic of an interactive viewer
// for dense cost grids with overlaid paths.
//
// A [Transform] maps the unbounded logical plane to screen pixels under
// pan and zoom.  [Visible] determines which grid cells a frame must draw,
// so that per-frame work depends on the screen size and not on the size of
// the data.  [Nearest] finds the object under the mouse cursor.
//
// The host application owns a [State] and a [Scene].  Once per frame it
// passes the polled input to [State.Update] and then draws the primitives
// returned by [State.Frame].
package gridview

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
