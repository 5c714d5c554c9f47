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


package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/gridview"
	"seehuhn.de/go/gridview/testcases"
)

// Script describes a viewer session in YAML.
//
//	scene: circle_plain
//	width: 300
//	height: 300
//	view: {zoom_log: 0, shift: [0, 0]}
//	events:
//	  - {cursor: [100, 100], click: true}
//	  - {cursor: [150, 150], scroll: 250}
//	  - {drag: [-5, 0], repeat: 10}
//
// All fields are optional.  The scene names a test case, whose scene,
// canvas size, view and events are used unless the script overrides them.
// Script events run after the events of the test case.
type Script struct {
	Scene  string        `yaml:"scene"`
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
	View   *scriptView   `yaml:"view"`
	Events []scriptEvent `yaml:"events"`
}

type scriptView struct {
	ZoomLog float64    `yaml:"zoom_log"`
	Shift   [2]float32 `yaml:"shift"`
}

type scriptEvent struct {
	Cursor *[2]float32 `yaml:"cursor"`
	Scroll float32     `yaml:"scroll"`
	Drag   [2]float32  `yaml:"drag"`
	Click  bool        `yaml:"click"`
	Repeat int         `yaml:"repeat"`
}

// defaultScene is used when neither the command line nor the script names
// a scene.
const defaultScene = "viewer_default"

// readScript decodes a script.  Unknown fields are an error.
func readScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	for i, ev := range s.Events {
		if ev.Repeat < 0 {
			return nil, fmt.Errorf("event %d: negative repeat count %d", i, ev.Repeat)
		}
	}
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", s.Width, s.Height)
	}
	return &s, nil
}

// loadScript reads the script at fname.
func loadScript(fname string) (*Script, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := readScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

// Inputs expands the script events into per-frame inputs.
func (s *Script) Inputs() []gridview.Input {
	var res []gridview.Input
	for _, ev := range s.Events {
		in := gridview.Input{
			Scroll:  ev.Scroll,
			Drag:    gridview.ScreenVector{X: ev.Drag[0], Y: ev.Drag[1]},
			Clicked: ev.Click,
		}
		if ev.Cursor != nil {
			in.Cursor = gridview.ScreenPoint{X: ev.Cursor[0], Y: ev.Cursor[1]}
			in.HasCursor = true
		}
		for range max(ev.Repeat, 1) {
			res = append(res, in)
		}
	}
	return res
}

// session combines a test case with an optional script.  A non-empty name
// takes precedence over the scene of the script.
func session(name string, s *Script) (testcases.TestCase, error) {
	if s == nil {
		s = &Script{}
	}
	switch {
	case name != "":
	case s.Scene != "":
		name = s.Scene
	default:
		name = defaultScene
	}

	tc, ok := testcases.Find(name)
	if !ok {
		return testcases.TestCase{}, fmt.Errorf("unknown scene %q", name)
	}
	tc.Name = name
	if s.Width > 0 {
		tc.Width = s.Width
	}
	if s.Height > 0 {
		tc.Height = s.Height
	}
	if s.View != nil {
		tc.View = testcases.View{
			ZoomLog: s.View.ZoomLog,
			Shift:   gridview.ScreenVector{X: s.View.Shift[0], Y: s.View.Shift[1]},
		}
	}
	tc.Events = append(append([]gridview.Input(nil), tc.Events...), s.Inputs()...)
	return tc, nil
}
