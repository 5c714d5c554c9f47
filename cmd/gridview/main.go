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


// Command gridview replays viewer sessions without a window.
//
// A session is a test case from the testcases package, optionally extended
// by a YAML script of input events.  The resulting frame can be written as
// a PNG image or summarized as text.
//
// Environment variables GRIDVIEW_WIDTH, GRIDVIEW_HEIGHT, GRIDVIEW_OUT_DIR and
// GRIDVIEW_LOG_LEVEL set defaults for the corresponding flags.
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"seehuhn.de/go/gridview/canvas"
	"seehuhn.de/go/gridview/testcases"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gridview:", err)
		os.Exit(1)
	}
	if err := newRootCommand(cfg).Execute(); err != nil {
		slog.Error("gridview failed", "error", err)
		os.Exit(1)
	}
}

// flags holds the options shared by the commands which run a session.
type flags struct {
	script string
	width  int
	height int
}

func newRootCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gridview",
		Short:         "Replay pan/zoom viewer sessions without a window",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(h))
			return nil
		},
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newRenderCommand(cfg))
	cmd.AddCommand(newInfoCommand(cfg))
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
				for _, tc := range testcases.All[category] {
					_, _ = fmt.Fprintf(w, "%s_%s\t%dx%d\t%d events\n",
						category, tc.Name, tc.Width, tc.Height, len(tc.Events))
				}
			}
			return nil
		},
	}
}

func newRenderCommand(cfg *Config) *cobra.Command {
	f := &flags{}
	var out string

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Replay a session and write the final frame as PNG",
		Long: `Replay a session and write the final frame as a PNG image.

Examples:
  gridview render circle_select
  gridview render --script zoom.yaml -o zoom.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, res, err := f.run(args)
			if err != nil {
				return err
			}

			fname := out
			if fname == "" {
				fname = filepath.Join(cfg.OutDir, tc.Name+".png")
			}
			start := time.Now()
			img := canvas.Render(res.Frame, tc.Width, tc.Height)
			slog.Debug("painted frame", "ops", len(res.Frame.Ops), "elapsed", time.Since(start))

			if err := writePNG(fname, img); err != nil {
				return err
			}
			slog.Info("wrote frame", "file", fname,
				"width", tc.Width, "height", tc.Height,
				"cells_skipped", res.Frame.CellsSkipped)
			return nil
		},
	}
	f.register(cmd, cfg)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: <out-dir>/<scene>.png)")
	return cmd
}

func newInfoCommand(cfg *Config) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "info [scene]",
		Short: "Replay a session and describe the final state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, res, err := f.run(args)
			if err != nil {
				return err
			}
			return writeInfo(cmd.OutOrStdout(), &tc, res)
		},
	}
	f.register(cmd, cfg)
	return cmd
}

func (f *flags) register(cmd *cobra.Command, cfg *Config) {
	cmd.Flags().StringVarP(&f.script, "script", "s", "", "YAML script of input events")
	cmd.Flags().IntVar(&f.width, "width", cfg.Width, "canvas width in pixels (0: scene default)")
	cmd.Flags().IntVar(&f.height, "height", cfg.Height, "canvas height in pixels (0: scene default)")
}

// run resolves and replays the session given by the positional arguments
// and flags.
func (f *flags) run(args []string) (testcases.TestCase, *testcases.Result, error) {
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	var script *Script
	if f.script != "" {
		s, err := loadScript(f.script)
		if err != nil {
			return testcases.TestCase{}, nil, err
		}
		script = s
	}

	tc, err := session(name, script)
	if err != nil {
		return testcases.TestCase{}, nil, err
	}
	if f.width < 0 || f.height < 0 {
		return testcases.TestCase{}, nil, fmt.Errorf("invalid canvas size %dx%d", f.width, f.height)
	}
	if f.width > 0 {
		tc.Width = f.width
	}
	if f.height > 0 {
		tc.Height = f.height
	}

	slog.Debug("replaying session", "scene", tc.Name, "events", len(tc.Events))
	res, err := tc.Run()
	if err != nil {
		return testcases.TestCase{}, nil, fmt.Errorf("scene %s: %w", tc.Name, err)
	}
	return tc, res, nil
}

// writeInfo prints a summary of the final state and frame of a session.
func writeInfo(w io.Writer, tc *testcases.TestCase, res *testcases.Result) error {
	t := &res.State.Transform
	reg := res.Frame.Region
	sel := "none"
	if res.State.Selected.Valid {
		sel = fmt.Sprint(res.State.Selected.Index)
	}
	hover := "none"
	if res.State.Hover.Valid {
		hover = fmt.Sprint(res.State.Hover.Index)
	}

	_, err := fmt.Fprintf(w,
		"scene: %s\ncanvas: %dx%d\nzoom: %g (log %g)\nshift: %g, %g\n"+
			"region: rows [%d, %d), cols [%d, %d)\ncells skipped: %t\nops: %d\n"+
			"hover: %s\nselected: %s\n",
		tc.Name, tc.Width, tc.Height,
		t.Zoom(), t.ZoomLog(), t.Shift().X, t.Shift().Y,
		reg.Rows.Start, reg.Rows.End, reg.Cols.Start, reg.Cols.End,
		res.Frame.CellsSkipped, len(res.Frame.Ops),
		hover, sel)
	return err
}

func writePNG(fname string, img *image.RGBA) error {
	if dir := filepath.Dir(fname); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", fname, err)
	}
	return f.Close()
}
