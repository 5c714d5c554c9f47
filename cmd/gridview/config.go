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
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment defaults of the command.
type Config struct {
	Width    int    `envconfig:"WIDTH" default:"0"`
	Height   int    `envconfig:"HEIGHT" default:"0"`
	OutDir   string `envconfig:"OUT_DIR" default:"."`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// loadConfig reads the configuration from GRIDVIEW_* environment
// variables.
func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("GRIDVIEW", &cfg); err != nil {
		return nil, err
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}
	return &cfg, nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
