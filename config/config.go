// guilloche - parametric roulette ornaments
// Copyright (C) 2026  The guilloche authors
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


// Package config loads the settings of the command line tool from flags,
// environment variables and configuration files.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"seehuhn.de/go/pdf/graphics"

	"github.com/prabinpebam/guilloche"
	"github.com/prabinpebam/guilloche/export"
	"github.com/prabinpebam/guilloche/presets"
)

// Config is the complete configuration of the command line tool.
type Config struct {
	// Preset names an entry of the preset registry. If set, it replaces
	// the curve, layers, sweep, displacement, gradient and stroke
	// sections.
	Preset string `mapstructure:"preset" json:"preset" toml:"preset" yaml:"preset"`

	Curve        Curve        `mapstructure:"curve" json:"curve" toml:"curve" yaml:"curve"`
	Layers       Layers       `mapstructure:"layers" json:"layers" toml:"layers" yaml:"layers"`
	Sweep        Sweep        `mapstructure:"sweep" json:"sweep" toml:"sweep" yaml:"sweep"`
	Displacement Displacement `mapstructure:"displacement" json:"displacement" toml:"displacement" yaml:"displacement"`
	Gradient     Gradient     `mapstructure:"gradient" json:"gradient" toml:"gradient" yaml:"gradient"`
	Stroke       Stroke       `mapstructure:"stroke" json:"stroke" toml:"stroke" yaml:"stroke"`
	Canvas       Canvas       `mapstructure:"canvas" json:"canvas" toml:"canvas" yaml:"canvas"`
	Animation    Animation    `mapstructure:"animation" json:"animation" toml:"animation" yaml:"animation"`
	Log          Log          `mapstructure:"log" json:"log" toml:"log" yaml:"log"`
}

type Curve struct {
	OuterRadius   float64 `mapstructure:"outer_radius" json:"outer_radius" toml:"outer_radius" yaml:"outer_radius"`
	RollingRadius float64 `mapstructure:"rolling_radius" json:"rolling_radius" toml:"rolling_radius" yaml:"rolling_radius"`
	PenOffset     float64 `mapstructure:"pen_offset" json:"pen_offset" toml:"pen_offset" yaml:"pen_offset"`
}

type Layers struct {
	Count       int     `mapstructure:"count" json:"count" toml:"count" yaml:"count"`
	OffsetDeg   float64 `mapstructure:"offset_deg" json:"offset_deg" toml:"offset_deg" yaml:"offset_deg"`
	RotationDeg float64 `mapstructure:"rotation_deg" json:"rotation_deg" toml:"rotation_deg" yaml:"rotation_deg"`
}

type Sweep struct {
	Rotations float64 `mapstructure:"rotations" json:"rotations" toml:"rotations" yaml:"rotations"`
	Step      float64 `mapstructure:"step" json:"step" toml:"step" yaml:"step"`
}

type Displacement struct {
	Amplitude float64 `mapstructure:"amplitude" json:"amplitude" toml:"amplitude" yaml:"amplitude"`
	Frequency float64 `mapstructure:"frequency" json:"frequency" toml:"frequency" yaml:"frequency"`
	PhaseDeg  float64 `mapstructure:"phase_deg" json:"phase_deg" toml:"phase_deg" yaml:"phase_deg"`
	Exponent  float64 `mapstructure:"exponent" json:"exponent" toml:"exponent" yaml:"exponent"`
}

type Gradient struct {
	// Colors are hex codes or SVG colour keywords.
	Colors []string `mapstructure:"colors" json:"colors" toml:"colors" yaml:"colors"`
	Loops  float64  `mapstructure:"loops" json:"loops" toml:"loops" yaml:"loops"`

	// StopLayout is "fixed" or "even", see [export.StopLayout].
	StopLayout string `mapstructure:"stop_layout" json:"stop_layout" toml:"stop_layout" yaml:"stop_layout"`
}

type Stroke struct {
	Width float64 `mapstructure:"width" json:"width" toml:"width" yaml:"width"`
	// Cap is "butt", "round" or "square".
	Cap string `mapstructure:"cap" json:"cap" toml:"cap" yaml:"cap"`
}

type Canvas struct {
	Width  int `mapstructure:"width" json:"width" toml:"width" yaml:"width"`
	Height int `mapstructure:"height" json:"height" toml:"height" yaml:"height"`
	// Background is a colour, or "none" for a transparent canvas.
	Background string `mapstructure:"background" json:"background" toml:"background" yaml:"background"`
	// Scale is the number of raster pixels per unit.
	Scale float64 `mapstructure:"scale" json:"scale" toml:"scale" yaml:"scale"`
}

type Animation struct {
	// Enabled applies the oscillation at Elapsed to single images.
	Enabled bool          `mapstructure:"enabled" json:"enabled" toml:"enabled" yaml:"enabled"`
	Elapsed time.Duration `mapstructure:"elapsed" json:"elapsed" toml:"elapsed" yaml:"elapsed"`

	// Frames, FPS and Workers control the animate command.
	Frames  int     `mapstructure:"frames" json:"frames" toml:"frames" yaml:"frames"`
	FPS     float64 `mapstructure:"fps" json:"fps" toml:"fps" yaml:"fps"`
	Workers int     `mapstructure:"workers" json:"workers" toml:"workers" yaml:"workers"`
}

type Log struct {
	Level string `mapstructure:"level" json:"level" toml:"level" yaml:"level"`
	File  string `mapstructure:"file" json:"file" toml:"file" yaml:"file"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	p := guilloche.DefaultParams()
	colors := make([]string, len(p.Gradient.Colors))
	for i, c := range p.Gradient.Colors {
		colors[i] = c.Hex()
	}
	return Config{
		Curve: Curve{
			OuterRadius:   p.Curve.R,
			RollingRadius: p.Curve.SmallR,
			PenOffset:     p.Curve.D,
		},
		Layers: Layers{
			Count:       p.Layers.Count,
			OffsetDeg:   p.Layers.OffsetDeg,
			RotationDeg: p.Layers.RotationDeg,
		},
		Sweep: Sweep{
			Rotations: p.Sweep.Rotations,
			Step:      p.Sweep.Step,
		},
		Displacement: Displacement{
			Amplitude: p.Displacement.Amplitude,
			Frequency: p.Displacement.Frequency,
			PhaseDeg:  p.Displacement.PhaseDeg,
			Exponent:  p.Displacement.Exponent,
		},
		Gradient: Gradient{
			Colors:     colors,
			Loops:      p.Gradient.Loops,
			StopLayout: export.StopsFixed.String(),
		},
		Stroke: Stroke{
			Width: p.Stroke.Width,
			Cap:   "butt",
		},
		Canvas: Canvas{
			Width:      export.DefaultSize,
			Height:     export.DefaultSize,
			Background: "#ffffff",
			Scale:      1,
		},
		Animation: Animation{
			Frames:  50,
			FPS:     25,
			Workers: 4,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// BaseParams converts the configuration into drawing parameters, without
// animation offsets. The result is validated.
func (c Config) BaseParams() (guilloche.Params, error) {
	var p guilloche.Params
	if c.Preset != "" {
		preset, err := presets.Lookup(c.Preset)
		if err != nil {
			return p, err
		}
		p = preset.Params
	} else {
		colors, err := guilloche.ParseColors(c.Gradient.Colors)
		if err != nil {
			return p, fmt.Errorf("gradient: %w", err)
		}
		lineCap, err := ParseLineCap(c.Stroke.Cap)
		if err != nil {
			return p, fmt.Errorf("stroke: %w", err)
		}
		p = guilloche.Params{
			Curve: guilloche.CurveParams{
				R:      c.Curve.OuterRadius,
				SmallR: c.Curve.RollingRadius,
				D:      c.Curve.PenOffset,
			},
			Layers: guilloche.LayerParams{
				Count:       c.Layers.Count,
				OffsetDeg:   c.Layers.OffsetDeg,
				RotationDeg: c.Layers.RotationDeg,
			},
			Sweep: guilloche.SweepParams{
				Rotations: c.Sweep.Rotations,
				Step:      c.Sweep.Step,
			},
			Displacement: guilloche.DisplacementParams{
				Amplitude: c.Displacement.Amplitude,
				Frequency: c.Displacement.Frequency,
				PhaseDeg:  c.Displacement.PhaseDeg,
				Exponent:  c.Displacement.Exponent,
			},
			Gradient: guilloche.GradientSpec{
				Colors: colors,
				Loops:  c.Gradient.Loops,
			},
			Stroke: guilloche.StrokeParams{
				Width: c.Stroke.Width,
				Cap:   lineCap,
			},
		}
	}

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Params returns [Config.BaseParams] with the animation offsets for
// Animation.Elapsed added, if Animation.Enabled is set.
func (c Config) Params() (guilloche.Params, error) {
	p, err := c.BaseParams()
	if err != nil {
		return p, err
	}
	if c.Animation.Enabled {
		p = p.Animated(c.Animation.Elapsed)
	}
	return p, nil
}

// SVGOptions returns the options for [export.WriteSVG].
func (c Config) SVGOptions() (export.SVGOptions, error) {
	stops, err := export.ParseStopLayout(c.Gradient.StopLayout)
	if err != nil {
		return export.SVGOptions{}, err
	}
	return export.SVGOptions{Size: c.Canvas.Width, Stops: stops}, nil
}

// Background returns the canvas background, or nil for "none" and "".
func (c Config) Background() (*guilloche.Color, error) {
	switch strings.ToLower(strings.TrimSpace(c.Canvas.Background)) {
	case "", "none", "transparent":
		return nil, nil
	}
	col, err := guilloche.ParseColor(c.Canvas.Background)
	if err != nil {
		return nil, fmt.Errorf("canvas background: %w", err)
	}
	return &col, nil
}

// ErrCanvasSize is returned by [Config.Validate] for non-positive canvas
// dimensions.
var ErrCanvasSize = errors.New("canvas size must be positive")

// Validate checks the sections which are not covered by
// [guilloche.Params.Validate].
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w, got %dx%d", ErrCanvasSize, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Scale <= 0 {
		return fmt.Errorf("canvas scale must be positive, got %g", c.Canvas.Scale)
	}
	if _, err := c.Background(); err != nil {
		return err
	}
	if _, err := export.ParseStopLayout(c.Gradient.StopLayout); err != nil {
		return fmt.Errorf("gradient: %w", err)
	}
	if c.Animation.Frames < 1 {
		return fmt.Errorf("animation frames must be at least 1, got %d", c.Animation.Frames)
	}
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("animation fps must be positive, got %g", c.Animation.FPS)
	}
	if c.Animation.Workers < 1 {
		return fmt.Errorf("animation workers must be at least 1, got %d", c.Animation.Workers)
	}
	return nil
}

// ParseLineCap converts "butt", "round" or "square" to a cap style.
func ParseLineCap(s string) (graphics.LineCapStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	default:
		return graphics.LineCapButt, fmt.Errorf("unknown line cap %q", s)
	}
}
