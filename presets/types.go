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

// Package presets holds a registry of named guilloche parameter sets.
package presets

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"seehuhn.de/go/pdf/graphics"

	"github.com/prabinpebam/guilloche"
)

// Preset is a named parameter set with the canvas size it is designed for.
type Preset struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Params guilloche.Params
	Width  int
	Height int
}

// FullName returns "category/name" for a preset of the given category.
func FullName(category string, p Preset) string {
	return category + "/" + p.Name
}

// Lookup finds a preset by "category/name", or by its bare name if that
// is unique across all categories.
func Lookup(name string) (Preset, error) {
	if category, short, ok := strings.Cut(name, "/"); ok {
		for _, p := range All[category] {
			if p.Name == short {
				return clonePreset(p), nil
			}
		}
		return Preset{}, fmt.Errorf("unknown preset %q", name)
	}

	var found []Preset
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, p := range All[category] {
			if p.Name == name {
				found = append(found, p)
			}
		}
	}
	switch len(found) {
	case 0:
		return Preset{}, fmt.Errorf("unknown preset %q", name)
	case 1:
		return clonePreset(found[0]), nil
	default:
		return Preset{}, fmt.Errorf("preset name %q is ambiguous", name)
	}
}

// Names returns the full names of all presets, sorted.
func Names() []string {
	var names []string
	for category, list := range All {
		for _, p := range list {
			names = append(names, FullName(category, p))
		}
	}
	slices.Sort(names)
	return names
}

func clonePreset(p Preset) Preset {
	p.Params = p.Params.Clone()
	return p
}

// option modifies a preset's parameters.
type option func(*guilloche.Params)

// figure returns default parameters for the curve R, r, d, modified by
// opts.
func figure(R, r, d float64, opts ...option) guilloche.Params {
	p := guilloche.DefaultParams()
	p.Curve = guilloche.CurveParams{R: R, SmallR: r, D: d}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func sweep(rotations, step float64) option {
	return func(p *guilloche.Params) {
		p.Sweep = guilloche.SweepParams{Rotations: rotations, Step: step}
	}
}

func layers(count int, offsetDeg, rotationDeg float64) option {
	return func(p *guilloche.Params) {
		p.Layers = guilloche.LayerParams{Count: count, OffsetDeg: offsetDeg, RotationDeg: rotationDeg}
	}
}

func displace(amplitude, frequency, phaseDeg, exponent float64) option {
	return func(p *guilloche.Params) {
		p.Displacement = guilloche.DisplacementParams{
			Amplitude: amplitude,
			Frequency: frequency,
			PhaseDeg:  phaseDeg,
			Exponent:  exponent,
		}
	}
}

// colors sets the gradient stops from 0xrrggbb values.
func colors(values ...uint32) option {
	cc := make([]guilloche.Color, len(values))
	for i, v := range values {
		cc[i] = guilloche.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
	}
	return func(p *guilloche.Params) {
		p.Gradient.Colors = cc
	}
}

func loops(n float64) option {
	return func(p *guilloche.Params) {
		p.Gradient.Loops = n
	}
}

func width(w float64) option {
	return func(p *guilloche.Params) {
		p.Stroke.Width = w
	}
}

func lineCap(c graphics.LineCapStyle) option {
	return func(p *guilloche.Params) {
		p.Stroke.Cap = c
	}
}
