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


package guilloche

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultParamsValid(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())
	require.Equal(t, Epitrochoid, p.Curve.Family())
	require.Equal(t, []Color{red, green, blue, yellow}, p.Gradient.Colors)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(p *Params)
	}{
		{"zero r", func(p *Params) { p.Curve.SmallR = 0 }},
		{"NaN R", func(p *Params) { p.Curve.R = math.NaN() }},
		{"infinite d", func(p *Params) { p.Curve.D = math.Inf(1) }},
		{"no layers", func(p *Params) { p.Layers.Count = 0 }},
		{"zero step", func(p *Params) { p.Sweep.Step = 0 }},
		{"negative step", func(p *Params) { p.Sweep.Step = -0.01 }},
		{"zero rotations", func(p *Params) { p.Sweep.Rotations = 0 }},
		{"step too large", func(p *Params) { p.Sweep = SweepParams{Rotations: 1, Step: 7} }},
		{"one colour", func(p *Params) { p.Gradient.Colors = p.Gradient.Colors[:1] }},
		{"negative loops", func(p *Params) { p.Gradient.Loops = -1 }},
		{"zero width", func(p *Params) { p.Stroke.Width = 0 }},
		{"NaN amplitude", func(p *Params) { p.Displacement.Amplitude = math.NaN() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.modify(&p)
			err := p.Validate()
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidParameters)
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	p := DefaultParams()
	p.Curve.SmallR = 0
	p.Layers.Count = 0
	p.Stroke.Width = -1

	err := p.Validate()
	var invalid *InvalidParametersError
	require.True(t, errors.As(err, &invalid))
	require.Len(t, invalid.Problems, 3)
	require.Contains(t, err.Error(), "r must be non-zero")
}

// Degenerate but finite values are accepted.
func TestValidateAccepts(t *testing.T) {
	p := DefaultParams()
	p.Gradient.Loops = 0
	p.Displacement = DisplacementParams{Amplitude: -40, Frequency: 0, Exponent: 0}
	p.Curve.R = 0
	p.Curve.D = 0
	require.NoError(t, p.Validate())
}

func TestClone(t *testing.T) {
	p := DefaultParams()
	q := p.Clone()
	q.Gradient.Colors[0] = white
	require.Equal(t, red, p.Gradient.Colors[0])
}
