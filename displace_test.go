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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func TestDisplace(t *testing.T) {
	center := vec.Vec2{X: 400, Y: 400}
	cases := []struct {
		name     string
		p        vec.Vec2
		rotation float64
		d        DisplacementParams
		want     vec.Vec2
	}{
		{
			name: "identity",
			p:    vec.Vec2{X: 180},
			d:    DisplacementParams{Frequency: 6, Exponent: 1},
			want: vec.Vec2{X: 580, Y: 400},
		},
		{
			name:     "quarter turn",
			p:        vec.Vec2{X: 10},
			rotation: math.Pi / 2,
			d:        DisplacementParams{Frequency: 6, Exponent: 1},
			want:     vec.Vec2{X: 400, Y: 410},
		},
		{
			name: "outward",
			p:    vec.Vec2{X: 3, Y: 4},
			d:    DisplacementParams{Amplitude: 10, PhaseDeg: 90, Exponent: 1},
			want: vec.Vec2{X: 409, Y: 412},
		},
		{
			name: "inward past centre",
			p:    vec.Vec2{X: 3, Y: 4},
			d:    DisplacementParams{Amplitude: 10, PhaseDeg: -90, Exponent: 2},
			want: vec.Vec2{X: 397, Y: 396},
		},
		{
			// sin(2·π/2) is zero up to rounding, so only a tiny shift
			name: "node",
			p:    vec.Vec2{Y: 5},
			d:    DisplacementParams{Amplitude: 10, Frequency: 2, Exponent: 1},
			want: vec.Vec2{X: 400, Y: 405},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Displace(tc.p, center, tc.rotation, tc.d)
			if d := cmp.Diff(tc.want, got, approx); d != "" {
				t.Errorf("mismatch (-want +got):\n%s", d)
			}
		})
	}
}

// The exponent shapes the wave but keeps its sign.
func TestModulationSign(t *testing.T) {
	d := DisplacementParams{Amplitude: 2, Frequency: 1, Exponent: 0.5}
	for _, phi := range []float64{0.1, 1, 2, 3} {
		if got := d.modulation(phi); got <= 0 {
			t.Errorf("modulation(%g) = %g, want > 0", phi, got)
		}
		if got := d.modulation(-phi); got >= 0 {
			t.Errorf("modulation(%g) = %g, want < 0", -phi, got)
		}
	}
	if got := d.modulation(0); got != 0 {
		t.Errorf("modulation(0) = %g, want 0", got)
	}
}

// A zero exponent flattens the wave into a square wave of height
// amplitude, which still vanishes at the nodes.
func TestModulationZeroExponent(t *testing.T) {
	d := DisplacementParams{Amplitude: 5, Frequency: 2, Exponent: 0}
	for _, phi := range []float64{0.1, 0.5, 1, 1.5} {
		if got := d.modulation(phi); got != 5 {
			t.Errorf("modulation(%g) = %g, want 5", phi, got)
		}
		if got := d.modulation(-phi); got != -5 {
			t.Errorf("modulation(%g) = %g, want -5", -phi, got)
		}
	}
	if got := d.modulation(0); got != 0 {
		t.Errorf("modulation(0) = %g, want 0", got)
	}
}

func TestModulationNegativeExponentAtNode(t *testing.T) {
	d := DisplacementParams{Amplitude: 5, Frequency: 6, Exponent: -1}
	if got := d.modulation(0); got != 0 {
		t.Errorf("modulation(0) = %g, want 0", got)
	}
	if got := d.modulation(math.Pi / 12); math.Abs(got-5) > 1e-9 {
		t.Errorf("modulation(π/12) = %g, want 5", got)
	}

	center := vec.Vec2{X: 400, Y: 400}
	got := Displace(vec.Vec2{X: 180}, center, 0, d)
	if d := cmp.Diff(vec.Vec2{X: 580, Y: 400}, got, approx); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}
