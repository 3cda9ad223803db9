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
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestFamilyOf(t *testing.T) {
	cases := []struct {
		r, d float64
		want Family
	}{
		{60, 60, Epicycloid},
		{60, 60 + 5e-5, Epicycloid},
		{60, 60 - 5e-5, Epicycloid},
		{60, 40, Hypotrochoid},
		{60, 0, Hypotrochoid},
		{60, 80, Epitrochoid},
		{60, 60.001, Epitrochoid},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FamilyOf(tc.r, tc.d), "r=%g d=%g", tc.r, tc.d)
	}
}

func TestFamilyString(t *testing.T) {
	require.Equal(t, "epicycloid", Epicycloid.String())
	require.Equal(t, "hypotrochoid", Hypotrochoid.String())
	require.Equal(t, "epitrochoid", Epitrochoid.String())
	require.Equal(t, "unknown", Family(17).String())
}

func TestCurvePointStart(t *testing.T) {
	cases := []struct {
		R, r, d float64
		want    vec.Vec2
	}{
		{200, 60, 80, vec.Vec2{X: 180}}, // epitrochoid: (R+r) - d
		{200, 60, 40, vec.Vec2{X: 180}}, // hypotrochoid: (R-r) + d
		{200, 60, 60, vec.Vec2{X: 200}}, // epicycloid: (R+r) - r
	}
	for _, tc := range cases {
		got := CurvePoint(tc.R, tc.r, tc.d, 0)
		if d := cmp.Diff(tc.want, got, approx); d != "" {
			t.Errorf("CurvePoint(%g, %g, %g, 0) mismatch (-want +got):\n%s", tc.R, tc.r, tc.d, d)
		}
	}
}

func TestCurvePointFormulas(t *testing.T) {
	const tt = 0.7
	got := CurvePoint(150, 50, 20, tt)
	want := vec.Vec2{
		X: 100*math.Cos(tt) + 20*math.Cos(2*tt),
		Y: 100*math.Sin(tt) - 20*math.Sin(2*tt),
	}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("hypotrochoid mismatch (-want +got):\n%s", d)
	}

	got = CurvePoint(150, 50, 90, tt)
	want = vec.Vec2{
		X: 200*math.Cos(tt) - 90*math.Cos(4*tt),
		Y: 200*math.Sin(tt) - 90*math.Sin(4*tt),
	}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("epitrochoid mismatch (-want +got):\n%s", d)
	}
}

// The three families meet continuously at d = r.
func TestCurvePointContinuousAcrossFamilies(t *testing.T) {
	for _, tt := range []float64{0, 0.3, 1, 2.5, 4} {
		on := CurvePoint(120, 40, 40, tt)
		above := CurvePoint(120, 40, 40.001, tt)
		require.InDelta(t, 0, on.Sub(above).Length(), 0.01, "t=%g", tt)
	}
}

func TestCurvePointZeroRadius(t *testing.T) {
	p := CurvePoint(100, 0, 10, 1)
	require.True(t, math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0))
}
