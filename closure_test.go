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

	"github.com/stretchr/testify/require"
)

func TestApproximateRatio(t *testing.T) {
	cases := []struct {
		x          float64
		num, denom int
	}{
		{1.5, 3, 2},
		{2, 2, 1},
		{1, 1, 1},
		{0, 0, 1},
		{13.0 / 3, 13, 3},
		{-1.5, -3, 2},
		{0.75, 3, 4},
		{math.Pi, 355, 113},
		{math.NaN(), 1, 1},
		{math.Inf(1), 1, 1},
		{1e300, 1, 1},
	}
	for _, tc := range cases {
		num, denom := ApproximateRatio(tc.x, MaxClosureDenominator)
		require.Equal(t, tc.num, num, "numerator for %g", tc.x)
		require.Equal(t, tc.denom, denom, "denominator for %g", tc.x)
	}
}

// Without an exact match the best fraction within the window is used.
func TestApproximateRatioWindow(t *testing.T) {
	num, denom := ApproximateRatio(math.Pi, 10)
	require.Equal(t, 22, num)
	require.Equal(t, 7, denom)
}

func TestEstimateClosure(t *testing.T) {
	cases := []struct {
		R, r, d float64
		want    int
	}{
		{200, 60, 80, 3},  // epitrochoid, ratio 13/3
		{180, 70, 40, 7},  // hypotrochoid, ratio 11/7
		{120, 60, 60, 1},  // epicycloid, ratio 3
		{120, 80, 20, 2},  // hypotrochoid, ratio 1/2
		{100, 30, 30, 3},  // epicycloid, ratio 13/3
		{100, 0, 30, 1},   // degenerate, ratio +Inf
		{100, 40, 120, 2}, // epitrochoid, ratio 7/2
		{100, -40, 10, 2}, // negative rolling radius, ratio -3/2
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, EstimateClosure(tc.R, tc.r, tc.d),
			"R=%g r=%g d=%g", tc.R, tc.r, tc.d)
	}
}

func TestGCD(t *testing.T) {
	require.Equal(t, 6, gcd(12, 18))
	require.Equal(t, 1, gcd(7, 3))
	require.Equal(t, 5, gcd(0, 5))
	require.Equal(t, 5, gcd(5, 0))
}

func TestRoundHalfUp(t *testing.T) {
	require.Equal(t, 3.0, roundHalfUp(2.5))
	require.Equal(t, -2.0, roundHalfUp(-2.5))
	require.Equal(t, 2.0, roundHalfUp(2.4999))
	require.Equal(t, 128.0, roundHalfUp(127.5))
}

func TestClosureRatio(t *testing.T) {
	require.Equal(t, 260.0/60, ClosureRatio(200, 60, 80))
	require.Equal(t, 140.0/60, ClosureRatio(200, 60, 40))
	require.Equal(t, 260.0/60, ClosureRatio(200, 60, 60))
}
