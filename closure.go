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

import "math"

const (
	// MaxClosureDenominator bounds the rational approximation search.
	MaxClosureDenominator = 1000

	// closureTolerance stops the search once an approximation is this close.
	closureTolerance = 1e-6

	// maxExactInt is the largest float64 below which all integers are exact.
	maxExactInt = 1 << 53
)

// EstimateClosure returns the number of rotations after which the curve
// with fixed radius R, rolling radius r and pen offset d approximately
// retraces itself.
//
// The frequency ratio of the curve is approximated by a fraction with
// denominator at most [MaxClosureDenominator]; the reduced denominator is
// returned. This is the best value found in the search window, not
// necessarily the exact period: ratios that are not close to a fraction
// with a small denominator give large, approximate answers.
func EstimateClosure(R, r, d float64) int {
	_, denom := ApproximateRatio(ClosureRatio(R, r, d), MaxClosureDenominator)
	return denom
}

// ClosureRatio returns the frequency ratio of the two circular motions
// making up the curve: (R-r)/r for d < r and (R+r)/r otherwise.
func ClosureRatio(R, r, d float64) float64 {
	if d < r {
		return (R - r) / r
	}
	return (R + r) / r
}

// ApproximateRatio finds num/denom close to x with 1 <= denom <= maxDenom,
// by trying every denominator in turn. The search stops at the first
// denominator whose error is below 1e-6. The result is reduced to lowest
// terms and denom is always positive.
//
// For non-finite x, or x too large to be represented by exact integer
// numerators, ApproximateRatio returns (1, 1).
func ApproximateRatio(x float64, maxDenom int) (num, denom int) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x)*float64(maxDenom) >= maxExactInt {
		return 1, 1
	}

	bestNum, bestDenom := 1.0, 1
	bestErr := math.Abs(x - bestNum)
	for q := 1; q <= maxDenom; q++ {
		p := roundHalfUp(x * float64(q))
		err := math.Abs(x - p/float64(q))
		if err < bestErr {
			bestErr = err
			bestNum = p
			bestDenom = q
		}
		if err < closureTolerance {
			break
		}
	}

	num = int(bestNum)
	g := gcd(abs(num), bestDenom)
	return num / g, bestDenom / g
}

// roundHalfUp rounds x to the nearest integer, with halves rounded
// towards positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
