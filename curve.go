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

	"seehuhn.de/go/geom/vec"
)

// Family identifies one of the roulette curve families.
type Family int

const (
	Epicycloid Family = iota
	Hypotrochoid
	Epitrochoid
)

func (f Family) String() string {
	switch f {
	case Epicycloid:
		return "epicycloid"
	case Hypotrochoid:
		return "hypotrochoid"
	case Epitrochoid:
		return "epitrochoid"
	default:
		return "unknown"
	}
}

// familyEpsilon is the tolerance for treating the pen offset as lying on
// the rolling circle.
const familyEpsilon = 1e-4

// FamilyOf returns the curve family selected by the rolling radius r and
// the pen offset d.
func FamilyOf(r, d float64) Family {
	switch {
	case math.Abs(d-r) < familyEpsilon:
		return Epicycloid
	case d < r:
		return Hypotrochoid
	default:
		return Epitrochoid
	}
}

// CurvePoint evaluates the roulette for the fixed radius R, the rolling
// radius r and the pen offset d at parameter t.
// The result is relative to the centre of the fixed circle.
//
// No validation takes place: r == 0 yields non-finite coordinates.
func CurvePoint(R, r, d, t float64) vec.Vec2 {
	switch FamilyOf(r, d) {
	case Epicycloid:
		k := (R + r) / r
		return vec.Vec2{
			X: (R+r)*math.Cos(t) - r*math.Cos(k*t),
			Y: (R+r)*math.Sin(t) - r*math.Sin(k*t),
		}
	case Hypotrochoid:
		k := (R - r) / r
		return vec.Vec2{
			X: (R-r)*math.Cos(t) + d*math.Cos(k*t),
			Y: (R-r)*math.Sin(t) - d*math.Sin(k*t),
		}
	default:
		k := (R + r) / r
		return vec.Vec2{
			X: (R+r)*math.Cos(t) - d*math.Cos(k*t),
			Y: (R+r)*math.Sin(t) - d*math.Sin(k*t),
		}
	}
}
