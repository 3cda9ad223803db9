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

// Displace moves a curve-local point into the output coordinate space.
//
// The point is translated by center, rotated about center by rotation
// (in radians) and then pushed along its polar ray by the modulation
//
//	s = sin(frequency·angle + phase)
//	mod = sign(s) · |s|^exponent · amplitude
//
// with mod = 0 where s = 0. The polar angle itself is left unchanged.
func Displace(p, center vec.Vec2, rotation float64, d DisplacementParams) vec.Vec2 {
	// After translation the offset from center is p itself.
	dx, dy := p.X, p.Y

	sin, cos := math.Sincos(rotation)
	rx := dx*cos - dy*sin
	ry := dx*sin + dy*cos

	angle := math.Atan2(ry, rx)
	radius := math.Hypot(rx, ry)

	radius += d.modulation(angle)

	return vec.Vec2{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// modulation returns the radial offset for the polar angle phi.
// The offset is zero at the nodes of the wave, for every exponent.
func (d DisplacementParams) modulation(phi float64) float64 {
	s := math.Sin(d.Frequency*phi + d.PhaseDeg*math.Pi/180)
	if s == 0 {
		return 0
	}
	return sign(s) * math.Pow(math.Abs(s), d.Exponent) * d.Amplitude
}

// sign returns -1, 0 or +1 following the sign of x.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
