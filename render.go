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

// Package guilloche generates guilloche ornaments: roulette curves
// (epicycloids, hypotrochoids and epitrochoids), modulated by a polar
// displacement and stroked with a gradient that loops along the arc length.
package guilloche

import "seehuhn.de/go/geom/vec"

// Surface receives the drawing commands of [Render].
type Surface interface {
	// Clear resets the surface to an empty width×height area.
	Clear(width, height int)

	// SetStrokeWidth sets the line width for all following segments.
	SetStrokeWidth(w float64)

	// StrokeSegment draws a straight line from p0 to p1.
	StrokeSegment(p0, p1 vec.Vec2, c Color)
}

// Render draws the figure described by p onto s, centred in a
// width×height area. Each segment is stroked separately in the gradient
// colour of its midpoint.
//
// The surface is cleared first and the stroke width is set once.
func Render(s Surface, p Params, width, height int) {
	s.Clear(width, height)
	s.SetStrokeWidth(p.Stroke.Width)

	center := vec.Vec2{X: float64(width) / 2, Y: float64(height) / 2}
	for _, layer := range BuildLayers(p, center) {
		colors := layer.SegmentColors(p.Gradient)
		for i, c := range colors {
			s.StrokeSegment(layer.Points[i], layer.Points[i+1], c)
		}
	}
}
