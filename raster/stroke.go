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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeLine renders the straight segment a→b (user space) with the
// current Width and Cap. The emit callback receives coverage row by row;
// its slice argument is only valid during the call.
//
// Zero-length segments produce no output, whatever the cap style.
func (r *Rasterizer) StrokeLine(a, b vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	if !r.segmentOutline(a, b) {
		return
	}
	r.resetEdges()
	r.addPolygon(r.outline)
	r.fill(emit)
}

// segmentOutline stores the outline polygon of the stroked segment a→b
// in r.outline. The polygon runs along the +N side from a to b, around
// the end cap, back along the -N side and around the start cap.
func (r *Rasterizer) segmentOutline(a, b vec.Vec2) bool {
	r.outline = r.outline[:0]

	dir := b.Sub(a)
	length := dir.Length()
	if length < zeroLengthThreshold || math.IsNaN(length) || math.IsInf(length, 0) {
		return false
	}
	t := dir.Mul(1 / length)       // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal, 90° CCW
	d := r.Width / 2

	switch r.Cap {
	case graphics.LineCapSquare:
		a = a.Sub(t.Mul(d))
		b = b.Add(t.Mul(d))
		fallthrough
	case graphics.LineCapButt:
		r.outline = append(r.outline,
			a.Add(n.Mul(d)),
			b.Add(n.Mul(d)),
			b.Sub(n.Mul(d)),
			a.Sub(n.Mul(d)),
		)
	case graphics.LineCapRound:
		r.outline = append(r.outline, a.Add(n.Mul(d)))
		// the arcs sweep clockwise through +T at b and through -T at a
		r.addArc(b, d, n, -math.Pi)
		r.addArc(a, d, n.Mul(-1), -math.Pi)
	}
	return true
}

// addArc appends points on the circle of the given radius around center,
// starting in direction startDir and sweeping by sweep radians
// (positive = CCW). The start point itself is included.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	// A chord spanning angle θ deviates from the circle by at most
	// radius·(1 - cos(θ/2)); choose θ so that this equals the flatness.
	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
		}
	}

	dt := sweep / float64(n)
	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}
