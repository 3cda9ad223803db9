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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Layer is one sampled copy of the curve, in output coordinates.
type Layer struct {
	Index      int
	Points     []vec.Vec2
	SegLengths []float64 // SegLengths[i] is the distance Points[i] → Points[i+1]
	Length     float64   // sum of SegLengths
}

// BuildLayers samples all layers of p around center.
//
// For layer k the curve is evaluated at t + k·offset for t = 0, step,
// 2·step, ... as long as t <= rotations·2π, and every point is passed
// through [Displace]. Layers with fewer than two points have no segments.
func BuildLayers(p Params, center vec.Vec2) []Layer {
	layers := make([]Layer, 0, max(p.Layers.Count, 0))
	for k := range max(p.Layers.Count, 0) {
		layers = append(layers, buildLayer(p, center, k))
	}
	return layers
}

func buildLayer(p Params, center vec.Vec2, k int) Layer {
	c := p.Curve
	total := p.Sweep.Rotations * 2 * math.Pi
	offset := p.Layers.OffsetDeg * math.Pi / 180 * float64(k)
	rotation := p.Layers.RotationDeg * math.Pi / 180

	layer := Layer{Index: k}
	if !(p.Sweep.Step > 0) {
		return layer
	}
	if n := total/p.Sweep.Step + 1; n > 0 && n < math.MaxInt32 {
		layer.Points = make([]vec.Vec2, 0, int(n)+1)
	}

	// The parameter is accumulated rather than computed as i·step, so
	// that the sample set matches an incremental sweep exactly.
	for t := 0.0; t <= total; t += p.Sweep.Step {
		pt := CurvePoint(c.R, c.SmallR, c.D, t+offset)
		layer.Points = append(layer.Points, Displace(pt, center, rotation, p.Displacement))
	}

	if len(layer.Points) > 1 {
		layer.SegLengths = make([]float64, len(layer.Points)-1)
		for i := range layer.SegLengths {
			l := layer.Points[i+1].Sub(layer.Points[i]).Length()
			layer.SegLengths[i] = l
			layer.Length += l
		}
	}
	return layer
}

// NumSegments returns the number of line segments of the layer.
func (l *Layer) NumSegments() int {
	return len(l.SegLengths)
}

// ColorPositions returns, for every segment, the gradient position of the
// segment's midpoint: the arc length fraction at the midpoint, multiplied
// by loops and reduced modulo 1.
//
// If the layer has zero length, all positions are 0.
func (l *Layer) ColorPositions(loops float64) []float64 {
	pos := make([]float64, len(l.SegLengths))
	if !(l.Length > 0) {
		return pos
	}
	cum := 0.0
	for i, segLen := range l.SegLengths {
		frac := (cum + segLen/2) / l.Length
		pos[i] = math.Mod(frac*loops, 1)
		cum += segLen
	}
	return pos
}

// SegmentColors returns the stroke colour for every segment of the layer.
func (l *Layer) SegmentColors(g GradientSpec) []Color {
	pos := l.ColorPositions(g.Loops)
	res := make([]Color, len(pos))
	for i, t := range pos {
		res[i] = GradientColor(t, g.Colors)
	}
	return res
}

// Path returns the layer as a polyline. If closed is set, the path ends
// with a close command.
func (l *Layer) Path(closed bool) *path.Data {
	p := &path.Data{}
	if len(l.Points) == 0 {
		return p
	}
	p.MoveTo(l.Points[0])
	for _, pt := range l.Points[1:] {
		p.LineTo(pt)
	}
	if closed {
		p.Close()
	}
	return p
}

// IsClosed reports whether the last point of the layer is within tol of
// the first one.
func (l *Layer) IsClosed(tol float64) bool {
	if len(l.Points) < 2 {
		return false
	}
	return l.Points[len(l.Points)-1].Sub(l.Points[0]).Length() <= tol
}
