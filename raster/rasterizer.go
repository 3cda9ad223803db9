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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer turns polygons and stroked line segments into per-pixel
// coverage values between 0 (outside) and 1 (inside).
// Internal buffers are reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in integer device coordinates.
	Clip rect.Rect

	// Flatness is the maximal deviation of round caps from the true
	// circle, in device pixels.
	Flatness float64

	// Width is the stroke width in user space.
	Width float64

	// Cap is the style of both ends of a stroked segment.
	Cap graphics.LineCapStyle

	cover       []float32 // cover change per pixel, reused as output
	area        []float32 // area within pixel
	rowHasEdges []bool
	edges       []edge
	outline     []vec.Vec2 // outline of the current stroke

	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasterizer returns a Rasterizer with the given clip rectangle, an
// identity transformation and a butt capped stroke of width 1.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
		Cap:      graphics.LineCapButt,
	}
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// FillPolygon fills the closed polygon with vertices pts (user space)
// using the nonzero winding rule. The emit callback receives coverage row
// by row; its slice argument is only valid during the call.
func (r *Rasterizer) FillPolygon(pts []vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()
	r.addPolygon(pts)
	r.fill(emit)
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addPolygon adds the edges of the closed polygon pts.
func (r *Rasterizer) addPolygon(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	for i := 1; i < len(pts); i++ {
		r.addEdge(pts[i-1], pts[i])
	}
	r.addEdge(pts[len(pts)-1], pts[0])
}

// addEdge transforms the user space edge p0→p1 to device space and adds
// it to the edge list.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	if math.IsNaN(x0+y0+x1+y1) || math.IsInf(x0+y0+x1+y1, 0) {
		return
	}

	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(x0, x1), max(x0, x1)
		r.bboxYMin, r.bboxYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
	} else {
		r.bboxXMin = min(r.bboxXMin, x0, x1)
		r.bboxXMax = max(r.bboxXMax, x0, x1)
		r.bboxYMin = min(r.bboxYMin, y0, y1)
		r.bboxYMax = max(r.bboxYMax, y0, y1)
	}
}

// bounds returns the integer bounding box of the edge list, clamped to
// the clip rectangle.
func (r *Rasterizer) bounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage model: for every pixel two values are accumulated.
//
//	cover: signed vertical extent of the edges crossing the pixel
//	area:  cover weighted by the distance of the crossing from the
//	       pixel's right border
//
// Integrating a scanline from left to right, the coverage of pixel i is
// the running sum of cover[0..i-1] plus area[i].

// fill rasterizes the current edge list into 2D coverage buffers and
// emits the non-zero part of every touched row.
func (r *Rasterizer) fill(emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.bounds()
	if !ok {
		return
	}
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		top := int(math.Floor(min(e.y0, e.y1)))
		bot := int(math.Floor(max(e.y0, e.y1))) + 1
		for y := max(top, yMin); y < min(bot, yMax); y++ {
			row := y - yMin
			off := row * width
			accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateNonZero(coverage, r.area[off:off+width])
		if trimmed, lo := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+lo, trimmed)
		}
	}
}

// accumulateEdge adds the contribution of e within scanline [y, y+1) to
// the cover and area buffers, which are indexed by x - xMin.
// Edges left of the buffer fold into column 0.
func accumulateEdge(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	dir := float32(1)
	if e.y1 < e.y0 {
		dir = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	left, right := min(xa, xb), max(xa, xb)
	pixLeft := int(math.Floor(left))
	pixRight := int(math.Floor(right))

	if pixLeft >= xMax {
		return
	}
	if pixRight < xMin {
		v := dir * float32(yBot-yTop)
		cover[0] += v
		area[0] += v
		return
	}

	if pixLeft == pixRight {
		addCrossing(e, yTop, yBot, dir, pixLeft, cover, area, xMin, xMax)
		return
	}

	// split the edge at every pixel column it passes
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		addCrossing(e, lo, hi, dir, pix, cover, area, xMin, xMax)
	}
}

// addCrossing records the part of e between lo and hi, which lies within
// pixel column pix.
func addCrossing(e *edge, lo, hi float64, dir float32, pix int, cover, area []float32, xMin, xMax int) {
	v := dir * float32(hi-lo)
	switch {
	case pix < xMin:
		cover[0] += v
		area[0] += v
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		frac := xMid - float64(pix)
		idx := pix - xMin
		cover[idx] += v
		area[idx] += v * float32(1-frac)
	}
}

// integrateNonZero turns accumulated cover/area values into coverage
// using the nonzero winding rule, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, and the offset of that part.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage) - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

const (
	// defaultFlatness is the default tolerance for approximating round
	// caps, in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimal length of a stroked segment.
	zeroLengthThreshold = 1e-10
)
