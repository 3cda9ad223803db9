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
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// collect rasterizes into a dense w×h coverage grid.
func collect(w, h int) ([]float32, func(y, xMin int, coverage []float32)) {
	grid := make([]float32, w*h)
	return grid, func(y, xMin int, coverage []float32) {
		copy(grid[y*w+xMin:], coverage)
	}
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1) has a diagonal edge y = x/10, so pixel
// X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 1})
	grid, emit := collect(10, 1)

	r.FillPolygon([]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 1}}, emit)

	for x := range 10 {
		expected := float64(2*x+1) / 20
		require.InDelta(t, expected, grid[x], 1e-6, "pixel %d", x)
	}
}

func TestStrokeButt(t *testing.T) {
	const w, h = 16, 10
	r := NewRasterizer(rect.Rect{URx: w, URy: h})
	r.Width = 2
	grid, emit := collect(w, h)

	r.StrokeLine(vec.Vec2{X: 2, Y: 5}, vec.Vec2{X: 8, Y: 5}, emit)

	for y := range h {
		for x := range w {
			want := float32(0)
			if (y == 4 || y == 5) && x >= 2 && x < 8 {
				want = 1
			}
			require.InDelta(t, want, grid[y*w+x], 1e-6, "pixel (%d,%d)", x, y)
		}
	}
}

func TestStrokeCapsArea(t *testing.T) {
	cases := []struct {
		cap  graphics.LineCapStyle
		area float64
	}{
		{graphics.LineCapButt, 6 * 2},
		{graphics.LineCapSquare, 8 * 2},
		{graphics.LineCapRound, 6*2 + math.Pi},
	}
	for _, tc := range cases {
		t.Run(tc.cap.String(), func(t *testing.T) {
			const w, h = 20, 20
			r := NewRasterizer(rect.Rect{URx: w, URy: h})
			r.Width = 2
			r.Cap = tc.cap
			r.Flatness = 0.01
			grid, emit := collect(w, h)

			// diagonal, so that the caps are not pixel aligned
			a := vec.Vec2{X: 6, Y: 6}
			dir := vec.Vec2{X: 3, Y: 4}.Mul(6.0 / 5)
			r.StrokeLine(a, a.Add(dir), emit)

			var sum float64
			for _, c := range grid {
				sum += float64(c)
			}
			require.InDelta(t, tc.area, sum, 0.1)
		})
	}
}

func TestStrokeZeroLength(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.Cap = graphics.LineCapRound
	called := false
	r.StrokeLine(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 5, Y: 5}, func(int, int, []float32) {
		called = true
	})
	require.False(t, called)
}

func TestStrokeClipped(t *testing.T) {
	const w, h = 10, 10
	r := NewRasterizer(rect.Rect{URx: w, URy: h})
	r.Width = 4
	grid, emit := collect(w, h)

	// mostly outside the clip rectangle on both sides
	r.StrokeLine(vec.Vec2{X: -20, Y: 5}, vec.Vec2{X: 30, Y: 5}, emit)

	for x := range w {
		require.InDelta(t, 1, grid[5*w+x], 1e-6, "pixel %d", x)
		require.InDelta(t, 0, grid[0*w+x], 1e-6, "pixel %d", x)
	}
}

func TestStrokeNonFinite(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	called := false
	r.StrokeLine(vec.Vec2{X: math.NaN(), Y: 5}, vec.Vec2{X: 5, Y: 5}, func(int, int, []float32) {
		called = true
	})
	require.False(t, called)
}
