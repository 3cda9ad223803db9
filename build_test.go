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
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestBuildLayersFirstPoint(t *testing.T) {
	p := DefaultParams()
	p.Displacement.Amplitude = 0

	layers := BuildLayers(p, vec.Vec2{})
	require.Len(t, layers, 1)
	if d := cmp.Diff(vec.Vec2{X: 180}, layers[0].Points[0], approx); d != "" {
		t.Errorf("first point mismatch (-want +got):\n%s", d)
	}

	// t runs from 0 to 37.69 < 12π in steps of 0.01
	require.InDelta(t, 3770, len(layers[0].Points), 1)
	require.Equal(t, len(layers[0].Points)-1, layers[0].NumSegments())
}

func TestBuildLayersCentre(t *testing.T) {
	p := DefaultParams()
	layers := BuildLayers(p, vec.Vec2{X: 400, Y: 300})
	if d := cmp.Diff(vec.Vec2{X: 580, Y: 300}, layers[0].Points[0], approx); d != "" {
		t.Errorf("first point mismatch (-want +got):\n%s", d)
	}
}

func TestBuildLayersDeterministic(t *testing.T) {
	p := DefaultParams()
	p.Layers = LayerParams{Count: 3, OffsetDeg: 10, RotationDeg: 20}
	p.Displacement.Amplitude = 12

	a := BuildLayers(p, vec.Vec2{X: 400, Y: 400})
	b := BuildLayers(p, vec.Vec2{X: 400, Y: 400})
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("BuildLayers is not deterministic:\n%s", d)
	}
}

func TestBuildLayersContinuous(t *testing.T) {
	p := DefaultParams()
	layer := BuildLayers(p, vec.Vec2{})[0]

	// the speed of the curve is at most (R+r) + d·(R+r)/r ≈ 607
	for i, l := range layer.SegLengths {
		require.Less(t, l, 607*p.Sweep.Step, "segment %d", i)
	}

	sum := 0.0
	for _, l := range layer.SegLengths {
		sum += l
	}
	require.InDelta(t, sum, layer.Length, 1e-6)
}

func TestBuildLayersOffsets(t *testing.T) {
	p := DefaultParams()
	p.Layers = LayerParams{Count: 2, OffsetDeg: 90}

	layers := BuildLayers(p, vec.Vec2{})
	require.Len(t, layers, 2)
	require.Equal(t, 1, layers[1].Index)

	want := CurvePoint(200, 60, 80, math.Pi/2)
	if d := cmp.Diff(want, layers[1].Points[0], approx); d != "" {
		t.Errorf("layer 1 start mismatch (-want +got):\n%s", d)
	}
}

func TestBuildLayersRotation(t *testing.T) {
	p := DefaultParams()
	p.Layers.RotationDeg = 90

	layers := BuildLayers(p, vec.Vec2{})
	if d := cmp.Diff(vec.Vec2{Y: 180}, layers[0].Points[0], approx); d != "" {
		t.Errorf("rotated start mismatch (-want +got):\n%s", d)
	}
}

// The sweep covers the closure estimate, so the curve comes back to its
// start; with a shorter sweep it stays open.
func TestBuildLayersClosure(t *testing.T) {
	p := DefaultParams()
	require.Equal(t, 3, p.ClosureEstimate())

	closed := BuildLayers(p, vec.Vec2{})[0]
	require.True(t, closed.IsClosed(1))

	p.Sweep.Rotations = 1
	open := BuildLayers(p, vec.Vec2{})[0]
	require.False(t, open.IsClosed(1))
}

func TestBuildLayersDegenerate(t *testing.T) {
	p := DefaultParams()
	p.Sweep.Step = 0
	layers := BuildLayers(p, vec.Vec2{})
	require.Len(t, layers, 1)
	require.Empty(t, layers[0].Points)
	require.Zero(t, layers[0].NumSegments())

	p = DefaultParams()
	p.Layers.Count = 0
	require.Empty(t, BuildLayers(p, vec.Vec2{}))

	// a step larger than the range gives a single point
	p = DefaultParams()
	p.Sweep = SweepParams{Rotations: 0.1, Step: 1}
	layer := BuildLayers(p, vec.Vec2{})[0]
	require.Len(t, layer.Points, 1)
	require.Zero(t, layer.NumSegments())
	require.Empty(t, layer.SegmentColors(p.Gradient))
}

func TestColorPositions(t *testing.T) {
	layer := Layer{SegLengths: []float64{1, 1, 2}, Length: 4}
	require.Equal(t, []float64{0.125, 0.375, 0.75}, layer.ColorPositions(1))
	require.Equal(t, []float64{0.25, 0.75, 0.5}, layer.ColorPositions(2))
	require.Equal(t, []float64{0, 0, 0}, layer.ColorPositions(0))

	empty := Layer{SegLengths: []float64{0, 0}}
	require.Equal(t, []float64{0, 0}, empty.ColorPositions(1))
}

func TestSegmentColors(t *testing.T) {
	layer := Layer{SegLengths: []float64{1, 1}, Length: 2}
	g := GradientSpec{Colors: []Color{black, white}, Loops: 1}
	require.Equal(t, []Color{{R: 64, G: 64, B: 64}, {R: 191, G: 191, B: 191}}, layer.SegmentColors(g))
}

func TestLayerPath(t *testing.T) {
	layer := Layer{Points: []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}}

	closed := layer.Path(true)
	require.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}, closed.Cmds)
	require.Equal(t, layer.Points, closed.Coords)

	open := layer.Path(false)
	require.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo}, open.Cmds)

	empty := Layer{}
	require.Empty(t, empty.Path(true).Cmds)
}

func TestBuildLayersNegativeExponent(t *testing.T) {
	p := DefaultParams()
	p.Displacement.Amplitude = 5
	p.Displacement.Exponent = -1
	require.NoError(t, p.Validate())

	layer := BuildLayers(p, vec.Vec2{X: 400, Y: 400})[0]
	for i, pt := range layer.Points {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			t.Fatalf("point %d is not finite: %v", i, pt)
		}
	}
	require.False(t, math.IsNaN(layer.Length))
	require.Positive(t, layer.Length)

	pos := layer.ColorPositions(p.Gradient.Loops)
	require.Less(t, pos[0], pos[len(pos)/2])
}
