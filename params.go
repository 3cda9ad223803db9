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
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"seehuhn.de/go/pdf/graphics"
)

// CurveParams selects the base roulette.
type CurveParams struct {
	R      float64 // radius of the fixed circle
	SmallR float64 // radius of the rolling circle, must be non-zero
	D      float64 // distance of the pen from the rolling circle's centre
}

// Family returns the curve family selected by the parameters.
func (c CurveParams) Family() Family {
	return FamilyOf(c.SmallR, c.D)
}

// LayerParams describes the stack of phase shifted copies of the curve.
type LayerParams struct {
	Count       int     // number of layers, at least 1
	OffsetDeg   float64 // parameter shift between consecutive layers
	RotationDeg float64 // rotation of the whole figure about the centre
}

// SweepParams describes the sampled parameter range [0, Rotations·2π].
type SweepParams struct {
	Rotations float64 // length of the range in multiples of 2π
	Step      float64 // sampling increment
}

// DisplacementParams describes the radial perturbation as a function of
// the polar angle.
type DisplacementParams struct {
	Amplitude float64
	Frequency float64
	PhaseDeg  float64
	Exponent  float64
}

// GradientSpec is the looping stroke gradient.
type GradientSpec struct {
	Colors []Color // equally spaced stops, at least two
	Loops  float64 // repetitions along one layer's arc length
}

// StrokeParams controls the line drawing.
type StrokeParams struct {
	Width float64
	Cap   graphics.LineCapStyle
}

// Params is a complete, immutable snapshot of everything that determines
// a figure.
type Params struct {
	Curve        CurveParams
	Layers       LayerParams
	Sweep        SweepParams
	Displacement DisplacementParams
	Gradient     GradientSpec
	Stroke       StrokeParams
}

// DefaultParams returns the parameters the command line tool starts from.
func DefaultParams() Params {
	return Params{
		Curve:  CurveParams{R: 200, SmallR: 60, D: 80},
		Layers: LayerParams{Count: 1},
		Sweep:  SweepParams{Rotations: 6, Step: 0.01},
		Displacement: DisplacementParams{
			Frequency: 6,
			Exponent:  1,
		},
		Gradient: GradientSpec{
			Colors: []Color{
				{R: 0xff, G: 0x00, B: 0x00},
				{R: 0x00, G: 0x80, B: 0x00},
				{R: 0x00, G: 0x00, B: 0xff},
				{R: 0xff, G: 0xff, B: 0x00},
			},
			Loops: 1,
		},
		Stroke: StrokeParams{Width: 1, Cap: graphics.LineCapButt},
	}
}

// Clone returns a copy of p which shares no memory with p.
func (p Params) Clone() Params {
	p.Gradient.Colors = slices.Clone(p.Gradient.Colors)
	return p
}

// ClosureEstimate returns [EstimateClosure] for the curve parameters.
func (p Params) ClosureEstimate() int {
	return EstimateClosure(p.Curve.R, p.Curve.SmallR, p.Curve.D)
}

// ErrInvalidParameters is matched by every error returned from
// [Params.Validate].
var ErrInvalidParameters = errors.New("invalid parameters")

// InvalidParametersError lists all problems found in a parameter set.
type InvalidParametersError struct {
	Problems []string
}

func (e *InvalidParametersError) Error() string {
	return "invalid parameters: " + strings.Join(e.Problems, "; ")
}

func (e *InvalidParametersError) Is(target error) bool {
	return target == ErrInvalidParameters
}

// Validate checks p for values which would make the drawing functions
// produce non-finite or empty output. The drawing functions do not call
// Validate themselves.
func (p Params) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}
	finite := func(name string, x float64) {
		check(!math.IsNaN(x) && !math.IsInf(x, 0), "%s must be finite, got %g", name, x)
	}

	finite("R", p.Curve.R)
	finite("r", p.Curve.SmallR)
	finite("d", p.Curve.D)
	finite("layer offset", p.Layers.OffsetDeg)
	finite("rotation", p.Layers.RotationDeg)
	finite("sweep rotations", p.Sweep.Rotations)
	finite("sweep step", p.Sweep.Step)
	finite("displacement amplitude", p.Displacement.Amplitude)
	finite("displacement frequency", p.Displacement.Frequency)
	finite("displacement phase", p.Displacement.PhaseDeg)
	finite("displacement exponent", p.Displacement.Exponent)
	finite("gradient loops", p.Gradient.Loops)
	finite("stroke width", p.Stroke.Width)

	check(p.Curve.SmallR != 0, "r must be non-zero")
	check(p.Layers.Count >= 1, "layer count must be at least 1, got %d", p.Layers.Count)
	check(p.Sweep.Rotations > 0, "sweep rotations must be positive, got %g", p.Sweep.Rotations)
	check(p.Sweep.Step > 0, "sweep step must be positive, got %g", p.Sweep.Step)
	check(p.Sweep.Step <= p.Sweep.Rotations*2*math.Pi,
		"sweep step %g exceeds the sweep range", p.Sweep.Step)
	check(len(p.Gradient.Colors) >= 2, "gradient needs at least 2 colours, got %d", len(p.Gradient.Colors))
	check(p.Gradient.Loops >= 0, "gradient loops must not be negative, got %g", p.Gradient.Loops)
	check(p.Stroke.Width > 0, "stroke width must be positive, got %g", p.Stroke.Width)

	if len(problems) > 0 {
		return &InvalidParametersError{Problems: problems}
	}
	return nil
}
