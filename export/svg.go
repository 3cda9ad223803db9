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


// Package export writes guilloche figures as vector documents.
//
// SVG and JSON output describe every layer as one closed path; the SVG
// document strokes the paths with a single repeating gradient. The PDF
// surface instead receives the per-segment strokes of [guilloche.Render].
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/prabinpebam/guilloche"
)

// DefaultSize is the width and height of exported documents.
const DefaultSize = 800

// StopLayout selects how gradient stops are positioned in SVG output.
type StopLayout int

const (
	// StopsFixed places four stops at 0%, 33%, 67% and 100%.
	StopsFixed StopLayout = iota

	// StopsEven spaces all colours evenly over [0%, 100%].
	StopsEven
)

var fixedStops = []float64{0, 33, 67, 100}

func (l StopLayout) String() string {
	switch l {
	case StopsFixed:
		return "fixed"
	case StopsEven:
		return "even"
	default:
		return "StopLayout(" + strconv.Itoa(int(l)) + ")"
	}
}

// ParseStopLayout converts "fixed" or "even" to a StopLayout.
func ParseStopLayout(s string) (StopLayout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed":
		return StopsFixed, nil
	case "even":
		return StopsEven, nil
	default:
		return 0, fmt.Errorf("unknown stop layout %q", s)
	}
}

// ErrStopCount is returned by [WriteSVG] when the fixed stop layout is
// used with a number of colours other than four.
var ErrStopCount = errors.New("fixed stop layout needs exactly 4 colours")

// SVGOptions controls [WriteSVG].
type SVGOptions struct {
	// Size is the width and height of the document. Zero means
	// [DefaultSize].
	Size int

	Stops StopLayout
}

// WriteSVG writes the figure described by p as an SVG document, centred
// in a Size×Size square.
//
// Each layer becomes one closed path. All paths share a horizontal linear
// gradient in user space which repeats with period 1/loops.
func WriteSVG(w io.Writer, p guilloche.Params, opts SVGOptions) error {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}

	var offsets []float64
	switch opts.Stops {
	case StopsFixed:
		if len(p.Gradient.Colors) != len(fixedStops) {
			return fmt.Errorf("%w, got %d", ErrStopCount, len(p.Gradient.Colors))
		}
		offsets = fixedStops
	case StopsEven:
		n := len(p.Gradient.Colors)
		offsets = make([]float64, n)
		for i := range offsets {
			if n > 1 {
				offsets[i] = 100 * float64(i) / float64(n-1)
			}
		}
	default:
		return fmt.Errorf("unknown stop layout %d", opts.Stops)
	}

	out := &svgWriter{w: bufio.NewWriter(w)}
	out.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\">\n", size, size)
	out.printf("<defs>\n")
	out.printf("  <linearGradient id=\"lineGradient\" gradientUnits=\"userSpaceOnUse\""+
		" x1=\"0\" y1=\"0\" x2=\"1\" y2=\"0\" spreadMethod=\"repeat\" gradientTransform=\"scale(%s,1)\">\n",
		num(p.Gradient.Loops))
	for i, c := range p.Gradient.Colors {
		out.printf("    <stop offset=\"%s%%\" stop-color=\"%s\" />\n", num(offsets[i]), c.Hex())
	}
	out.printf("  </linearGradient>\n")
	out.printf("</defs>\n")

	for _, layer := range guilloche.BuildLayers(p, centerOf(size)) {
		out.printf("<path d=\"%s\" stroke=\"url(#lineGradient)\" fill=\"none\" stroke-width=\"%s\" />\n",
			pathData(layer.Path(true)), num(p.Stroke.Width))
	}
	out.printf("</svg>\n")

	if out.err != nil {
		return out.err
	}
	return out.w.Flush()
}

func centerOf(size int) vec.Vec2 {
	return vec.Vec2{X: float64(size) / 2, Y: float64(size) / 2}
}

// pathData formats a polyline in SVG path syntax.
func pathData(p *path.Data) string {
	var b strings.Builder
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			b.WriteString("M " + num(pts[0].X) + " " + num(pts[0].Y) + " ")
		case path.CmdLineTo:
			b.WriteString("L " + num(pts[0].X) + " " + num(pts[0].Y) + " ")
		case path.CmdClose:
			b.WriteString("Z")
		}
	}
	return strings.TrimSpace(b.String())
}

// num formats x with the shortest representation that round-trips.
func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// svgWriter remembers the first write error.
type svgWriter struct {
	w   *bufio.Writer
	err error
}

func (s *svgWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}
