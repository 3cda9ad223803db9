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


package export

import (
	"encoding/json"
	"io"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/prabinpebam/guilloche"
)

// Figure is the JSON form of a figure: the sampled layers as paths,
// together with the colour of every segment.
type Figure struct {
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Family  string  `json:"family"`
	Closure int     `json:"closure"`
	Layers  []Layer `json:"layers"`
}

// Layer is one layer of a [Figure].
type Layer struct {
	Index  int       `json:"index"`
	Length float64   `json:"length"`
	Path   []Segment `json:"path"`
	Colors []string  `json:"colors"`
}

// Segment is one path command with its points.
type Segment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

// NewFigure samples p into a width×height figure.
func NewFigure(p guilloche.Params, width, height int) *Figure {
	fig := &Figure{
		Width:   width,
		Height:  height,
		Family:  p.Curve.Family().String(),
		Closure: p.ClosureEstimate(),
	}
	center := vec.Vec2{X: float64(width) / 2, Y: float64(height) / 2}
	for _, layer := range guilloche.BuildLayers(p, center) {
		jl := Layer{
			Index:  layer.Index,
			Length: layer.Length,
			Path:   pathToJSON(layer.Path(true)),
			Colors: []string{},
		}
		for _, c := range layer.SegmentColors(p.Gradient) {
			jl.Colors = append(jl.Colors, c.Hex())
		}
		fig.Layers = append(fig.Layers, jl)
	}
	return fig
}

// WriteJSON writes the figure for p, sampled in a width×height area, as
// indented JSON.
func WriteJSON(w io.Writer, p guilloche.Params, width, height int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewFigure(p, width, height))
}

func pathToJSON(p *path.Data) []Segment {
	var segs []Segment
	for cmd, pts := range p.Iter() {
		seg := Segment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
