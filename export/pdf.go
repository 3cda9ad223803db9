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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/prabinpebam/guilloche"
)

// PDF is a [guilloche.Surface] which writes a single page PDF file.
// Every segment becomes its own stroked path, so the colours match the
// raster output.
//
// The page is created by Clear and written by Close. Errors from the
// drawing calls are kept and reported by Close.
type PDF struct {
	// Background, if set, is painted over the whole page on Clear.
	Background *guilloche.Color

	// Cap is the line cap style used for all segments.
	Cap graphics.LineCapStyle

	fileName string
	page     *document.Page
	stroke   guilloche.Color
	hasColor bool
	err      error
}

var _ guilloche.Surface = (*PDF)(nil)

// NewPDF returns a surface which writes to the named file.
func NewPDF(fileName string) *PDF {
	return &PDF{
		fileName: fileName,
		Cap:      graphics.LineCapButt,
	}
}

// Clear implements [guilloche.Surface]. It starts a new page of
// width×height points, replacing any page which has not been closed yet.
func (p *PDF) Clear(width, height int) {
	if p.page != nil {
		p.setErr(p.page.Close())
		p.page = nil
	}

	paper := &pdf.Rectangle{URx: float64(width), URy: float64(height)}
	page, err := document.CreateSinglePage(p.fileName, paper, pdf.V1_7, nil)
	if err != nil {
		p.setErr(fmt.Errorf("create %s: %w", p.fileName, err))
		return
	}
	p.page = page
	p.hasColor = false

	if p.Background != nil {
		page.SetFillColor(deviceRGB(*p.Background))
		page.Rectangle(0, 0, float64(width), float64(height))
		page.Fill()
	}

	// PDF origin is bottom-left; figures use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})
	page.SetLineCap(p.Cap)
	page.SetLineJoin(graphics.LineJoinRound)
}

// SetStrokeWidth implements [guilloche.Surface].
func (p *PDF) SetStrokeWidth(w float64) {
	if p.page == nil {
		return
	}
	p.page.SetLineWidth(w)
}

// StrokeSegment implements [guilloche.Surface].
func (p *PDF) StrokeSegment(p0, p1 vec.Vec2, c guilloche.Color) {
	if p.page == nil {
		return
	}
	if !p.hasColor || c != p.stroke {
		p.page.SetStrokeColor(deviceRGB(c))
		p.stroke = c
		p.hasColor = true
	}
	p.page.MoveTo(p0.X, p0.Y)
	p.page.LineTo(p1.X, p1.Y)
	p.page.Stroke()
}

// Close writes the page to disk. It returns the first error encountered
// since the surface was created.
func (p *PDF) Close() error {
	if p.page != nil {
		p.setErr(p.page.Close())
		p.page = nil
	}
	return p.err
}

func (p *PDF) setErr(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

func deviceRGB(c guilloche.Color) color.Color {
	return color.DeviceRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}
