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

// Package raster draws guilloche figures into RGBA images, with
// anti-aliased strokes.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"github.com/prabinpebam/guilloche"
)

// Canvas is a [guilloche.Surface] backed by an in-memory RGBA image.
// Segments are composited with source-over blending.
type Canvas struct {
	// Background fills the image on Clear. Nil leaves it transparent.
	Background color.Color

	// Scale is the number of device pixels per unit of user space.
	// Values <= 0 are treated as 1.
	Scale float64

	// Cap is the cap style used for every segment.
	Cap graphics.LineCapStyle

	img   *image.RGBA
	r     *Rasterizer
	color guilloche.Color
	emit  func(y, xMin int, coverage []float32)
}

var _ guilloche.Surface = (*Canvas)(nil)

// NewCanvas returns an empty canvas. Call Clear before drawing.
func NewCanvas() *Canvas {
	c := &Canvas{
		Cap: graphics.LineCapButt,
		img: image.NewRGBA(image.Rectangle{}),
		r:   NewRasterizer(rect.Rect{}),
	}
	c.emit = c.blendRow
	return c
}

// Clear implements [guilloche.Surface]. The image size is width×height
// multiplied by Scale and rounded up.
func (c *Canvas) Clear(width, height int) {
	s := c.scale()
	w := int(math.Ceil(float64(width) * s))
	h := int(math.Ceil(float64(height) * s))

	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	if c.Background != nil {
		draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
	}

	c.r.Clip = rect.Rect{URx: float64(w), URy: float64(h)}
	c.r.CTM = matrix.Matrix{s, 0, 0, s, 0, 0}
}

// SetStrokeWidth implements [guilloche.Surface].
func (c *Canvas) SetStrokeWidth(w float64) {
	c.r.Width = w
}

// StrokeSegment implements [guilloche.Surface].
func (c *Canvas) StrokeSegment(p0, p1 vec.Vec2, col guilloche.Color) {
	c.color = col
	c.r.Cap = c.Cap
	c.r.StrokeLine(p0, p1, c.emit)
}

// Image returns the current image. The image is replaced on every Clear.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the current image to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) scale() float64 {
	if c.Scale > 0 {
		return c.Scale
	}
	return 1
}

// blendRow composites the current colour over one row of pixels, using
// the coverage values as alpha.
func (c *Canvas) blendRow(y, xMin int, coverage []float32) {
	pix := c.img.Pix[c.img.PixOffset(xMin, y):]
	sr := float32(c.color.R)
	sg := float32(c.color.G)
	sb := float32(c.color.B)
	for i, a := range coverage {
		p := pix[4*i : 4*i+4 : 4*i+4]
		ia := 1 - a
		p[0] = uint8(sr*a + float32(p[0])*ia + 0.5)
		p[1] = uint8(sg*a + float32(p[1])*ia + 0.5)
		p[2] = uint8(sb*a + float32(p[2])*ia + 0.5)
		p[3] = uint8(255*a + float32(p[3])*ia + 0.5)
	}
}
