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
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an opaque sRGB colour with 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// RGBA implements the image/color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// Hex returns the colour in #rrggbb notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses "#rrggbb", "#rgb", "rrggbb" or an SVG colour keyword
// such as "red" or "goldenrod".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{R: c.R, G: c.G, B: c.B}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
		// ok
	default:
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ParseColors parses every entry of list with [ParseColor].
func ParseColors(list []string) ([]Color, error) {
	res := make([]Color, len(list))
	for i, s := range list {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}

// GradientColor maps t to a colour of the piecewise linear gradient
// through colors, which are placed at equal distances over [0, 1].
// At least two colours are required.
//
// Values of t above 1 are treated as 1. Callers are expected to pass
// t >= 0, normally the fractional part of a looped arc length position.
func GradientColor(t float64, colors []Color) Color {
	n := len(colors)
	if t >= 1 {
		t = 1
	}
	segment := 1 / float64(n-1)

	var idx int
	if t > 0 {
		idx = int(math.Floor(t / segment))
	}
	if idx >= n-1 {
		idx = n - 2
	}

	local := (t - float64(idx)*segment) / segment
	return lerpColor(colors[idx], colors[idx+1], local)
}

// lerpColor blends each channel linearly and rounds to the nearest
// integer value.
func lerpColor(c1, c2 Color, t float64) Color {
	return Color{
		R: lerpChannel(c1.R, c2.R, t),
		G: lerpChannel(c1.G, c2.G, t),
		B: lerpChannel(c1.B, c2.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := roundHalfUp(float64(a) + (float64(b)-float64(a))*t)
	return uint8(max(0, min(255, v)))
}
