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


package presets

import "seehuhn.de/go/pdf/graphics"

var rouletteCases = []Preset{
	// The default figure: R=200, r=60, d=80 closes after 3 turns and is
	// drawn over 6.
	{
		Name:   "default",
		Params: figure(200, 60, 80),
		Width:  800,
		Height: 800,
	},

	// --- epicycloids (d = r) ---
	{
		Name:   "cardioid",
		Params: figure(100, 100, 100, sweep(1, 0.01)),
		Width:  800,
		Height: 800,
	},
	{
		Name:   "nephroid",
		Params: figure(120, 60, 60, sweep(1, 0.01)),
		Width:  800,
		Height: 800,
	},
	{
		Name:   "epicycloid_seven",
		Params: figure(210, 30, 30, sweep(1, 0.005), colors(0x1b3a5c, 0x3f88c5, 0xf2f4f8, 0x3f88c5)),
		Width:  800,
		Height: 800,
	},

	// --- hypotrochoids (d < r) ---
	{
		Name:   "hypotrochoid_rosette",
		Params: figure(180, 70, 40, sweep(7, 0.01)),
		Width:  800,
		Height: 800,
	},
	{
		Name: "hypotrochoid_fine",
		Params: figure(200, 90, 70,
			sweep(9, 0.005),
			colors(0x0b6e4f, 0x08a045, 0x6bbf59, 0xddb771),
			width(0.5),
		),
		Width:  800,
		Height: 800,
	},

	// --- epitrochoids (d > r) ---
	{
		Name:   "epitrochoid_loops",
		Params: figure(150, 50, 90, sweep(1, 0.01)),
		Width:  800,
		Height: 800,
	},
	{
		Name: "epitrochoid_dense",
		Params: figure(160, 35, 75,
			sweep(7, 0.005),
			colors(0x6a040f, 0x9d0208, 0xe85d04, 0xffba08),
			loops(3),
		),
		Width:  800,
		Height: 800,
	},
	{
		Name:   "epitrochoid_round_caps",
		Params: figure(120, 40, 100, sweep(1, 0.01), width(3), lineCap(graphics.LineCapRound)),
		Width:  800,
		Height: 800,
	},
}
