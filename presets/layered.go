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

// The layered presets stack phase shifted copies of one curve, the way
// engraved banknote borders are built.
var layeredCases = []Preset{
	{
		Name:   "twin",
		Params: figure(200, 60, 80, layers(2, 30, 0)),
		Width:  800,
		Height: 800,
	},
	{
		Name: "rosette12",
		Params: figure(180, 70, 40,
			sweep(7, 0.01),
			layers(12, 3, 0),
			width(0.5),
			loops(2),
		),
		Width:  800,
		Height: 800,
	},
	{
		Name: "banknote",
		Params: figure(160, 35, 75,
			sweep(7, 0.005),
			layers(8, 4, 15),
			displace(6, 14, 0, 1),
			colors(0x1d3557, 0x457b9d, 0xa8dadc, 0xf1faee, 0xe63946),
			width(0.4),
		),
		Width:  1000,
		Height: 640,
	},
	{
		Name:   "rotated",
		Params: figure(150, 50, 90, layers(3, 0, 45), width(2)),
		Width:  800,
		Height: 800,
	},
}
