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

// The displacement presets perturb a base roulette radially. Exponents
// below 1 flatten the sine into a square-ish wave, exponents above 1
// sharpen its peaks.
var displacedCases = []Preset{
	{
		Name:   "wave6",
		Params: figure(200, 60, 80, displace(12, 6, 0, 1)),
		Width:  800,
		Height: 800,
	},
	{
		Name:   "wave6_shifted",
		Params: figure(200, 60, 80, displace(12, 6, 30, 1)),
		Width:  800,
		Height: 800,
	},
	{
		Name:   "square_wave",
		Params: figure(180, 70, 40, sweep(7, 0.01), displace(10, 12, 0, 0.2)),
		Width:  800,
		Height: 800,
	},
	{
		Name:   "spiked",
		Params: figure(150, 50, 90, displace(25, 18, 0, 4)),
		Width:  800,
		Height: 800,
	},
	{
		Name: "negative_amplitude",
		Params: figure(200, 90, 70,
			sweep(9, 0.005),
			displace(-15, 5, 0, 1),
			colors(0x222222, 0x888888, 0xdddddd, 0x888888),
		),
		Width:  800,
		Height: 800,
	},
}
