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

// The animated presets are designed for the animate command: their
// displacement amplitude is small so that the oscillation offset
// dominates.
var animatedCases = []Preset{
	{
		Name:   "breathing",
		Params: figure(200, 60, 80, displace(0, 6, 0, 1)),
		Width:  800,
		Height: 800,
	},
	{
		Name: "shimmer",
		Params: figure(180, 70, 40,
			sweep(7, 0.01),
			layers(4, 5, 0),
			displace(0, 10, 0, 0.5),
			loops(2),
		),
		Width:  800,
		Height: 800,
	},
}
