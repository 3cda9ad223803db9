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


package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prabinpebam/guilloche"
)

func closureCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "closure",
		Short: "Print after how many rotations the curve closes",
		Long: "Print the closure estimate of the configured curve: the denominator\n" +
			"of the best fraction, with denominator up to 1000, approximating the\n" +
			"frequency ratio of the curve. This is an estimate, not an exact period.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.params(false)
			if err != nil {
				return err
			}
			c := p.Curve
			ratio := guilloche.ClosureRatio(c.R, c.SmallR, c.D)
			num, denom := guilloche.ApproximateRatio(ratio, guilloche.MaxClosureDenominator)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "family:    %s\n", c.Family())
			fmt.Fprintf(out, "ratio:     %g ≈ %d/%d\n", ratio, num, denom)
			fmt.Fprintf(out, "closure:   %d rotations\n", denom)
			fmt.Fprintf(out, "sweep:     %g rotations", p.Sweep.Rotations)
			if p.Sweep.Rotations < float64(denom) {
				fmt.Fprint(out, " (open)")
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
