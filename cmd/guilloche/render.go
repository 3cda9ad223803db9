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
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/prabinpebam/guilloche"
	"github.com/prabinpebam/guilloche/raster"
)

func renderCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the figure to a PNG image",
		Long: "Render the figure to a PNG image. Every segment is stroked in the\n" +
			"gradient colour of its midpoint.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.params(true)
			if err != nil {
				return err
			}
			canvas, err := a.newCanvas(p)
			if err != nil {
				return err
			}
			guilloche.Render(canvas, p, a.conf.Canvas.Width, a.conf.Canvas.Height)
			if err := writeFile(output, canvas.EncodePNG); err != nil {
				return err
			}
			log.Info().Str("path", output).Msg("image written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "guilloche.png", "output file, - for stdout")
	return cmd
}

// newCanvas returns a raster canvas set up from the configuration.
func (a *app) newCanvas(p guilloche.Params) (*raster.Canvas, error) {
	bg, err := a.conf.Background()
	if err != nil {
		return nil, err
	}
	c := raster.NewCanvas()
	if bg != nil {
		c.Background = *bg
	}
	c.Scale = a.conf.Canvas.Scale
	c.Cap = p.Stroke.Cap
	return c, nil
}

// writeFile calls write with the named file, or with stdout for "-".
func writeFile(name string, write func(w io.Writer) error) error {
	if name == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	return f.Close()
}
