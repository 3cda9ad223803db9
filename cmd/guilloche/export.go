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
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/prabinpebam/guilloche"
	"github.com/prabinpebam/guilloche/export"
)

func exportCommand(a *app) *cobra.Command {
	var output, format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the figure as SVG, PDF or JSON",
		Long: "Export the figure as a vector document.\n\n" +
			"SVG output has one closed path per layer, stroked with a repeating\n" +
			"gradient. PDF output has per-segment coloured strokes like the PNG\n" +
			"renderer. JSON output lists the sampled paths and segment colours.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(output), ".")
			}
			p, err := a.params(true)
			if err != nil {
				return err
			}

			w, h := a.conf.Canvas.Width, a.conf.Canvas.Height
			switch strings.ToLower(format) {
			case "svg":
				opts, err := a.conf.SVGOptions()
				if err != nil {
					return err
				}
				err = writeFile(output, func(out io.Writer) error {
					return export.WriteSVG(out, p, opts)
				})
				if err != nil {
					return err
				}
			case "pdf":
				if output == "-" {
					return fmt.Errorf("PDF output needs a file name")
				}
				surface := export.NewPDF(output)
				surface.Cap = p.Stroke.Cap
				surface.Background, err = a.conf.Background()
				if err != nil {
					return err
				}
				guilloche.Render(surface, p, w, h)
				if err := surface.Close(); err != nil {
					return err
				}
			case "json":
				err = writeFile(output, func(out io.Writer) error {
					return export.WriteJSON(out, p, w, h)
				})
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown export format %q, use svg, pdf or json", format)
			}
			log.Info().Str("path", output).Str("format", format).Msg("document written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "guilloche.svg", "output file, - for stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "", "svg, pdf or json; taken from the file name if empty")
	return cmd
}
