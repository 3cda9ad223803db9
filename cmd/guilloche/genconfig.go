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
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/prabinpebam/guilloche/config"
)

func genConfigCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Write the current configuration to a file",
		Long: "Write the current configuration, including flag and environment\n" +
			"overrides, to a new TOML, YAML or JSON file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Generate(output, a.conf); err != nil {
				return err
			}

			// check that the file loads back
			conf, _, err := config.Load(nil, output)
			if err == nil {
				err = conf.Validate()
			}
			if err == nil {
				_, err = conf.BaseParams()
			}
			if err != nil {
				_ = os.Remove(output)
				return fmt.Errorf("generated config is invalid: %w", err)
			}

			log.Info().Str("path", output).Msg("config written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "guilloche.toml", "output file")
	return cmd
}
