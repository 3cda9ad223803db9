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


// Command guilloche draws guilloche ornaments as PNG images, SVG, PDF or
// JSON documents and animation frame sequences.
package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/prabinpebam/guilloche"
	"github.com/prabinpebam/guilloche/config"
	"github.com/prabinpebam/guilloche/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.0.0-dev"

// app holds the state shared by all commands.
type app struct {
	configFile string
	conf       config.Config
	closeLog   func()
}

func main() {
	a := &app{}
	if err := a.execute(newRootCommand(a)); err != nil {
		os.Exit(1)
	}
}

// execute runs root and closes the log file afterwards, whether or not
// the command succeeded.
func (a *app) execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		log.Error().Err(err).Msg("guilloche failed")
	}
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
	return err
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "guilloche",
		Short:         "Draw guilloche ornaments",
		Long:          "Draw guilloche ornaments: layered roulette curves with radial displacement and a looping colour gradient.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "guilloche.toml", "path to config file")
	config.AddFlags(root.PersistentFlags())

	root.AddCommand(
		renderCommand(a),
		exportCommand(a),
		closureCommand(a),
		animateCommand(a),
		presetsCommand(),
		genConfigCommand(a),
		versionCommand(),
	)
	return root
}

// setup loads the configuration and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	dotEnvUsed := false
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("error loading .env file: %w", err)
		}
		dotEnvUsed = true
	}

	conf, meta, err := config.Load(cmd, a.configFile)
	if err != nil {
		return err
	}
	a.conf = conf

	closeLog, err := logging.Setup(conf.Log.Level, conf.Log.File)
	if err != nil {
		return err
	}
	a.closeLog = closeLog

	if dotEnvUsed {
		log.Debug().Msg("loaded environment from .env")
	}
	if meta.FileNotFound {
		if cmd.Flags().Changed("config") {
			log.Warn().Str("path", a.configFile).Msg("config file not found")
		} else {
			log.Debug().Str("path", a.configFile).Msg("no config file, using defaults")
		}
	} else if a.configFile != "" {
		log.Debug().Str("path", a.configFile).Msg("config file loaded")
	}
	for _, key := range meta.UnknownKeys {
		log.Warn().Str("key", key).Msg("unknown key in configuration")
	}

	return conf.Validate()
}

// params returns the drawing parameters, logging the closure diagnostics.
// Unless animated is set, the animation offsets of the configuration are
// not applied.
func (a *app) params(animated bool) (guilloche.Params, error) {
	var p guilloche.Params
	var err error
	if animated {
		p, err = a.conf.Params()
	} else {
		p, err = a.conf.BaseParams()
	}
	if err != nil {
		var invalid *guilloche.InvalidParametersError
		if errors.As(err, &invalid) {
			for _, problem := range invalid.Problems {
				log.Error().Str("problem", problem).Msg("invalid parameters")
			}
		}
		return p, err
	}
	logFigure(p)
	return p, nil
}

func logFigure(p guilloche.Params) {
	closure := p.ClosureEstimate()
	log.Info().
		Str("family", p.Curve.Family().String()).
		Int("closure", closure).
		Float64("rotations", p.Sweep.Rotations).
		Int("layers", p.Layers.Count).
		Msg("figure")
	log.Debug().
		Int("points_per_layer", int(math.Floor(p.Sweep.Rotations*2*math.Pi/p.Sweep.Step))+1).
		Msg("sampling")
	if p.Sweep.Rotations < float64(closure) {
		log.Warn().
			Int("closure", closure).
			Float64("rotations", p.Sweep.Rotations).
			Msg("sweep ends before the curve closes, the path stays open")
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("guilloche v%s\n", version)
		},
	}
}
