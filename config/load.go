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


package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/prabinpebam/guilloche/presets"
)

// EnvPrefix is the prefix of environment variables which override
// configuration keys, e.g. GUILLOCHE_CURVE_OUTER_RADIUS.
const EnvPrefix = "GUILLOCHE"

// Meta describes how a configuration was loaded.
type Meta struct {
	FileNotFound bool
	UnknownKeys  []string
}

// flagKeys lists the configuration keys which can be set by flags.
var flagKeys = []string{
	"preset",
	"curve.outer_radius", "curve.rolling_radius", "curve.pen_offset",
	"layers.count", "layers.offset_deg", "layers.rotation_deg",
	"sweep.rotations", "sweep.step",
	"displacement.amplitude", "displacement.frequency", "displacement.phase_deg", "displacement.exponent",
	"gradient.colors", "gradient.loops", "gradient.stop_layout",
	"stroke.width", "stroke.cap",
	"canvas.width", "canvas.height", "canvas.background", "canvas.scale",
	"animation.enabled", "animation.elapsed", "animation.frames", "animation.fps", "animation.workers",
	"log.level", "log.file",
}

// AddFlags registers one flag for every key in flagKeys, with the values
// of [Default] as flag defaults.
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("preset", "", "use a named preset for the figure, see 'guilloche presets'")

	fs.Float64P("curve.outer_radius", "R", d.Curve.OuterRadius, "radius of the fixed circle")
	fs.Float64P("curve.rolling_radius", "r", d.Curve.RollingRadius, "radius of the rolling circle")
	fs.Float64P("curve.pen_offset", "d", d.Curve.PenOffset, "distance of the pen from the rolling circle's centre")

	fs.IntP("layers.count", "n", d.Layers.Count, "number of layered curves")
	fs.Float64("layers.offset_deg", d.Layers.OffsetDeg, "parameter shift between layers, in degrees")
	fs.Float64("layers.rotation_deg", d.Layers.RotationDeg, "rotation of the whole figure, in degrees")

	fs.Float64("sweep.rotations", d.Sweep.Rotations, "length of the parameter range, in multiples of 2π")
	fs.Float64("sweep.step", d.Sweep.Step, "parameter increment between points")

	fs.Float64("displacement.amplitude", d.Displacement.Amplitude, "radial displacement amplitude")
	fs.Float64("displacement.frequency", d.Displacement.Frequency, "radial displacement frequency")
	fs.Float64("displacement.phase_deg", d.Displacement.PhaseDeg, "radial displacement phase, in degrees")
	fs.Float64("displacement.exponent", d.Displacement.Exponent, "shaping exponent of the displacement wave")

	fs.StringSlice("gradient.colors", d.Gradient.Colors, "gradient colours, comma separated")
	fs.Float64("gradient.loops", d.Gradient.Loops, "gradient repetitions along each curve")
	fs.String("gradient.stop_layout", d.Gradient.StopLayout, "SVG gradient stops: fixed or even")

	fs.Float64P("stroke.width", "w", d.Stroke.Width, "line width")
	fs.String("stroke.cap", d.Stroke.Cap, "line cap: butt, round or square")

	fs.Int("canvas.width", d.Canvas.Width, "canvas width")
	fs.Int("canvas.height", d.Canvas.Height, "canvas height")
	fs.String("canvas.background", d.Canvas.Background, "background colour, or none")
	fs.Float64("canvas.scale", d.Canvas.Scale, "raster pixels per canvas unit")

	fs.Bool("animation.enabled", d.Animation.Enabled, "apply the animation offsets at animation.elapsed")
	fs.Duration("animation.elapsed", d.Animation.Elapsed, "time within the animation")
	fs.Int("animation.frames", d.Animation.Frames, "number of frames written by animate")
	fs.Float64("animation.fps", d.Animation.FPS, "frames per second for animate")
	fs.Int("animation.workers", d.Animation.Workers, "frames rendered concurrently by animate")

	fs.String("log.level", d.Log.Level, "log level: trace, debug, info, warn, error or none")
	fs.String("log.file", d.Log.File, "optional log file, logs go to stderr otherwise")
}

// Load reads the configuration. Values are taken, in decreasing order of
// priority, from the flags of cmd, GUILLOCHE_* environment variables,
// configFile and [Default]. Both cmd and configFile are optional.
//
// A missing config file is not an error; it is reported in Meta.
func Load(cmd *cobra.Command, configFile string) (Config, Meta, error) {
	v := viper.NewWithOptions(viper.WithDecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for _, key := range flagKeys {
			_ = v.BindPFlag(key, cmd.Flags().Lookup(key))
		}
	}

	meta := Meta{}

	if configFile != "" {
		v.SetConfigFile(configFile)
		err := v.ReadInConfig()
		if err != nil {
			var notFound *os.PathError
			if errors.As(err, &notFound) {
				meta.FileNotFound = true
			} else {
				return Config{}, Meta{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return Config{}, Meta{}, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if conf.Preset != "" {
		applyPresetCanvas(v, cmd, conf)
	}

	meta.UnknownKeys = findUnknownKeys(v.AllSettings(), reflect.TypeOf(*conf), "")
	slices.Sort(meta.UnknownKeys)

	return *conf, meta, nil
}

// applyPresetCanvas takes the canvas size from the selected preset, for
// each dimension which was not set explicitly. Unknown presets are left
// to [Config.BaseParams] to report.
func applyPresetCanvas(v *viper.Viper, cmd *cobra.Command, conf *Config) {
	preset, err := presets.Lookup(conf.Preset)
	if err != nil {
		return
	}
	if !isSet(v, cmd, "canvas.width") {
		conf.Canvas.Width = preset.Width
	}
	if !isSet(v, cmd, "canvas.height") {
		conf.Canvas.Height = preset.Height
	}
}

// isSet reports whether key was given by a flag, an environment variable
// or the config file.
func isSet(v *viper.Viper, cmd *cobra.Command, key string) bool {
	if cmd != nil {
		if f := cmd.Flags().Lookup(key); f != nil && f.Changed {
			return true
		}
	}
	env := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if _, ok := os.LookupEnv(env); ok {
		return true
	}
	return v.InConfig(key)
}

// setDefaults registers every leaf of conf as a viper default, so that
// environment variables are seen for all keys.
func setDefaults(v *viper.Viper, conf Config) {
	settings := map[string]any{}
	if err := mapstructure.Decode(conf, &settings); err != nil {
		panic(err)
	}
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, val := range m {
			key := prefix + k
			if sub, ok := asMap(val); ok {
				walk(key+".", sub)
				continue
			}
			v.SetDefault(key, val)
		}
	}
	walk("", settings)
}

// asMap converts nested structs, as left by mapstructure.Decode, into
// maps.
func asMap(val any) (map[string]any, bool) {
	switch val := val.(type) {
	case map[string]any:
		return val, true
	case nil:
		return nil, false
	}
	if reflect.TypeOf(val).Kind() != reflect.Struct {
		return nil, false
	}
	m := map[string]any{}
	if err := mapstructure.Decode(val, &m); err != nil {
		return nil, false
	}
	return m, true
}

// findUnknownKeys returns the keys of settings, recursively and in dotted
// form, which have no corresponding mapstructure field in typ.
func findUnknownKeys(settings map[string]any, typ reflect.Type, prefix string) []string {
	fields := map[string]reflect.StructField{}
	for i := range typ.NumField() {
		field := typ.Field(i)
		if tag := field.Tag.Get("mapstructure"); tag != "" {
			fields[tag] = field
		}
	}

	var unknown []string
	for key, val := range settings {
		field, ok := fields[key]
		if !ok {
			unknown = append(unknown, prefix+key)
			continue
		}
		sub, isMap := val.(map[string]any)
		if isMap && field.Type.Kind() == reflect.Struct {
			unknown = append(unknown, findUnknownKeys(sub, field.Type, prefix+key+".")...)
		}
	}
	return unknown
}
