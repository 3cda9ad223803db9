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


// Package logging configures the global zerolog logger of the command
// line tool.
package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// ParseLevel maps a level name (case-insensitive) to a zerolog level.
// Unknown names give the info level and ok == false.
func ParseLevel(level string) (l zerolog.Level, ok bool) {
	l, ok = logLevelMatches[strings.ToUpper(strings.TrimSpace(level))]
	if !ok {
		return zerolog.InfoLevel, false
	}
	return l, true
}

// Setup sets the global log level and output. Log lines go to file if
// it is non-empty, and to stderr otherwise; a terminal gets a coloured
// human readable format.
//
// The returned function closes the log file, if any.
func Setup(level, file string) (func(), error) {
	l, ok := ParseLevel(level)
	zerolog.SetGlobalLevel(l)

	closeFn := func() {}
	if file != "" {
		f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return closeFn, fmt.Errorf("error opening log file: %w", err)
		}
		log.Logger = log.Output(f)
		closeFn = func() { _ = f.Close() }
	} else if isTerminal(os.Stderr) {
		log.Logger = log.Output(consoleWriter(os.Stderr))
	} else {
		log.Logger = log.Output(os.Stderr)
	}

	if !ok {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
	}
	return closeFn, nil
}

// Enabled reports whether messages of the given level are logged.
func Enabled(level zerolog.Level) bool {
	return level >= zerolog.GlobalLevel()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) && runtime.GOOS != "windows"
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:         out,
		TimeFormat:  "15:04:05",
		FormatLevel: formatLevel,
	}
}

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorBlue    = 34
	colorMagenta = 35
	colorBold    = 1
)

func colorize(s any, c int) string {
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

// formatLevel prints three letter, coloured level names.
func formatLevel(i any) string {
	ll, _ := i.(string)
	switch ll {
	case "trace":
		return colorize("TRC", colorBlue)
	case "debug":
		return colorize("DBG", colorMagenta)
	case "info":
		return colorize("INF", colorGreen)
	case "warn":
		return colorize("WRN", colorYellow)
	case "error":
		return colorize("ERR", colorRed)
	case "fatal":
		return colorize(colorize("FTL", colorRed), colorBold)
	default:
		return colorize("???", colorBold)
	}
}
