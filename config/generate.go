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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var supportedExtensions = []string{"json", "toml", "yaml", "yml"}

// Marshal encodes conf in the given format: json, toml, yaml or yml.
func Marshal(conf Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		b, err := json.MarshalIndent(conf, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case "toml":
		return toml.Marshal(conf)
	case "yaml", "yml":
		return yaml.Marshal(conf)
	default:
		return nil, errors.New("config format must be one of: " + strings.Join(supportedExtensions, ", "))
	}
}

// Generate writes conf to a new file. The format is taken from the file
// extension. Existing files are not overwritten.
func Generate(fileName string, conf Config) error {
	if _, err := os.Stat(fileName); err == nil {
		return fmt.Errorf("%s: target file already exists", fileName)
	}

	b, err := Marshal(conf, strings.TrimPrefix(filepath.Ext(fileName), "."))
	if err != nil {
		return err
	}
	return os.WriteFile(fileName, b, 0644)
}
