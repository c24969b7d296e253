// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package season

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/formula-zero/models"
	"github.com/danielhkuo/formula-zero/standings"
)

//go:embed default.yaml
var defaultSeason []byte

var ErrEmptyName = errors.New("name is required")

// Default returns the built-in 2024/25 season
func Default() (models.Season, error) {
	return Parse(defaultSeason, "default.yaml")
}

// LoadFile reads a season from a YAML file, or the built-in season when path is empty
func LoadFile(path string) (models.Season, error) {
	if path == "" {
		return Default()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return models.Season{}, fmt.Errorf("failed to read season file: %w", err)
	}
	return Parse(b, path)
}

// Parse decodes and validates a YAML season document.
// Unknown keys are rejected so typos do not silently drop data.
func Parse(b []byte, source string) (models.Season, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var s models.Season
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return models.Season{}, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	for i := range s.Drivers {
		s.Drivers[i].Name = strings.TrimSpace(s.Drivers[i].Name)
		s.Drivers[i].Team = strings.TrimSpace(s.Drivers[i].Team)
		if s.Drivers[i].Name == "" {
			return models.Season{}, fmt.Errorf("%s: driver %d: %w", source, i+1, ErrEmptyName)
		}
		if s.Drivers[i].Team == "" {
			return models.Season{}, fmt.Errorf("%s: team of driver %s: %w", source, s.Drivers[i].Name, ErrEmptyName)
		}
	}
	for i, race := range s.Races {
		if strings.TrimSpace(race.Race) == "" {
			return models.Season{}, fmt.Errorf("%s: race %d: %w", source, i+1, ErrEmptyName)
		}
		if race.Results == nil {
			s.Races[i].Results = map[string]int{}
		}
	}

	if err := standings.Validate(s.Drivers, s.Races); err != nil {
		return models.Season{}, fmt.Errorf("%s: %w", source, err)
	}

	return s, nil
}
