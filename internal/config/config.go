// Package config loads the optional YAML configuration: saved observer
// locations, the default twilight kind, and logging settings. Configuration
// is strictly a CLI-layer concern; the computation engine never reads files.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-suntimes/internal/solar"
)

// Config is the complete application configuration.
type Config struct {
	DefaultLocation string     `yaml:"default_location"`
	Twilight        string     `yaml:"twilight"` // civil, nautical or astronomical
	Logging         Logging    `yaml:"logging"`
	Locations       []Location `yaml:"locations"`
}

// Location is a saved observer position.
type Location struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	UTCOffset float64 `yaml:"utc_offset"` // hours, fractional allowed
}

// Logging holds log settings.
type Logging struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present:
// Greenwich, civil twilight, info logging.
func Default() *Config {
	return &Config{
		DefaultLocation: "greenwich",
		Twilight:        "civil",
		Logging:         Logging{Level: "info"},
		Locations: []Location{
			{Name: "greenwich", Latitude: 51.4779, Longitude: -0.0015},
		},
	}
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks coordinate ranges, name uniqueness and enum fields.
func (c *Config) Validate() error {
	switch c.Twilight {
	case "civil", "nautical", "astronomical":
	default:
		return fmt.Errorf("twilight must be civil, nautical or astronomical, got %q", c.Twilight)
	}

	if len(c.Locations) == 0 {
		return fmt.Errorf("at least one location is required")
	}

	seen := make(map[string]bool)
	for _, loc := range c.Locations {
		name := strings.TrimSpace(loc.Name)
		if name == "" {
			return fmt.Errorf("location with empty name")
		}
		if seen[strings.ToLower(name)] {
			return fmt.Errorf("duplicate location name %q", name)
		}
		seen[strings.ToLower(name)] = true

		if err := solar.ValidateCoordinates(loc.Latitude, loc.Longitude); err != nil {
			return fmt.Errorf("location %q: latitude %v, longitude %v out of range",
				name, loc.Latitude, loc.Longitude)
		}
		if loc.UTCOffset < -14 || loc.UTCOffset > 14 {
			return fmt.Errorf("location %q: utc_offset %v outside [-14, 14]", name, loc.UTCOffset)
		}
	}

	if _, ok := c.Location(c.DefaultLocation); !ok {
		return fmt.Errorf("default_location %q not among locations", c.DefaultLocation)
	}
	return nil
}

// Location looks up a saved location by name, case-insensitively.
func (c *Config) Location(name string) (Location, bool) {
	for _, loc := range c.Locations {
		if strings.EqualFold(loc.Name, name) {
			return loc, true
		}
	}
	return Location{}, false
}
