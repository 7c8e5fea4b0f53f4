package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
default_location: adelaide
twilight: nautical
logging:
  level: debug
locations:
  - name: adelaide
    latitude: -34.9285
    longitude: 138.6007
    utc_offset: 9.5
  - name: London
    latitude: 51.5074
    longitude: -0.1278
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Twilight != "nautical" {
		t.Errorf("Twilight = %q", cfg.Twilight)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}

	loc, ok := cfg.Location("adelaide")
	if !ok {
		t.Fatal("adelaide not found")
	}
	if loc.UTCOffset != 9.5 {
		t.Errorf("UTCOffset = %v, want 9.5", loc.UTCOffset)
	}

	// Lookup is case-insensitive.
	if _, ok := cfg.Location("london"); !ok {
		t.Error("case-insensitive lookup failed for london")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{
			name:    "bad twilight kind",
			mutate:  func(c *Config) { c.Twilight = "golden" },
			wantSub: "twilight",
		},
		{
			name:    "latitude out of range",
			mutate:  func(c *Config) { c.Locations[0].Latitude = 91 },
			wantSub: "out of range",
		},
		{
			name:    "offset out of range",
			mutate:  func(c *Config) { c.Locations[0].UTCOffset = 15 },
			wantSub: "utc_offset",
		},
		{
			name: "duplicate names",
			mutate: func(c *Config) {
				c.Locations = append(c.Locations, Location{Name: "Greenwich", Latitude: 0, Longitude: 0})
			},
			wantSub: "duplicate",
		},
		{
			name:    "unknown default location",
			mutate:  func(c *Config) { c.DefaultLocation = "atlantis" },
			wantSub: "default_location",
		},
		{
			name:    "no locations",
			mutate:  func(c *Config) { c.Locations = nil },
			wantSub: "at least one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() failed its own validation: %v", err)
	}
}
