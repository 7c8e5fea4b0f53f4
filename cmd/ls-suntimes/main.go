// Command ls-suntimes is a terminal UI and CLI for sunrise, sunset and
// twilight times at any location on Earth.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-suntimes/internal/almanac"
	"github.com/litescript/ls-suntimes/internal/config"
	"github.com/litescript/ls-suntimes/internal/export"
	"github.com/litescript/ls-suntimes/internal/logging"
	"github.com/litescript/ls-suntimes/internal/ui"
	"github.com/litescript/ls-suntimes/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode bool
	nowMode     bool
	jsonPath    string
	rangeDays   int
)

func main() {
	// Parse flags
	lat := flag.Float64("lat", 0, "Latitude in degrees (-90..90)")
	lon := flag.Float64("lon", 0, "Longitude in degrees (-180..180, east positive)")
	dateStr := flag.String("date", "", "Date as YYYY-MM-DD (default today, UTC)")
	offset := flag.Float64("offset", 0, "Fixed UTC offset in hours for reported times (default: the location's saved offset)")
	locName := flag.String("location", "", "Named location from the config file")
	configPath := flag.String("config", "", "Path to config file (YAML)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.BoolVar(&summaryMode, "summary", false, "Print day card instead of TUI")
	flag.BoolVar(&nowMode, "now", false, "Single-line next-event mode")
	flag.StringVar(&jsonPath, "json", "", "Export day as JSON to file (use - for stdout)")
	flag.IntVar(&rangeDays, "days", 0, "Print a table covering N days from the date")
	flag.Parse()

	// Distinguish explicitly given flags from defaults; a user typing the
	// default value still counts as set.
	seen := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { seen[f.Name] = true })

	if *showVersion {
		fmt.Println("ls-suntimes v" + version.Version)
		return
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(*logLevel)).WithPrefix("cli")

	// Load config (defaults if no file given)
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}
	// The config file's log level applies unless the flag overrides it.
	if *logLevel == "info" && cfg.Logging.Level != "" {
		logger.SetLevel(logging.ParseLevel(cfg.Logging.Level))
	}

	// Resolve the date
	date := time.Now().UTC()
	if *dateStr != "" {
		parsed, err := time.Parse("2006-01-02", *dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad -date %q: use YYYY-MM-DD\n", *dateStr)
			os.Exit(1)
		}
		date = parsed
	}

	loc, err := resolveObserver(cfg, *locName, seen["lat"], seen["lon"], *lat, *lon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if loc.Name == "custom" {
		// Make the ad-hoc location cyclable in the TUI alongside presets.
		cfg.Locations = append([]config.Location{loc}, cfg.Locations...)
	}
	logger.Debug("Resolved location %s (%.4f, %.4f) for %s",
		loc.Name, loc.Latitude, loc.Longitude, date.Format("2006-01-02"))

	zone, err := reportingZone(seen["offset"], *offset, loc.UTCOffset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Headless mode: no TUI
	headless := summaryMode || nowMode || jsonPath != "" || rangeDays > 0
	if headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runHeadless(loc, date, zone, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Create TUI model and run (blocks until quit)
	model := ui.New(cfg, loc.Name, date)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// resolveObserver picks the observer location: explicit -lat/-lon coordinates
// win, then a named preset, then the config default. Coordinates must come as
// a pair.
func resolveObserver(cfg *config.Config, name string, latSet, lonSet bool, lat, lon float64) (config.Location, error) {
	if latSet || lonSet {
		if latSet != lonSet {
			return config.Location{}, fmt.Errorf("-lat and -lon must be given together")
		}
		return config.Location{Name: "custom", Latitude: lat, Longitude: lon}, nil
	}

	selected := cfg.DefaultLocation
	if name != "" {
		selected = name
	}
	loc, ok := cfg.Location(selected)
	if !ok {
		return config.Location{}, fmt.Errorf("unknown location %q", selected)
	}
	return loc, nil
}

// reportingZone builds the fixed zone results render in: an explicit -offset
// beats the location's saved offset, and zero means UTC.
func reportingZone(offsetSet bool, offset, saved float64) (*time.Location, error) {
	hours := saved
	if offsetSet {
		if offset < -14 || offset > 14 {
			return nil, fmt.Errorf("-offset %v outside [-14, 14]", offset)
		}
		hours = offset
	}
	if hours == 0 {
		return time.UTC, nil
	}
	return time.FixedZone(fmt.Sprintf("UTC%+.3g", hours), int(hours*3600)), nil
}

// runHeadless handles all non-TUI output modes.
func runHeadless(loc config.Location, date time.Time, zone *time.Location, logger *logging.Logger) error {
	if rangeDays > 0 {
		r, err := almanac.ComputeRange(loc.Latitude, loc.Longitude, date, rangeDays)
		if err != nil {
			return err
		}
		for i := range r.Days {
			r.Days[i] = r.Days[i].InZone(zone)
		}
		if jsonPath != "" {
			return writeJSONTo(jsonPath, export.ExportRange(r))
		}
		export.WriteRangeTable(os.Stdout, r)
		return nil
	}

	day, err := almanac.ComputeDay(loc.Latitude, loc.Longitude, date)
	if err != nil {
		return err
	}
	day = day.InZone(zone)
	logger.Debug("Computed day schedule for %s", date.Format("2006-01-02"))

	if jsonPath != "" {
		return writeJSONTo(jsonPath, export.ExportDay(day))
	}
	if nowMode {
		export.WriteNowLine(os.Stdout, day, time.Now().UTC())
		return nil
	}
	export.WriteDayCard(os.Stdout, day)
	return nil
}

func writeJSONTo(path string, v any) error {
	if path == "-" {
		if err := export.WriteJSON(os.Stdout, v); err != nil {
			return fmt.Errorf("write JSON to stdout: %w", err)
		}
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer f.Close()
	if err := export.WriteJSON(f, v); err != nil {
		return fmt.Errorf("write JSON to file: %w", err)
	}
	return nil
}
