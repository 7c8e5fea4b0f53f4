// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Elevation sparkline in the day view, multi-day range tables
// 0.2.0 - YAML location presets, now-line and JSON headless modes
// 0.1.0 - Initial release: NOAA solar engine, day card, TUI dashboard
