// Package export renders almanac results for headless use: JSON snapshots
// for scripting and aligned text for terminals.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/litescript/ls-suntimes/internal/almanac"
	"github.com/litescript/ls-suntimes/internal/solar"
)

// DayExport is the JSON-serializable form of a day schedule. Sentinel events
// carry a status string instead of a time.
type DayExport struct {
	Date       string        `json:"date"`
	Latitude   float64       `json:"latitude"`
	Longitude  float64       `json:"longitude"`
	Events     []EventExport `json:"events"`
	Daylight   string        `json:"daylight,omitempty"`
	PolarDay   bool          `json:"polar_day,omitempty"`
	PolarNight bool          `json:"polar_night,omitempty"`
}

// EventExport is a single named event in a DayExport.
type EventExport struct {
	Name   string `json:"name"`
	Time   string `json:"time,omitempty"`   // RFC 3339, absent for sentinels
	Status string `json:"status,omitempty"` // "never_rises" / "never_sets"
}

// RangeExport is the JSON form of a multi-day range.
type RangeExport struct {
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Days      []DayExport `json:"days"`
}

// ExportDay converts a computed day to its JSON form.
func ExportDay(d almanac.Day) DayExport {
	out := DayExport{
		Date:       d.Date.Format("2006-01-02"),
		Latitude:   d.Lat,
		Longitude:  d.Lon,
		PolarDay:   d.PolarDay(),
		PolarNight: d.PolarNight(),
	}

	for _, ev := range dayEvents(d) {
		out.Events = append(out.Events, exportEvent(ev.name, ev.event))
	}
	out.Events = append(out.Events, EventExport{Name: "solar noon", Time: d.Noon.Format(time.RFC3339)})

	if dur, ok := d.DaylightDuration(); ok {
		out.Daylight = formatDuration(dur)
	}
	return out
}

// ExportRange converts a computed range to its JSON form.
func ExportRange(r almanac.Range) RangeExport {
	out := RangeExport{Latitude: r.Lat, Longitude: r.Lon}
	for _, d := range r.Days {
		out.Days = append(out.Days, ExportDay(d))
	}
	return out
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteDayCard writes an aligned text card for one day.
func WriteDayCard(w io.Writer, d almanac.Day) {
	fmt.Fprintf(w, "%s  (%.4f, %.4f)\n", d.Date.Format("Mon 2006-01-02"), d.Lat, d.Lon)

	switch {
	case d.PolarDay():
		fmt.Fprintln(w, "  polar day: sun above the horizon all day")
	case d.PolarNight():
		fmt.Fprintln(w, "  polar night: sun below the horizon all day")
	}

	events := dayEvents(d)
	for i, ev := range events {
		fmt.Fprintf(w, "  %-18s %s\n", ev.name, eventClock(ev.event))
		// Solar noon sits between the morning and evening halves.
		if i == len(events)/2-1 {
			fmt.Fprintf(w, "  %-18s %s\n", "solar noon", d.Noon.Format("15:04:05"))
		}
	}

	if dur, ok := d.DaylightDuration(); ok {
		fmt.Fprintf(w, "  %-18s %s\n", "daylight", formatDuration(dur))
	}
}

// WriteNowLine writes a one-line summary naming the next event relative to
// `now`, in the style of a status bar segment.
func WriteNowLine(w io.Writer, d almanac.Day, now time.Time) {
	switch {
	case d.PolarDay():
		fmt.Fprintf(w, "%s: polar day, no sunset\n", d.Date.Format("2006-01-02"))
		return
	case d.PolarNight():
		fmt.Fprintf(w, "%s: polar night, no sunrise\n", d.Date.Format("2006-01-02"))
		return
	}

	name, at, ok := d.NextEvent(now)
	if !ok {
		fmt.Fprintf(w, "%s: no further events today\n", d.Date.Format("2006-01-02"))
		return
	}
	fmt.Fprintf(w, "%s at %s (%s)\n", name, at.Format("15:04"), humanize.RelTime(at, now, "ago", "from now"))
}

// WriteRangeTable writes a compact per-day table for a date range.
func WriteRangeTable(w io.Writer, r almanac.Range) {
	fmt.Fprintf(w, "%-12s %-9s %-9s %-9s %-10s\n", "date", "sunrise", "noon", "sunset", "daylight")
	fmt.Fprintln(w, strings.Repeat("-", 52))

	for _, d := range r.Days {
		daylight := "-"
		if dur, ok := d.DaylightDuration(); ok {
			daylight = formatDuration(dur)
		}
		fmt.Fprintf(w, "%-12s %-9s %-9s %-9s %-10s\n",
			d.Date.Format("2006-01-02"),
			eventClock(d.Sunrise),
			d.Noon.Format("15:04:05"),
			eventClock(d.Sunset),
			daylight)
	}
}

type namedEvent struct {
	name  string
	event solar.Event
}

func dayEvents(d almanac.Day) []namedEvent {
	return []namedEvent{
		{"astronomical dawn", d.AstronomicalDawn},
		{"nautical dawn", d.NauticalDawn},
		{"civil dawn", d.CivilDawn},
		{"sunrise", d.Sunrise},
		{"sunset", d.Sunset},
		{"civil dusk", d.CivilDusk},
		{"nautical dusk", d.NauticalDusk},
		{"astronomical dusk", d.AstronomicalDusk},
	}
}

func exportEvent(name string, e solar.Event) EventExport {
	switch e.Kind {
	case solar.NeverRises:
		return EventExport{Name: name, Status: "never_rises"}
	case solar.NeverSets:
		return EventExport{Name: name, Status: "never_sets"}
	default:
		return EventExport{Name: name, Time: e.Time.Format(time.RFC3339)}
	}
}

func eventClock(e solar.Event) string {
	switch e.Kind {
	case solar.NeverRises:
		return "never rises"
	case solar.NeverSets:
		return "never sets"
	default:
		return e.Time.Format("15:04:05")
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	return fmt.Sprintf("%dh%02dm", h, m)
}
