// Package almanac assembles the engine's per-event answers into the derived
// products the UI and headless writers consume: full day schedules, elevation
// traces and multi-day ranges. Everything here is pure assembly; the solar
// math lives in internal/solar.
package almanac

import (
	"time"

	"github.com/litescript/ls-suntimes/internal/solar"
)

// Day is the complete solar schedule for one location and calendar date,
// from astronomical dawn through astronomical dusk.
type Day struct {
	Lat, Lon float64
	Date     time.Time // midnight of the queried calendar date, in the reporting zone

	AstronomicalDawn solar.Event
	NauticalDawn     solar.Event
	CivilDawn        solar.Event
	Sunrise          solar.Event
	Noon             time.Time
	Sunset           solar.Event
	CivilDusk        solar.Event
	NauticalDusk     solar.Event
	AstronomicalDusk solar.Event
}

// ComputeDay computes the full schedule for the calendar date of `date` at
// lat/lon. Results are UTC instants; individual events may be polar
// sentinels while others on the same day are concrete (deep twilights vanish
// first as latitude climbs).
func ComputeDay(lat, lon float64, date time.Time) (Day, error) {
	year, month, dayNum := date.Date()

	d := Day{
		Lat:  lat,
		Lon:  lon,
		Date: time.Date(year, month, dayNum, 0, 0, 0, 0, date.Location()),
	}

	type slot struct {
		dst     *solar.Event
		horizon solar.Horizon
		dir     solar.Direction
	}
	slots := []slot{
		{&d.AstronomicalDawn, solar.HorizonAstronomical, solar.Rising},
		{&d.NauticalDawn, solar.HorizonNautical, solar.Rising},
		{&d.CivilDawn, solar.HorizonCivil, solar.Rising},
		{&d.Sunrise, solar.HorizonOfficial, solar.Rising},
		{&d.Sunset, solar.HorizonOfficial, solar.Setting},
		{&d.CivilDusk, solar.HorizonCivil, solar.Setting},
		{&d.NauticalDusk, solar.HorizonNautical, solar.Setting},
		{&d.AstronomicalDusk, solar.HorizonAstronomical, solar.Setting},
	}
	for _, s := range slots {
		e, err := solar.SolveEvent(lat, lon, year, month, dayNum, s.horizon, s.dir)
		if err != nil {
			return Day{}, err
		}
		*s.dst = e
	}

	noon, err := solar.NoonUTC(lon, year, month, dayNum)
	if err != nil {
		return Day{}, err
	}
	d.Noon = noon

	return d, nil
}

// InZone returns a copy of the day with every concrete instant converted to
// the given reporting zone. The instants themselves do not move, sentinels
// pass through untouched, and Date keeps identifying the queried calendar
// date.
func (d Day) InZone(zone *time.Location) Day {
	out := d
	out.Noon = d.Noon.In(zone)

	events := []*solar.Event{
		&out.AstronomicalDawn, &out.NauticalDawn, &out.CivilDawn, &out.Sunrise,
		&out.Sunset, &out.CivilDusk, &out.NauticalDusk, &out.AstronomicalDusk,
	}
	for _, e := range events {
		if e.Occurs() {
			e.Time = e.Time.In(zone)
		}
	}
	return out
}

// DaylightDuration returns the sunrise-to-sunset span. ok is false under
// polar day or night.
func (d Day) DaylightDuration() (dur time.Duration, ok bool) {
	if !d.Sunrise.Occurs() || !d.Sunset.Occurs() {
		return 0, false
	}
	return d.Sunset.Time.Sub(d.Sunrise.Time), true
}

// PolarDay reports whether the sun never sets on this date (official horizon).
func (d Day) PolarDay() bool {
	return d.Sunrise.Kind == solar.NeverSets
}

// PolarNight reports whether the sun never rises on this date.
func (d Day) PolarNight() bool {
	return d.Sunrise.Kind == solar.NeverRises
}

// NextEvent returns the name and time of the first concrete event after
// `now`, or ok=false if the day holds none.
func (d Day) NextEvent(now time.Time) (name string, at time.Time, ok bool) {
	for _, c := range d.labeled() {
		if c.event.Occurs() && c.event.Time.After(now) {
			return c.name, c.event.Time, true
		}
	}
	return "", time.Time{}, false
}

type labeledEvent struct {
	name  string
	event solar.Event
}

// labeled returns the day's crossings in chronological order. Noon is not a
// crossing and is excluded.
func (d Day) labeled() []labeledEvent {
	return []labeledEvent{
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
