// Package suntimes computes sunrise, sunset, solar noon and twilight times
// for a geographic location and calendar date.
//
// The computation is the NOAA low-precision solar algorithm: closed-form,
// accurate to roughly a minute of event time, valid for years 1800-2200.
// Every query is a pure function of its inputs; there is no state between
// calls and concurrent use needs no coordination.
//
// Times are computed in UTC. A Location may carry a fixed UTC offset, which
// only changes the wall-clock representation of results, never the
// computation; resolving named timezones is the caller's business.
package suntimes

import (
	"fmt"
	"time"

	"github.com/litescript/ls-suntimes/internal/solar"
)

// Location is an observer position and an optional fixed reporting offset.
type Location struct {
	Lat float64 // degrees, north positive, [-90, 90]
	Lon float64 // degrees, east positive, [-180, 180]

	// UTCOffset is a fixed offset in hours used to render results as local
	// wall-clock times. Fractional values (5.5, -3.5) are fine. Zero reports
	// in UTC.
	UTCOffset float64
}

// Validate rejects coordinates outside their physical ranges. Out-of-range
// values are reported, never clamped or wrapped.
func (l Location) Validate() error {
	return solar.ValidateCoordinates(l.Lat, l.Lon)
}

// zone returns the fixed zone results are reported in.
func (l Location) zone() *time.Location {
	if l.UTCOffset == 0 {
		return time.UTC
	}
	secs := int(l.UTCOffset * 3600)
	return time.FixedZone(fmt.Sprintf("UTC%+.2g", l.UTCOffset), secs)
}

// TwilightKind selects one of the three standard twilight definitions.
type TwilightKind int

const (
	// Civil twilight: Sun's center at -6 degrees.
	Civil TwilightKind = iota
	// Nautical twilight: -12 degrees.
	Nautical
	// Astronomical twilight: -18 degrees.
	Astronomical
)

// Horizon returns the elevation angle for the twilight kind.
func (k TwilightKind) Horizon() (solar.Horizon, error) {
	switch k {
	case Civil:
		return solar.HorizonCivil, nil
	case Nautical:
		return solar.HorizonNautical, nil
	case Astronomical:
		return solar.HorizonAstronomical, nil
	default:
		return 0, solar.ErrInvalidParameter
	}
}

func (k TwilightKind) String() string {
	switch k {
	case Civil:
		return "civil"
	case Nautical:
		return "nautical"
	case Astronomical:
		return "astronomical"
	default:
		return fmt.Sprintf("TwilightKind(%d)", int(k))
	}
}

// Edge selects the morning or evening boundary of a twilight period.
type Edge int

const (
	// Dawn is the morning crossing, rising toward the horizon.
	Dawn Edge = iota
	// Dusk is the evening crossing.
	Dusk
)

// EventKind distinguishes a concrete instant from the two polar outcomes.
type EventKind int

const (
	// At means the event happens; Event.Time holds the instant.
	At EventKind = iota
	// NeverRises means the Sun stays below the target elevation all day.
	NeverRises
	// NeverSets means the Sun stays above the target elevation all day.
	NeverSets
)

func (k EventKind) String() string {
	switch k {
	case At:
		return "at"
	case NeverRises:
		return "never rises"
	case NeverSets:
		return "never sets"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a solar event result: an instant, or a polar sentinel. Sentinels
// are expected outcomes at high latitudes, not errors.
type Event struct {
	Kind EventKind
	Time time.Time // valid only when Kind == At
}

// Occurs reports whether the event has a concrete time.
func (e Event) Occurs() bool {
	return e.Kind == At
}

// Errors surfaced by the package. Re-exported from the engine so callers can
// errors.Is against them without reaching into internal packages.
var (
	ErrInvalidDate      = solar.ErrInvalidDate
	ErrInvalidParameter = solar.ErrInvalidParameter
)

// Sunrise returns the official sunrise (Sun's center at -0.833 degrees,
// upward crossing) for the calendar date of `date` at loc.
func Sunrise(loc Location, date time.Time) (Event, error) {
	return eventAt(loc, date, solar.HorizonOfficial, solar.Rising)
}

// Sunset returns the official sunset for the calendar date of `date` at loc.
func Sunset(loc Location, date time.Time) (Event, error) {
	return eventAt(loc, date, solar.HorizonOfficial, solar.Setting)
}

// SolarNoon returns the instant the Sun crosses the observer's meridian.
// It depends on longitude and the equation of time only, not latitude.
func SolarNoon(loc Location, date time.Time) (time.Time, error) {
	if err := loc.Validate(); err != nil {
		return time.Time{}, err
	}
	year, month, day := date.Date()
	noon, err := solar.NoonUTC(loc.Lon, year, month, day)
	if err != nil {
		return time.Time{}, err
	}
	return noon.In(loc.zone()), nil
}

// Twilight returns the dawn or dusk boundary of the given twilight kind for
// the calendar date of `date` at loc.
func Twilight(loc Location, date time.Time, kind TwilightKind, edge Edge) (Event, error) {
	h, err := kind.Horizon()
	if err != nil {
		return Event{}, err
	}
	dir := solar.Rising
	if edge == Dusk {
		dir = solar.Setting
	}
	return eventAt(loc, date, h, dir)
}

// Crossing returns the instant the Sun crosses an arbitrary elevation angle
// (degrees, negative below the horizon) in the given direction. Horizon
// angles outside (-90, 90) are rejected.
func Crossing(loc Location, date time.Time, horizonDeg float64, edge Edge) (Event, error) {
	dir := solar.Rising
	if edge == Dusk {
		dir = solar.Setting
	}
	return eventAt(loc, date, solar.Horizon(horizonDeg), dir)
}

// DaySchedule bundles the events of one day under a single twilight kind,
// mirroring the dawn / sunrise / noon / sunset / dusk shape most callers want.
type DaySchedule struct {
	Dawn    Event
	Sunrise Event
	Noon    time.Time
	Sunset  Event
	Dusk    Event
}

// Schedule computes the full schedule for the calendar date of `date` at loc,
// with dawn and dusk at the given twilight kind.
func Schedule(loc Location, date time.Time, kind TwilightKind) (DaySchedule, error) {
	h, err := kind.Horizon()
	if err != nil {
		return DaySchedule{}, err
	}

	var s DaySchedule
	if s.Dawn, err = eventAt(loc, date, h, solar.Rising); err != nil {
		return DaySchedule{}, err
	}
	if s.Sunrise, err = Sunrise(loc, date); err != nil {
		return DaySchedule{}, err
	}
	if s.Noon, err = SolarNoon(loc, date); err != nil {
		return DaySchedule{}, err
	}
	if s.Sunset, err = Sunset(loc, date); err != nil {
		return DaySchedule{}, err
	}
	if s.Dusk, err = eventAt(loc, date, h, solar.Setting); err != nil {
		return DaySchedule{}, err
	}
	return s, nil
}

// DaylightHours returns the span between sunrise and sunset in hours. The
// second return is false under polar day or night, when no such span exists.
func DaylightHours(loc Location, date time.Time) (float64, bool, error) {
	rise, err := Sunrise(loc, date)
	if err != nil {
		return 0, false, err
	}
	set, err := Sunset(loc, date)
	if err != nil {
		return 0, false, err
	}
	if !rise.Occurs() || !set.Occurs() {
		return 0, false, nil
	}
	return set.Time.Sub(rise.Time).Hours(), true, nil
}

// SunElevation returns the Sun's geometric elevation in degrees at loc at the
// given instant. No refraction is applied.
func SunElevation(loc Location, at time.Time) (float64, error) {
	return solar.ElevationAt(loc.Lat, loc.Lon, at)
}

func eventAt(loc Location, date time.Time, h solar.Horizon, dir solar.Direction) (Event, error) {
	if err := loc.Validate(); err != nil {
		return Event{}, err
	}
	year, month, day := date.Date()
	e, err := solar.SolveEvent(loc.Lat, loc.Lon, year, month, day, h, dir)
	if err != nil {
		return Event{}, err
	}
	return fromSolar(e, loc.zone()), nil
}

func fromSolar(e solar.Event, zone *time.Location) Event {
	switch e.Kind {
	case solar.NeverRises:
		return Event{Kind: NeverRises}
	case solar.NeverSets:
		return Event{Kind: NeverSets}
	default:
		return Event{Kind: At, Time: e.Time.In(zone)}
	}
}
