package solar

import (
	"math"
	"time"
)

// Horizon is a target Sun elevation angle in degrees. Negative values are
// below the geometric horizon, which is where every standard event lives.
type Horizon float64

// Standard horizon angles. Official sunrise/sunset places the Sun's center
// 0.833 degrees below the horizon, covering the solar disk radius plus the
// fixed refraction constant; the three twilight definitions are deeper.
const (
	HorizonOfficial     Horizon = -0.833
	HorizonCivil        Horizon = -6
	HorizonNautical     Horizon = -12
	HorizonAstronomical Horizon = -18
)

// Valid reports whether h is a usable crossing target. The open interval
// excludes the zenith and nadir, where "crossing" stops meaning anything.
func (h Horizon) Valid() bool {
	return h > -90 && h < 90
}

// Direction selects which crossing of the horizon angle to solve for.
type Direction int

const (
	// Rising is the upward crossing (sunrise, dawn).
	Rising Direction = iota
	// Setting is the downward crossing (sunset, dusk).
	Setting
)

// EventKind distinguishes a concrete crossing from the two polar outcomes.
type EventKind int

const (
	// EventAt means the crossing happens and Event.Time holds the instant.
	EventAt EventKind = iota

	// NeverRises means the Sun stays below the horizon angle all day
	// (polar night for that angle).
	NeverRises

	// NeverSets means the Sun stays above the horizon angle all day
	// (polar day for that angle).
	NeverSets
)

// Event is the result of a horizon-crossing query: either an instant or a
// polar sentinel. Sentinels are expected outcomes, not failures.
type Event struct {
	Kind EventKind
	Time time.Time // valid only when Kind == EventAt
}

// Occurs reports whether the event has a concrete time.
func (e Event) Occurs() bool {
	return e.Kind == EventAt
}

// nearPoleLat is where the hour-angle quotient turns numerically hostile.
// Latitudes beyond it are evaluated at the clamp; the classification into
// time-or-sentinel comes out the same.
const nearPoleLat = 89.8

// ValidateCoordinates rejects coordinates outside their physical ranges.
// Out-of-range values are never clamped or wrapped.
func ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return ErrInvalidParameter
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return ErrInvalidParameter
	}
	return nil
}

// SolveEvent finds the UTC instant on the given calendar date when the Sun's
// center crosses the horizon angle in the given direction, for an observer at
// lat/lon (degrees, north and east positive).
//
// The solar position is evaluated once, at local solar noon of the date. The
// returned instant may fall on the previous or next UTC calendar date for
// longitudes far from Greenwich; the rollover is carried into the date rather
// than wrapped within it.
func SolveEvent(lat, lon float64, year int, month time.Month, day int, horizon Horizon, dir Direction) (Event, error) {
	if err := ValidateCoordinates(lat, lon); err != nil {
		return Event{}, err
	}
	if !horizon.Valid() {
		return Event{}, ErrInvalidParameter
	}

	jd, err := JulianDay(year, month, day)
	if err != nil {
		return Event{}, err
	}
	pos := PositionAt(noonCentury(jd, lon))

	// The exact poles are degenerate: cos(lat) = 0 and the hour angle is
	// undefined. There the Sun's elevation barely moves all day, sitting at
	// +declination (north) or -declination (south), so the outcome is decided
	// by comparing that elevation against the horizon angle directly.
	if lat == 90 || lat == -90 {
		elev := pos.DeclinationDeg
		if lat < 0 {
			elev = -elev
		}
		if elev < float64(horizon) {
			return Event{Kind: NeverRises}, nil
		}
		return Event{Kind: NeverSets}, nil
	}

	if lat > nearPoleLat {
		lat = nearPoleLat
	} else if lat < -nearPoleLat {
		lat = -nearPoleLat
	}

	h := float64(horizon)
	cosHA := (sinDeg(h) - sinDeg(lat)*sinDeg(pos.DeclinationDeg)) /
		(cosDeg(lat) * cosDeg(pos.DeclinationDeg))
	if cosHA > 1 {
		return Event{Kind: NeverRises}, nil
	}
	if cosHA < -1 {
		return Event{Kind: NeverSets}, nil
	}

	haDeg := radToDeg(math.Acos(cosHA))

	// Minutes from UTC midnight of the date: solar noon offset by the hour
	// angle at 4 minutes per degree, earlier for rising, later for setting.
	minutes := 720 - 4*lon - pos.EqTimeMin
	if dir == Rising {
		minutes -= 4 * haDeg
	} else {
		minutes += 4 * haDeg
	}

	return Event{Kind: EventAt, Time: minutesToUTC(year, month, day, minutes)}, nil
}

// NoonUTC returns the UTC instant of solar noon on the given date at the
// given longitude. Solar noon depends only on longitude and the equation of
// time, never on latitude.
func NoonUTC(lon float64, year int, month time.Month, day int) (time.Time, error) {
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return time.Time{}, ErrInvalidParameter
	}
	jd, err := JulianDay(year, month, day)
	if err != nil {
		return time.Time{}, err
	}
	pos := PositionAt(noonCentury(jd, lon))
	return minutesToUTC(year, month, day, 720-4*lon-pos.EqTimeMin), nil
}

// noonCentury returns the Julian century at local solar noon for a date's
// midnight Julian day and a longitude (east positive).
func noonCentury(jd, lon float64) float64 {
	return JulianCentury(jd + 0.5 - lon/360)
}

// minutesToUTC converts fractional minutes past UTC midnight of a date into
// an instant, rounded to the nearest second. Negative or >1440 values land on
// the adjacent calendar date.
func minutesToUTC(year int, month time.Month, day int, minutes float64) time.Time {
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	sec := int64(math.Round(minutes * 60))
	return midnight.Add(time.Duration(sec) * time.Second)
}
