// Package solar computes the Sun's apparent position and horizon-crossing
// times using the NOAA low-precision solar algorithm.
//
// The algorithm is a closed-form approximation accurate to about 0.01 degrees
// in solar position, which translates to roughly a minute of event time. It is
// valid for years 1800-2200; outside that window the polynomial terms drift
// but the formulas still evaluate.
//
// All computation is in UTC. Every function here is pure: same inputs, same
// bits out, no state between calls.
package solar

import (
	"errors"
	"math"
	"time"
)

// Errors reported for invalid queries. Polar day/night is not an error; see
// EventKind.
var (
	ErrInvalidDate      = errors.New("date outside the representable calendar range")
	ErrInvalidParameter = errors.New("parameter outside its physical range")
)

const (
	// j2000 is the Julian day of the J2000.0 epoch (2000-01-01 12:00 TT).
	j2000 = 2451545.0

	// daysPerCentury converts a Julian day span to Julian centuries.
	daysPerCentury = 36525.0
)

// Years accepted by JulianDay. The lower bound is where the Julian day count
// itself goes negative; the upper bound is the last year time.Time formats
// with four digits. Both are far outside the algorithm's 1800-2200 accuracy
// window.
const (
	minYear = -4712
	maxYear = 9999
)

// JulianDay returns the Julian day number for 00:00 UTC on the given
// proleptic Gregorian calendar date.
//
// January and February are treated as months 13 and 14 of the previous year,
// per the standard Gregorian-to-Julian-day formula.
func JulianDay(year int, month time.Month, day int) (float64, error) {
	if year < minYear || year > maxYear {
		return 0, ErrInvalidDate
	}
	if month < time.January || month > time.December {
		return 0, ErrInvalidDate
	}
	if day < 1 || day > 31 {
		return 0, ErrInvalidDate
	}

	y := year
	m := int(month)
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + b - 1524.5, nil
}

// JulianCentury converts a Julian day number to Julian centuries since
// J2000.0, the time argument of every formula in this package.
func JulianCentury(jd float64) float64 {
	return (jd - j2000) / daysPerCentury
}

// julianDay is the inverse of JulianCentury.
func julianDay(t float64) float64 {
	return t*daysPerCentury + j2000
}

// centuryForInstant returns the Julian century for an arbitrary UTC instant.
func centuryForInstant(at time.Time) (float64, error) {
	u := at.UTC()
	year, month, day := u.Date()
	jd, err := JulianDay(year, month, day)
	if err != nil {
		return 0, err
	}
	frac := (float64(u.Hour()) +
		float64(u.Minute())/60 +
		float64(u.Second())/3600 +
		float64(u.Nanosecond())/3600e9) / 24
	return JulianCentury(jd + frac), nil
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// sinDeg, cosDeg and asinDeg keep every trig call in this package in degree
// terms. The NOAA formulas are written in degrees throughout, and funneling
// the unit conversion through these three helpers is what keeps a stray
// double conversion from sneaking in.
func sinDeg(deg float64) float64 { return math.Sin(degToRad(deg)) }

func cosDeg(deg float64) float64 { return math.Cos(degToRad(deg)) }

func asinDeg(x float64) float64 { return radToDeg(math.Asin(x)) }

// normalizeAngle360 normalizes an angle to [0, 360) degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
