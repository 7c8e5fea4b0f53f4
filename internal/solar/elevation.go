package solar

import "time"

// ElevationAt returns the Sun's geometric elevation angle in degrees for an
// observer at lat/lon at an arbitrary instant. No refraction is applied.
//
// This is the continuous counterpart of the event solver: the hour angle is
// recovered from true solar time (clock time corrected by the equation of
// time and the longitude offset) instead of being solved for. The solar
// position is evaluated at the instant itself, so traces sampled across a day
// pick up the slow drift in declination.
func ElevationAt(lat, lon float64, at time.Time) (float64, error) {
	if err := ValidateCoordinates(lat, lon); err != nil {
		return 0, err
	}
	t, err := centuryForInstant(at)
	if err != nil {
		return 0, err
	}
	pos := PositionAt(t)

	u := at.UTC()
	minutes := float64(u.Hour())*60 + float64(u.Minute()) +
		float64(u.Second())/60 + float64(u.Nanosecond())/60e9

	tst := minutes + pos.EqTimeMin + 4*lon
	for tst < 0 {
		tst += 1440
	}
	for tst >= 1440 {
		tst -= 1440
	}

	haDeg := tst/4 - 180
	if haDeg < -180 {
		haDeg += 360
	}

	sinElev := sinDeg(lat)*sinDeg(pos.DeclinationDeg) +
		cosDeg(lat)*cosDeg(pos.DeclinationDeg)*cosDeg(haDeg)
	return asinDeg(sinElev), nil
}
