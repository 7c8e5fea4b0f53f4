package almanac

import (
	"time"

	"github.com/litescript/ls-suntimes/internal/solar"
)

// Range holds day schedules for a consecutive span of dates at one location.
type Range struct {
	Lat, Lon float64
	Days     []Day
}

// ComputeRange computes schedules for `count` consecutive days starting at
// the calendar date of `start`. count < 1 is an invalid parameter.
func ComputeRange(lat, lon float64, start time.Time, count int) (Range, error) {
	if count < 1 {
		return Range{}, solar.ErrInvalidParameter
	}

	r := Range{Lat: lat, Lon: lon}
	for i := 0; i < count; i++ {
		day, err := ComputeDay(lat, lon, start.AddDate(0, 0, i))
		if err != nil {
			return Range{}, err
		}
		r.Days = append(r.Days, day)
	}
	return r, nil
}

// DaylightTrend returns the change in daylight duration from the first to the
// last day of the range. ok is false when either endpoint has no daylight
// span to compare.
func (r Range) DaylightTrend() (delta time.Duration, ok bool) {
	if len(r.Days) < 2 {
		return 0, false
	}
	first, ok1 := r.Days[0].DaylightDuration()
	last, ok2 := r.Days[len(r.Days)-1].DaylightDuration()
	if !ok1 || !ok2 {
		return 0, false
	}
	return last - first, true
}
