package almanac

import (
	"time"

	"github.com/litescript/ls-suntimes/internal/solar"
)

// ElevationSample is the Sun's elevation at a point in time.
type ElevationSample struct {
	Time      time.Time
	Elevation float64 // degrees above the geometric horizon
}

// ElevationTrace holds elevation samples spanning one calendar day, for
// sparklines and plots.
type ElevationTrace struct {
	Lat, Lon    float64
	WindowStart time.Time
	WindowEnd   time.Time
	Step        time.Duration
	Samples     []ElevationSample
}

// DefaultTraceStep is the sampling interval used when none is given.
const DefaultTraceStep = 15 * time.Minute

// ComputeTrace samples the Sun's elevation across the calendar day of `date`
// at lat/lon, every `step` (DefaultTraceStep if step <= 0). The window runs
// from local midnight to local midnight, inclusive of the final sample.
func ComputeTrace(lat, lon float64, date time.Time, step time.Duration) (ElevationTrace, error) {
	if step <= 0 {
		step = DefaultTraceStep
	}

	year, month, day := date.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	tr := ElevationTrace{
		Lat:         lat,
		Lon:         lon,
		WindowStart: start,
		WindowEnd:   end,
		Step:        step,
	}

	for at := start; !at.After(end); at = at.Add(step) {
		elev, err := solar.ElevationAt(lat, lon, at)
		if err != nil {
			return ElevationTrace{}, err
		}
		tr.Samples = append(tr.Samples, ElevationSample{Time: at, Elevation: elev})
	}

	return tr, nil
}

// Max returns the highest sample of the trace. ok is false for an empty trace.
func (tr ElevationTrace) Max() (ElevationSample, bool) {
	if len(tr.Samples) == 0 {
		return ElevationSample{}, false
	}
	best := tr.Samples[0]
	for _, s := range tr.Samples[1:] {
		if s.Elevation > best.Elevation {
			best = s
		}
	}
	return best, true
}
