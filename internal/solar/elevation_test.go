package solar

import (
	"math"
	"testing"
	"time"
)

func TestElevationAt(t *testing.T) {
	// London, 2020 summer solstice. Noon altitude is 90 - lat + decl.
	noon, err := NoonUTC(londonLon, 2020, time.June, 21)
	if err != nil {
		t.Fatalf("NoonUTC() error = %v", err)
	}

	elev, err := ElevationAt(londonLat, londonLon, noon)
	if err != nil {
		t.Fatalf("ElevationAt() error = %v", err)
	}
	if want := 90 - londonLat + 23.43; math.Abs(elev-want) > 0.2 {
		t.Errorf("noon elevation = %.2f, want ~%.2f", elev, want)
	}

	// Twelve hours from solar noon the sun is far below the horizon.
	elev, err = ElevationAt(londonLat, londonLon, noon.Add(12*time.Hour))
	if err != nil {
		t.Fatalf("ElevationAt() error = %v", err)
	}
	if elev > -10 {
		t.Errorf("solar-midnight elevation = %.2f, want well below horizon", elev)
	}
}

// The elevation curve must agree with the event solver: at the solved
// sunrise instant the sun sits at the official horizon angle.
func TestElevationMatchesEvents(t *testing.T) {
	rise := mustEvent(t, londonLat, londonLon, 2020, time.June, 21, HorizonOfficial, Rising)

	elev, err := ElevationAt(londonLat, londonLon, rise)
	if err != nil {
		t.Fatalf("ElevationAt() error = %v", err)
	}
	if math.Abs(elev-float64(HorizonOfficial)) > 0.3 {
		t.Errorf("elevation at sunrise = %.3f, want ~%.3f", elev, float64(HorizonOfficial))
	}
}

func TestElevationAtRejectsBadCoordinates(t *testing.T) {
	if _, err := ElevationAt(95, 0, time.Now()); err != ErrInvalidParameter {
		t.Errorf("ElevationAt(95, 0) error = %v, want ErrInvalidParameter", err)
	}
}
