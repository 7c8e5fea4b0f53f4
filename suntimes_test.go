package suntimes_test

import (
	"errors"
	"testing"
	"time"

	suntimes "github.com/litescript/ls-suntimes"
)

var london = suntimes.Location{Lat: 51.5074, Lon: -0.1278}

func TestScheduleOrdering(t *testing.T) {
	date := time.Date(2021, time.April, 10, 0, 0, 0, 0, time.UTC)

	for _, kind := range []suntimes.TwilightKind{suntimes.Civil, suntimes.Nautical, suntimes.Astronomical} {
		s, err := suntimes.Schedule(london, date, kind)
		if err != nil {
			t.Fatalf("Schedule(%v) error = %v", kind, err)
		}

		for _, e := range []suntimes.Event{s.Dawn, s.Sunrise, s.Sunset, s.Dusk} {
			if !e.Occurs() {
				t.Fatalf("Schedule(%v): unexpected sentinel %v", kind, e.Kind)
			}
		}

		order := []time.Time{s.Dawn.Time, s.Sunrise.Time, s.Noon, s.Sunset.Time, s.Dusk.Time}
		names := []string{"dawn", "sunrise", "noon", "sunset", "dusk"}
		for i := 1; i < len(order); i++ {
			if !order[i].After(order[i-1]) {
				t.Errorf("%v: %s (%v) not after %s (%v)", kind, names[i], order[i], names[i-1], order[i-1])
			}
		}
	}
}

func TestUTCOffsetReporting(t *testing.T) {
	sydney := suntimes.Location{Lat: -33.8688, Lon: 151.2093, UTCOffset: 10}
	date := time.Date(2021, time.June, 21, 0, 0, 0, 0, time.UTC)

	utcRise, err := suntimes.Sunrise(suntimes.Location{Lat: sydney.Lat, Lon: sydney.Lon}, date)
	if err != nil {
		t.Fatalf("Sunrise() error = %v", err)
	}
	localRise, err := suntimes.Sunrise(sydney, date)
	if err != nil {
		t.Fatalf("Sunrise() error = %v", err)
	}

	// Same instant, different wall clock.
	if !localRise.Time.Equal(utcRise.Time) {
		t.Errorf("offset changed the instant: %v vs %v", localRise.Time, utcRise.Time)
	}
	if _, offset := localRise.Time.Zone(); offset != 10*3600 {
		t.Errorf("zone offset = %d seconds, want 36000", offset)
	}
	// Winter sunrise in Sydney is around 07:00 local.
	if h := localRise.Time.Hour(); h < 6 || h > 8 {
		t.Errorf("local sunrise hour = %d, want morning wall-clock hours", h)
	}
}

func TestFractionalOffset(t *testing.T) {
	// Adelaide sits on a half-hour zone.
	adelaide := suntimes.Location{Lat: -34.9285, Lon: 138.6007, UTCOffset: 9.5}
	noon, err := suntimes.SolarNoon(adelaide, time.Date(2021, time.January, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("SolarNoon() error = %v", err)
	}
	if _, offset := noon.Zone(); offset != 34200 {
		t.Errorf("zone offset = %d seconds, want 34200 (9.5h)", offset)
	}
}

func TestSolarNoonLatitudeInvariant(t *testing.T) {
	date := time.Date(2021, time.October, 5, 0, 0, 0, 0, time.UTC)

	base, err := suntimes.SolarNoon(suntimes.Location{Lat: 0, Lon: 30}, date)
	if err != nil {
		t.Fatalf("SolarNoon() error = %v", err)
	}
	for _, lat := range []float64{-80, -45, -10, 10, 45, 89, 90} {
		noon, err := suntimes.SolarNoon(suntimes.Location{Lat: lat, Lon: 30}, date)
		if err != nil {
			t.Fatalf("SolarNoon(lat=%v) error = %v", lat, err)
		}
		if !noon.Equal(base) {
			t.Errorf("lat %v: noon %v differs from %v", lat, noon, base)
		}
	}
}

func TestPolarSentinels(t *testing.T) {
	svalbard := suntimes.Location{Lat: 78, Lon: 15}

	rise, err := suntimes.Sunrise(svalbard, time.Date(2021, time.June, 21, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Sunrise() error = %v", err)
	}
	if rise.Kind != suntimes.NeverSets {
		t.Errorf("midsummer kind = %v, want NeverSets", rise.Kind)
	}

	rise, err = suntimes.Sunrise(svalbard, time.Date(2021, time.December, 21, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Sunrise() error = %v", err)
	}
	if rise.Kind != suntimes.NeverRises {
		t.Errorf("midwinter kind = %v, want NeverRises", rise.Kind)
	}

	if _, ok, err := suntimes.DaylightHours(svalbard, time.Date(2021, time.December, 21, 0, 0, 0, 0, time.UTC)); err != nil || ok {
		t.Errorf("DaylightHours() = ok=%v err=%v, want no daylight span and no error", ok, err)
	}
}

func TestDaylightHoursPhoenix(t *testing.T) {
	phoenix := suntimes.Location{Lat: 33.4484, Lon: -112.074}

	tests := []struct {
		name      string
		date      time.Time
		wantMin   float64
		wantMax   float64
	}{
		{
			name:    "summer solstice",
			date:    time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC),
			wantMin: 14.0, wantMax: 14.5,
		},
		{
			name:    "winter solstice",
			date:    time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC),
			wantMin: 9.8, wantMax: 10.2,
		},
		{
			name:    "spring equinox",
			date:    time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
			wantMin: 11.9, wantMax: 12.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, ok, err := suntimes.DaylightHours(phoenix, tt.date)
			if err != nil || !ok {
				t.Fatalf("DaylightHours() = ok=%v, err=%v", ok, err)
			}
			if hours < tt.wantMin || hours > tt.wantMax {
				t.Errorf("DaylightHours() = %.2f, want between %.2f and %.2f", hours, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	date := time.Date(2021, time.June, 21, 0, 0, 0, 0, time.UTC)

	if _, err := suntimes.Sunrise(suntimes.Location{Lat: 120}, date); !errors.Is(err, suntimes.ErrInvalidParameter) {
		t.Errorf("bad latitude error = %v, want ErrInvalidParameter", err)
	}
	if _, err := suntimes.Crossing(london, date, -95, suntimes.Dawn); !errors.Is(err, suntimes.ErrInvalidParameter) {
		t.Errorf("bad horizon error = %v, want ErrInvalidParameter", err)
	}
	if _, err := suntimes.Sunrise(london, time.Date(10000, time.June, 21, 0, 0, 0, 0, time.UTC)); !errors.Is(err, suntimes.ErrInvalidDate) {
		t.Errorf("bad year error = %v, want ErrInvalidDate", err)
	}
}
