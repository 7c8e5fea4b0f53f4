package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-suntimes/internal/almanac"
	"github.com/litescript/ls-suntimes/internal/solar"
	"github.com/litescript/ls-suntimes/internal/version"
)

// Styles for the day card
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	sentinelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("111")).
			Italic(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dayBlockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	twilightBlockStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("69"))

	nightBlockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

// SparklineWidth is the fixed width of the elevation sparkline.
const SparklineWidth = 48

// sparklineBlocks are the Unicode block characters, lowest to highest.
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// View renders the full day card.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	loc := m.Location()

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("☀ %s — %s", loc.Name, m.day.Date.Format("Mon 2006-01-02"))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%.4f, %.4f  UTC%+.3g", loc.Latitude, loc.Longitude, loc.UTCOffset)))
	b.WriteString("\n\n")

	switch {
	case m.day.PolarDay():
		b.WriteString(sentinelStyle.Render("Polar day — the sun does not set"))
		b.WriteString("\n\n")
	case m.day.PolarNight():
		b.WriteString(sentinelStyle.Render("Polar night — the sun does not rise"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderEvents())
	b.WriteString("\n")
	b.WriteString(m.renderSparkline())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("←/→ day · t today · tab location · q quit · v" + version.Version))

	return b.String()
}

func (m Model) renderEvents() string {
	rows := []struct {
		label string
		event solar.Event
	}{
		{"Astronomical dawn", m.day.AstronomicalDawn},
		{"Nautical dawn", m.day.NauticalDawn},
		{"Civil dawn", m.day.CivilDawn},
		{"Sunrise", m.day.Sunrise},
		{"Sunset", m.day.Sunset},
		{"Civil dusk", m.day.CivilDusk},
		{"Nautical dusk", m.day.NauticalDusk},
		{"Astronomical dusk", m.day.AstronomicalDusk},
	}

	var b strings.Builder
	for i, row := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-19s", row.label)))
		b.WriteString(renderEventTime(row.event))
		b.WriteString("\n")

		// Solar noon sits between the morning and evening halves.
		if i == len(rows)/2-1 {
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-19s", "Solar noon")))
			b.WriteString(timeStyle.Render(m.day.Noon.Format("15:04:05") + " UTC"))
			b.WriteString("\n")
		}
	}

	if dur, ok := m.day.DaylightDuration(); ok {
		h := int(dur.Hours())
		min := int(dur.Minutes()) % 60
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-19s", "Daylight")))
		b.WriteString(timeStyle.Render(fmt.Sprintf("%dh%02dm", h, min)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderEventTime(e solar.Event) string {
	switch e.Kind {
	case solar.NeverRises:
		return sentinelStyle.Render("never rises")
	case solar.NeverSets:
		return sentinelStyle.Render("never sets")
	default:
		return timeStyle.Render(e.Time.Format("15:04:05") + " UTC")
	}
}

// renderSparkline draws the day's elevation curve, colored by whether the
// sun is up, in twilight, or down at each sample.
func (m Model) renderSparkline() string {
	samples := resampleElevation(m.trace.Samples, SparklineWidth)
	if len(samples) == 0 {
		return dimStyle.Render("no elevation data")
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render("00:00 "))
	for _, elev := range samples {
		// Map [-90, 90] onto the block range, pinning the horizon between
		// blocks 3 and 4 so day/night reads at a glance.
		frac := (elev + 90) / 180
		idx := int(frac * float64(len(sparklineBlocks)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparklineBlocks) {
			idx = len(sparklineBlocks) - 1
		}

		block := string(sparklineBlocks[idx])
		switch {
		case elev > 0:
			b.WriteString(dayBlockStyle.Render(block))
		case elev > -18:
			b.WriteString(twilightBlockStyle.Render(block))
		default:
			b.WriteString(nightBlockStyle.Render(block))
		}
	}
	b.WriteString(dimStyle.Render(" 24:00"))
	return b.String()
}

// resampleElevation reduces a trace to a fixed number of columns by nearest
// sampling. Returns nil for an empty input.
func resampleElevation(samples []almanac.ElevationSample, width int) []float64 {
	if len(samples) == 0 || width <= 0 {
		return nil
	}

	span := width - 1
	if span < 1 {
		span = 1
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		src := i * (len(samples) - 1) / span
		out[i] = samples[src].Elevation
	}
	return out
}
