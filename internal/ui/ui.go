// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-suntimes/internal/almanac"
	"github.com/litescript/ls-suntimes/internal/config"
)

// TickMsg triggers the periodic re-render that moves the "now" marker.
type TickMsg time.Time

// tickInterval is how often the now marker refreshes. Solar events move at
// minute scale; once a second keeps the clock honest without busywork.
const tickInterval = time.Second

// Model is the root Bubble Tea model: one location, one date, the computed
// day and its elevation trace. All data is computed locally; there is no
// fetch loop and every recompute is immediate.
type Model struct {
	cfg    *config.Config
	locIdx int

	date time.Time
	now  time.Time

	day   almanac.Day
	trace almanac.ElevationTrace
	err   error

	width  int
	height int
	ready  bool
}

// New creates the root model for a config and a starting location/date.
func New(cfg *config.Config, startLoc string, date time.Time) Model {
	m := Model{
		cfg:  cfg,
		date: date,
		now:  time.Now().UTC(),
	}
	for i, loc := range cfg.Locations {
		if loc.Name == startLoc {
			m.locIdx = i
			break
		}
	}
	return m.recompute()
}

// Location returns the currently selected location.
func (m Model) Location() config.Location {
	return m.cfg.Locations[m.locIdx]
}

// recompute refreshes the day schedule and trace for the current
// location/date selection.
func (m Model) recompute() Model {
	loc := m.Location()

	day, err := almanac.ComputeDay(loc.Latitude, loc.Longitude, m.date)
	if err != nil {
		m.err = err
		return m
	}
	trace, err := almanac.ComputeTrace(loc.Latitude, loc.Longitude, m.date, 0)
	if err != nil {
		m.err = err
		return m
	}

	m.day = day
	m.trace = trace
	m.err = nil
	return m
}

// Init implements the Bubble Tea model interface.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case TickMsg:
		m.now = time.Time(msg).UTC()
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "left", "h":
			m.date = m.date.AddDate(0, 0, -1)
			return m.recompute(), nil

		case "right", "l":
			m.date = m.date.AddDate(0, 0, 1)
			return m.recompute(), nil

		case "t":
			m.date = time.Now().UTC()
			return m.recompute(), nil

		case "tab", "n":
			m.locIdx = (m.locIdx + 1) % len(m.cfg.Locations)
			return m.recompute(), nil
		}
	}

	return m, nil
}
