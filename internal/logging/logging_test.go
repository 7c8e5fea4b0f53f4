package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("quiet")
	l.Info("quiet")
	l.Warn("loud")
	l.Error("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("below-threshold lines leaked: %q", out)
	}
	if strings.Count(out, "loud") != 2 {
		t.Errorf("want 2 emitted lines, got: %q", out)
	}
}

func TestWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo)
	l.SetOutput(&buf)

	l.WithPrefix("ui").Info("resized")

	if !strings.Contains(buf.String(), "ui: resized") {
		t.Errorf("prefix missing: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic, must not emit.
	Discard().Error("nothing")
}
