package tui

import (
	"strings"
	"time"

	"github.com/akyairhashvil/stopwatch/internal/config"
	"github.com/akyairhashvil/stopwatch/internal/models"
	"github.com/charmbracelet/x/ansi"
)

// ToggleGlyph returns the icon for the start/pause button.
func ToggleGlyph(state models.TimerState) string {
	if state == models.StateRunning {
		return "⏸"
	}
	return "▶"
}

// ToggleLabel names what the start/pause button will do next.
func ToggleLabel(state models.TimerState) string {
	switch state {
	case models.StateRunning:
		return "pause"
	case models.StatePaused:
		return "resume"
	default:
		return "start"
	}
}

// FormatState returns a short upper-case status line.
func FormatState(state models.TimerState) string {
	return strings.ToUpper(state.String())
}

// sweepFraction is how far the seconds hand has travelled around the minute.
func sweepFraction(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed%time.Minute) / float64(time.Minute)
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
