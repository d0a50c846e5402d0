package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/stopwatch/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

func TestRegistryPriority(t *testing.T) {
	r := NewHandlerRegistry()
	var called string
	r.Register(KeyBinding{Key: "x", Priority: 1, Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
		called = "low"
		return m, nil, true
	}})
	r.Register(KeyBinding{Key: "x", Priority: 5, Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
		called = "high"
		return m, nil, true
	}})
	if _, _, handled := r.Handle(Model{}, "x"); !handled {
		t.Fatalf("expected key to be handled")
	}
	if called != "high" {
		t.Fatalf("expected higher priority handler, got %q", called)
	}
}

func TestRegistryFallsThroughUnhandled(t *testing.T) {
	r := NewHandlerRegistry()
	var called string
	r.Register(KeyBinding{Key: "x", Priority: 5, Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
		return m, nil, false
	}})
	r.Register(KeyBinding{Key: "x", Priority: 1, Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
		called = "fallback"
		return m, nil, true
	}})
	r.Handle(Model{}, "x")
	if called != "fallback" {
		t.Fatalf("expected fallback handler")
	}
}

func TestRegistryStateFilter(t *testing.T) {
	b := KeyBinding{Key: "r", States: []models.TimerState{models.StateRunning}}
	if b.AppliesToState(models.StateReset) {
		t.Fatalf("binding should not apply in reset")
	}
	if !b.AppliesToState(models.StateRunning) {
		t.Fatalf("binding should apply while running")
	}
	if !(KeyBinding{Key: "q"}).AppliesToState(models.StatePaused) {
		t.Fatalf("unrestricted binding should apply everywhere")
	}
}

func TestDefaultHelpPerState(t *testing.T) {
	r := defaultRegistry()
	reset := r.HelpForState(models.StateReset)
	if strings.Contains(reset, "reset") {
		t.Fatalf("reset help should not offer reset: %q", reset)
	}
	for _, want := range []string{"[space]start/pause", "[t]theme", "[q]quit"} {
		if !strings.Contains(reset, want) {
			t.Fatalf("help %q missing %q", reset, want)
		}
	}
	if !strings.Contains(r.HelpForState(models.StatePaused), "[r]reset") {
		t.Fatalf("paused help should offer reset")
	}
	if strings.Count(reset, "start/pause") != 1 {
		t.Fatalf("toggle should be described once: %q", reset)
	}
}
