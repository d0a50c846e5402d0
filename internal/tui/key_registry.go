package tui

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/stopwatch/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

// KeyBinding maps a key to a handler. An empty States list applies the
// binding in every timer state.
type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	States      []models.TimerState
	Priority    int
}

func (b KeyBinding) AppliesToState(state models.TimerState) bool {
	return len(b.States) == 0 || lo.Contains(b.States, state)
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToState(m.snap.State) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForState(state models.TimerState) []KeyBinding {
	return lo.Filter(r.bindings, func(b KeyBinding, _ int) bool {
		return b.AppliesToState(state)
	})
}

func (r *HandlerRegistry) HelpForState(state models.TimerState) string {
	described := lo.Filter(r.GetBindingsForState(state), func(b KeyBinding, _ int) bool {
		return b.Description != ""
	})
	unique := lo.UniqBy(described, func(b KeyBinding) string { return b.Key })
	parts := lo.Map(unique, func(b KeyBinding, _ int) string {
		return "[" + b.Key + "]" + b.Description
	})
	return strings.Join(parts, " ")
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	for _, key := range []string{" ", "space", "enter", "p"} {
		desc := ""
		if key == "space" {
			desc = "start/pause"
		}
		r.Register(KeyBinding{Key: key, Handler: handleToggle, Description: desc, Priority: 10})
	}
	// Reset stays out of reach while already reset, like a disabled stop button.
	for _, key := range []string{"r", "s"} {
		desc := ""
		if key == "r" {
			desc = "reset"
		}
		r.Register(KeyBinding{
			Key:         key,
			Handler:     handleReset,
			Description: desc,
			States:      []models.TimerState{models.StateRunning, models.StatePaused},
			Priority:    10,
		})
	}
	r.Register(KeyBinding{Key: "t", Handler: handleThemeCycle, Description: "theme"})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit"})
	r.Register(KeyBinding{Key: "esc", Handler: handleQuit})
	return r
}
