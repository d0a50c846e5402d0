package tui

import (
	"github.com/akyairhashvil/stopwatch/internal/config"
	"github.com/akyairhashvil/stopwatch/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		m.progress.Width = util.Clamp(m.width-8, config.MinSweepWidth, config.SweepWidth)
	}
	return m
}

func handleToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	m.engine.Toggle()
	m.snap = m.engine.Snapshot()
	m.log.WithField("state", m.snap.State).Debug("toggle pressed")
	return m, nil, true
}

func handleReset(m Model, _ string) (Model, tea.Cmd, bool) {
	m.engine.Reset()
	m.snap = m.engine.Snapshot()
	m.log.Debug("reset pressed")
	return m, nil, true
}

func handleThemeCycle(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.withTheme(nextThemeName(m.themeName)), nil, true
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := handleQuitModel(m)
	return next, cmd, true
}

func handleQuitModel(m Model) (Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}
