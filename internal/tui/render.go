package tui

import (
	"github.com/akyairhashvil/stopwatch/internal/config"
	"github.com/akyairhashvil/stopwatch/internal/models"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme
	compact := m.width > 0 && m.width < config.CompactModeThreshold

	lines := []string{t.State.Render(FormatState(m.snap.State))}
	if compact {
		lines = append(lines, m.snap.Text)
	} else {
		lines = append(lines, t.Time.Render(m.snap.Text), m.progress.ViewAs(sweepFraction(m.snap.Elapsed)))
	}
	lines = append(lines, "", m.renderControls(compact))
	if !compact {
		help := m.keys.HelpForState(m.snap.State)
		if m.width > 0 {
			help = truncateLabel(help, m.width)
		}
		lines = append(lines, "", t.Dim.Render(help))
	}
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)

	if m.width == 0 || m.height == 0 {
		return t.Base.Render(body)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderControls(compact bool) string {
	t := m.theme
	toggle := ToggleGlyph(m.snap.State)
	stop := "■"
	if !compact {
		toggle += " " + ToggleLabel(m.snap.State)
		stop += " reset"
	}
	stopStyle := t.Button
	if m.snap.State == models.StateReset {
		stopStyle = t.ButtonDisabled
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, t.Button.Render(toggle), " ", stopStyle.Render(stop))
}
