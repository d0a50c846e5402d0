package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// FrameMsg asks the screen to pull a fresh snapshot. The engine may tick far
// more often than the screen redraws; frames are where updates coalesce.
type FrameMsg time.Time

// ThemeMsg switches the active theme, e.g. after a config file reload.
type ThemeMsg struct {
	Name string
}

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return FrameMsg(t) })
}
