package tui

import (
	"context"
	"io"
	"time"

	"github.com/akyairhashvil/stopwatch/internal/config"
	"github.com/akyairhashvil/stopwatch/internal/models"
	"github.com/akyairhashvil/stopwatch/internal/stopwatch"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Theme         string
	FrameInterval time.Duration
	Logger        logrus.FieldLogger
}

// Model is the stopwatch screen. It does not own the engine: whoever
// created the engine closes it once the program exits.
type Model struct {
	engine    *stopwatch.Engine
	keys      *HandlerRegistry
	log       logrus.FieldLogger
	themeName string
	theme     Theme
	frame     time.Duration
	snap      models.Snapshot
	progress  progress.Model
	width     int // Store window dimensions
	height    int
	quitting  bool
}

func NewModel(engine *stopwatch.Engine, opts Options) Model {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = config.FrameInterval
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}
	if opts.Theme == "" {
		opts.Theme = config.DefaultTheme
	}
	m := Model{
		engine: engine,
		keys:   defaultRegistry(),
		log:    opts.Logger.WithField("component", "tui"),
		frame:  opts.FrameInterval,
		snap:   engine.Snapshot(),
	}
	return m.withTheme(opts.Theme)
}

func (m Model) withTheme(name string) Model {
	t, ok := LookupTheme(name)
	if !ok {
		m.log.WithField("theme", name).Warn("unknown theme, using default")
		name = config.DefaultTheme
	}
	m.themeName = name
	m.theme = t
	width := m.progress.Width
	m.progress = progress.New(progress.WithGradient(t.SweepFrom, t.SweepTo), progress.WithoutPercentage())
	if width == 0 {
		width = config.SweepWidth
	}
	m.progress.Width = width
	return m
}

func (m Model) Init() tea.Cmd {
	return frameCmd(m.frame)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return handleQuitModel(m)
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case FrameMsg:
		m.snap = m.engine.Snapshot()
		return m, frameCmd(m.frame)
	case ThemeMsg:
		if msg.Name != m.themeName {
			m = m.withTheme(msg.Name)
			m.log.WithField("theme", m.themeName).Info("theme changed")
		}
		return m, nil
	}
	return m, nil
}

// Snapshot returns what the screen last rendered from.
func (m Model) Snapshot() models.Snapshot { return m.snap }

// NewProgram wraps m in a full-screen program that stops when ctx is done.
func NewProgram(ctx context.Context, m Model, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	return tea.NewProgram(m, opts...)
}
