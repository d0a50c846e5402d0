package config

import "time"

// Timer durations.
const (
	TickInterval  = 10 * time.Millisecond
	FrameInterval = 50 * time.Millisecond
)

// Display.
const (
	DefaultDisplayText = "00:00:00:000"
	DefaultTheme       = "default"
)

// Application settings.
const (
	AppName        = "stopwatch"
	ConfigFileName = "config"
	ConfigFileType = "yaml"
	EnvPrefix      = "STOPWATCH"
	LogLevel       = "info"
)
