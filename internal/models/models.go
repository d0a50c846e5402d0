package models

import "time"

// TimerState enumerates the lifecycle of a stopwatch.
type TimerState int

const (
	StateReset TimerState = iota
	StateRunning
	StatePaused
)

func (s TimerState) String() string {
	switch s {
	case StateReset:
		return "reset"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Intent is a user request delivered to the engine.
type Intent string

const (
	IntentToggle Intent = "toggle"
	IntentReset  Intent = "reset"
)

// Snapshot is the published, read-only view of a stopwatch.
type Snapshot struct {
	State   TimerState
	Elapsed time.Duration
	Text    string // HH:mm:ss:SSS
	Seq     uint64 // Increases with every publish
}

// Running reports whether the snapshot was taken while accumulating time.
func (s Snapshot) Running() bool {
	return s.State == StateRunning
}
