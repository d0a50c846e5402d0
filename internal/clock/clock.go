//go:generate mockgen -destination ./mock/clock.go . Clock,Ticker

// Package clock abstracts time so the stopwatch loop can be driven by hand
// in tests.
package clock

import "time"

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock provides time-related operations.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// System is the default Clock backed by the standard library. Readings carry
// the monotonic clock, so wall clock adjustments do not skew deltas.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s *systemTicker) C() <-chan time.Time { return s.t.C }

func (s *systemTicker) Stop() { s.t.Stop() }
