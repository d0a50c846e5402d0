package stopwatch

import (
	"time"

	"github.com/akyairhashvil/stopwatch/internal/clock"
	"github.com/akyairhashvil/stopwatch/internal/models"
	"github.com/sirupsen/logrus"
)

// Metrics receives engine activity. Implementations must be safe for
// concurrent use.
type Metrics interface {
	IntentReceived(intent models.Intent)
	Ticked(delta time.Duration)
	DeltaClamped()
	Observe(s models.Snapshot)
}

type nopMetrics struct{}

func (nopMetrics) IntentReceived(models.Intent) {}
func (nopMetrics) Ticked(time.Duration)         {}
func (nopMetrics) DeltaClamped()                {}
func (nopMetrics) Observe(models.Snapshot)      {}

type Option func(*Engine)

func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithTickInterval sets the pause between accumulation ticks. Non-positive
// values are ignored.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = log }
}

func WithMetrics(m Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}
