// Package stopwatch implements the timer engine behind a stopwatch screen:
// a three-state machine (reset, running, paused) and the tick loop that
// accumulates elapsed time while running.
//
// An Engine is owned by exactly one display surface. The surface sends
// intents (Toggle, Reset), reads snapshots by polling or by subscribing,
// and calls Close when the screen goes away.
package stopwatch

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/akyairhashvil/stopwatch/internal/clock"
	"github.com/akyairhashvil/stopwatch/internal/config"
	"github.com/akyairhashvil/stopwatch/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Engine struct {
	id       string
	clock    clock.Clock
	interval time.Duration
	log      logrus.FieldLogger
	metrics  Metrics

	mu      sync.Mutex
	state   models.TimerState
	elapsed time.Duration
	seq     uint64
	snap    models.Snapshot
	closed  bool

	// gen identifies the live accumulation loop. Ticks carrying an older
	// generation are discarded, so a cancelled loop can never add time.
	gen    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup

	subs    map[int]chan models.Snapshot
	nextSub int
}

// New returns an engine in the reset state with zero elapsed time.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:       uuid.NewString(),
		clock:    clock.System,
		interval: config.TickInterval,
		metrics:  nopMetrics{},
		subs:     make(map[int]chan models.Snapshot),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		e.log = l
	}
	e.log = e.log.WithFields(logrus.Fields{"component": "stopwatch", "engine_id": e.id})
	e.snap = models.Snapshot{State: models.StateReset, Text: FormatElapsed(0)}
	e.metrics.Observe(e.snap)
	return e
}

func (e *Engine) ID() string { return e.id }

// Toggle starts the stopwatch from reset or paused, and pauses it while
// running.
func (e *Engine) Toggle() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.metrics.IntentReceived(models.IntentToggle)

	from := e.state
	switch e.state {
	case models.StateRunning:
		e.stopLocked()
		e.state = models.StatePaused
	case models.StateReset, models.StatePaused:
		e.state = models.StateRunning
		e.startLocked()
	}
	e.log.WithFields(logrus.Fields{"from": from, "to": e.state}).Debug("toggle")
	e.publishLocked()
}

// Reset stops any running loop and zeroes elapsed time. Resetting an engine
// that is already reset does nothing.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.metrics.IntentReceived(models.IntentReset)
	if e.state == models.StateReset {
		return
	}

	from := e.state
	e.stopLocked()
	e.state = models.StateReset
	e.elapsed = 0
	e.log.WithField("from", from).Debug("reset")
	e.publishLocked()
}

// Snapshot returns the latest published state.
func (e *Engine) Snapshot() models.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snap
}

func (e *Engine) State() models.TimerState { return e.Snapshot().State }

func (e *Engine) Elapsed() time.Duration { return e.Snapshot().Elapsed }

func (e *Engine) Text() string { return e.Snapshot().Text }

// Subscribe returns a channel that always holds the most recent snapshot.
// Unread snapshots are replaced rather than queued, so a slow reader only
// ever sees the latest value. The current snapshot is delivered at once.
// The returned func unsubscribes and closes the channel.
func (e *Engine) Subscribe() (<-chan models.Snapshot, func()) {
	ch := make(chan models.Snapshot, 1)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		close(ch)
		return ch, func() {}
	}
	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch
	ch <- e.snap

	return ch, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if c, ok := e.subs[id]; ok {
			delete(e.subs, id)
			close(c)
		}
	}
}

// Close stops the loop, waits for it to exit and closes all subscriptions.
// A running engine is left paused. Intents after Close are ignored.
func (e *Engine) Close() {
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		e.stopLocked()
		if e.state == models.StateRunning {
			e.state = models.StatePaused
		}
		e.publishLocked()
		for id, ch := range e.subs {
			delete(e.subs, id)
			close(ch)
		}
		e.log.Debug("closed")
	}
	e.mu.Unlock()
	e.wg.Wait()
}

func (e *Engine) startLocked() {
	e.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	gen := e.gen
	prev := e.clock.Now()
	ticker := e.clock.NewTicker(e.interval)

	e.wg.Add(1)
	go e.run(ctx, gen, prev, ticker)
}

func (e *Engine) stopLocked() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.gen++
}

func (e *Engine) run(ctx context.Context, gen uint64, prev time.Time, ticker clock.Ticker) {
	defer e.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			var ok bool
			if prev, ok = e.tick(gen, prev); !ok {
				return
			}
		}
	}
}

// tick adds the time since prev to elapsed and reports whether the loop
// identified by gen is still the live one.
func (e *Engine) tick(gen uint64, prev time.Time) (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.gen || e.state != models.StateRunning {
		return prev, false
	}

	now := e.clock.Now()
	delta := now.Sub(prev)
	if delta < 0 {
		e.log.WithFields(logrus.Fields{"prev": prev, "now": now}).Debug("clock moved backward, clamping delta")
		e.metrics.DeltaClamped()
		delta = 0
	}
	e.elapsed += delta
	e.metrics.Ticked(delta)
	e.publishLocked()
	return now, true
}

func (e *Engine) publishLocked() {
	e.seq++
	e.snap = models.Snapshot{
		State:   e.state,
		Elapsed: e.elapsed,
		Text:    FormatElapsed(e.elapsed),
		Seq:     e.seq,
	}
	for _, ch := range e.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- e.snap:
		default:
		}
	}
	e.metrics.Observe(e.snap)
}
