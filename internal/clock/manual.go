package clock

import (
	"sync"
	"time"
)

// Manual is a Clock that only moves when told to. Advance fires every live
// ticker once, regardless of its period. Negative advances move time
// backward, which is how clock adjustments are simulated.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	tickers map[*manualTicker]struct{}
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start, tickers: make(map[*manualTicker]struct{})}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) NewTicker(time.Duration) Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTicker{c: make(chan time.Time, 1), owner: m}
	m.tickers[t] = struct{}{}
	return t
}

// Advance moves the clock by d and fires all live tickers.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	now := m.now
	live := make([]*manualTicker, 0, len(m.tickers))
	for t := range m.tickers {
		live = append(live, t)
	}
	m.mu.Unlock()

	for _, t := range live {
		select {
		case t.c <- now:
		default:
		}
	}
}

// Tickers reports how many tickers have not been stopped.
func (m *Manual) Tickers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

type manualTicker struct {
	c     chan time.Time
	owner *Manual
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() {
	t.owner.mu.Lock()
	delete(t.owner.tickers, t)
	t.owner.mu.Unlock()
}
