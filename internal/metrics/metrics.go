// Package metrics exports stopwatch engine activity to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/akyairhashvil/stopwatch/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace   = "stopwatch"
	subsystem   = "engine"
	labelIntent = "intent"
	labelState  = "state"
)

var states = []models.TimerState{models.StateReset, models.StateRunning, models.StatePaused}

// Recorder implements stopwatch.Metrics on top of a Prometheus registry.
type Recorder struct {
	Intents        *prometheus.CounterVec
	Ticks          prometheus.Counter
	TickDelta      prometheus.Histogram
	ClampedDeltas  prometheus.Counter
	ElapsedSeconds prometheus.Gauge
	State          *prometheus.GaugeVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		Intents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "intents_total",
			Help:      "Number of intents received, by kind.",
		}, []string{labelIntent}),
		Ticks: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ticks_total",
			Help:      "Number of accumulation ticks applied.",
		}),
		TickDelta: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "tick_delta_milliseconds",
			Help:      "Time added to elapsed per tick in milliseconds.",
			Buckets:   prometheus.ExponentialBucketsRange(1, 1000, 12),
		}),
		ClampedDeltas: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "clamped_deltas_total",
			Help:      "Number of ticks where the clock moved backward.",
		}),
		ElapsedSeconds: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "elapsed_seconds",
			Help:      "Elapsed time of the stopwatch in seconds.",
		}),
		State: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "state",
			Help:      "1 for the current stopwatch state, 0 otherwise.",
		}, []string{labelState}),
	}
}

func (r *Recorder) IntentReceived(intent models.Intent) {
	r.Intents.WithLabelValues(string(intent)).Inc()
}

func (r *Recorder) Ticked(delta time.Duration) {
	r.Ticks.Inc()
	r.TickDelta.Observe(float64(delta) / float64(time.Millisecond))
}

func (r *Recorder) DeltaClamped() {
	r.ClampedDeltas.Inc()
}

func (r *Recorder) Observe(s models.Snapshot) {
	r.ElapsedSeconds.Set(s.Elapsed.Seconds())
	for _, st := range states {
		v := 0.0
		if st == s.State {
			v = 1
		}
		r.State.WithLabelValues(st.String()).Set(v)
	}
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
