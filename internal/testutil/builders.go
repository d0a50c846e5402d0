package testutil

import (
	"time"

	"github.com/akyairhashvil/stopwatch/internal/clock"
	"github.com/akyairhashvil/stopwatch/internal/models"
	"github.com/akyairhashvil/stopwatch/internal/stopwatch"
)

// Epoch is the start time of manual clocks built here.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// SnapshotBuilder provides fluent API for creating test snapshots.
type SnapshotBuilder struct {
	snap models.Snapshot
}

func NewSnapshot() *SnapshotBuilder {
	return &SnapshotBuilder{
		snap: models.Snapshot{
			State: models.StateReset,
			Text:  stopwatch.FormatElapsed(0),
		},
	}
}

func (b *SnapshotBuilder) WithState(s models.TimerState) *SnapshotBuilder {
	b.snap.State = s
	return b
}

func (b *SnapshotBuilder) WithElapsed(d time.Duration) *SnapshotBuilder {
	b.snap.Elapsed = d
	b.snap.Text = stopwatch.FormatElapsed(d)
	return b
}

func (b *SnapshotBuilder) WithSeq(seq uint64) *SnapshotBuilder {
	b.snap.Seq = seq
	return b
}

func (b *SnapshotBuilder) Build() models.Snapshot {
	return b.snap
}

// NewManualEngine returns an engine driven by a manual clock starting at
// Epoch. The caller owns the engine and must Close it.
func NewManualEngine(opts ...stopwatch.Option) (*stopwatch.Engine, *clock.Manual) {
	mc := clock.NewManual(Epoch)
	e := stopwatch.New(append([]stopwatch.Option{stopwatch.WithClock(mc)}, opts...)...)
	return e, mc
}
