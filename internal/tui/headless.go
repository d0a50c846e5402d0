package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/stopwatch/internal/config"
	"github.com/akyairhashvil/stopwatch/internal/models"
	"github.com/akyairhashvil/stopwatch/internal/stopwatch"
)

// RunHeadless starts the stopwatch and writes "<state> <text>" lines to w,
// at most one per frame, until ctx is done. The stopwatch is paused on the
// way out and its final reading is written.
func RunHeadless(ctx context.Context, e *stopwatch.Engine, w io.Writer, frame time.Duration) error {
	if frame <= 0 {
		frame = config.FrameInterval
	}
	updates, unsubscribe := e.Subscribe()
	defer unsubscribe()

	if e.State() != models.StateRunning {
		e.Toggle()
	}

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	var latest models.Snapshot
	var printed uint64
	emit := func(s models.Snapshot) error {
		if s.Seq == printed {
			return nil
		}
		printed = s.Seq
		if _, err := fmt.Fprintf(w, "%s %s\n", s.State, s.Text); err != nil {
			return fmt.Errorf("writing update: %w", err)
		}
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			if e.State() == models.StateRunning {
				e.Toggle()
			}
			return emit(e.Snapshot())
		case s, ok := <-updates:
			if !ok {
				return nil
			}
			latest = s
		case <-ticker.C:
			if err := emit(latest); err != nil {
				return err
			}
		}
	}
}
