package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/stopwatch/internal/models"
	"github.com/akyairhashvil/stopwatch/internal/testutil"
)

func TestRunHeadlessPrintsAndPauses(t *testing.T) {
	e, mc := testutil.NewManualEngine()
	t.Cleanup(e.Close)

	ctx, cancel := context.WithCancel(context.Background())
	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() { done <- RunHeadless(ctx, e, &buf, 2*time.Millisecond) }()

	deadline := time.Now().Add(time.Second)
	for e.State() != models.StateRunning {
		if time.Now().After(deadline) {
			t.Fatalf("headless run never started the stopwatch")
		}
		time.Sleep(time.Millisecond)
	}
	mc.Advance(1234 * time.Millisecond)
	waitForElapsed(t, e, 1234*time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("RunHeadless failed: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("RunHeadless did not stop")
	}

	if e.State() != models.StatePaused {
		t.Fatalf("expected paused after stop, got %v", e.State())
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if got := lines[len(lines)-1]; got != "paused 00:00:01:234" {
		t.Fatalf("last line = %q", got)
	}
	if !strings.Contains(buf.String(), "running ") {
		t.Fatalf("expected running lines, got %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRunHeadlessWriteError(t *testing.T) {
	e, _ := testutil.NewManualEngine()
	t.Cleanup(e.Close)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := RunHeadless(ctx, e, failingWriter{}, time.Millisecond)
	if err == nil || !strings.Contains(err.Error(), "writing update") {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestRunHeadlessClosedEngine(t *testing.T) {
	e, _ := testutil.NewManualEngine()
	e.Close()
	if err := RunHeadless(context.Background(), e, &bytes.Buffer{}, time.Millisecond); err != nil {
		t.Fatalf("expected clean return for closed engine, got %v", err)
	}
}
