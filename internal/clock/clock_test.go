package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystemClockTicks(t *testing.T) {
	before := System.Now()
	tk := System.NewTicker(time.Millisecond)
	defer tk.Stop()

	select {
	case got := <-tk.C():
		require.False(t, got.Before(before))
	case <-time.After(time.Second):
		t.Fatal("system ticker never fired")
	}
}

func TestManualAdvanceFiresLiveTickers(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)
	tk := m.NewTicker(10 * time.Millisecond)
	require.Equal(t, 1, m.Tickers())

	m.Advance(25 * time.Millisecond)
	require.Equal(t, start.Add(25*time.Millisecond), m.Now())
	select {
	case got := <-tk.C():
		require.Equal(t, start.Add(25*time.Millisecond), got)
	default:
		t.Fatal("expected a tick after Advance")
	}

	tk.Stop()
	require.Zero(t, m.Tickers())
	m.Advance(time.Second)
	select {
	case <-tk.C():
		t.Fatal("stopped ticker must not fire")
	default:
	}
}

func TestManualMovesBackward(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)
	m.Advance(-time.Second)
	require.True(t, m.Now().Before(start))
}

func TestManualAdvanceDoesNotBlockOnFullTicker(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	tk := m.NewTicker(time.Millisecond)
	defer tk.Stop()
	m.Advance(time.Millisecond)
	m.Advance(time.Millisecond)
	require.Len(t, tk.C(), 1)
}
