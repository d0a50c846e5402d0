package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/stopwatch/internal/config"
	"github.com/akyairhashvil/stopwatch/internal/tui"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootHeadlessRunsForDuration(t *testing.T) {
	r := require.New(t)
	out, err := execute(t, "--headless", "--duration", "60ms", "--frame-interval", "5ms")
	r.NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	r.NotEmpty(lines)
	r.True(strings.HasPrefix(lines[len(lines)-1], "paused "), "last line: %q", lines[len(lines)-1])
	r.Contains(out, "running ")
}

func TestRootConfigFile(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "stopwatch.yaml")
	r.NoError(os.WriteFile(path, []byte("headless: true\nduration: 20ms\nframe_interval: 5ms\n"), 0o600))

	out, err := execute(t, "--config", path)
	r.NoError(err)
	r.Contains(out, "paused ")
}

func TestRootRejectsInvalidSettings(t *testing.T) {
	r := require.New(t)
	_, err := execute(t, "--headless", "--tick-interval", "0s")
	r.ErrorIs(err, config.ErrInvalidConfig)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	r.Error(err)
}

func TestRootVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	require.Contains(t, out, tui.VersionLabel())
}

func TestServeMetricsStopsWithContext(t *testing.T) {
	r := require.New(t)
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveMetrics(ctx, log, "127.0.0.1:0", prometheus.NewRegistry()) }()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		r.NoError(err)
	case <-time.After(time.Second):
		t.Fatal("metrics server did not stop")
	}
}

func TestServeMetricsBadAddr(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := serveMetrics(ctx, log, "256.0.0.1:bad", prometheus.NewRegistry())
	require.Error(t, err)
	require.NotErrorIs(t, err, http.ErrServerClosed)
}

func TestIsTerminal(t *testing.T) {
	require.False(t, isTerminal(&bytes.Buffer{}))
}
