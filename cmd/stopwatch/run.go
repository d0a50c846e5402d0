package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/akyairhashvil/stopwatch/internal/config"
	"github.com/akyairhashvil/stopwatch/internal/metrics"
	"github.com/akyairhashvil/stopwatch/internal/stopwatch"
	"github.com/akyairhashvil/stopwatch/internal/tui"
	"github.com/akyairhashvil/stopwatch/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

func run(ctx context.Context, v *viper.Viper, s config.Settings, stdout io.Writer) error {
	logger, closeLog, err := util.NewLogger(s.Log.Level, s.Log.File)
	if err != nil {
		return err
	}
	defer func() { util.LogError(logger, "closing log file", closeLog()) }()
	log := logger.WithField("version", tui.AppVersion)

	reg := prometheus.NewRegistry()
	engine := stopwatch.New(
		stopwatch.WithTickInterval(s.TickInterval),
		stopwatch.WithLogger(log),
		stopwatch.WithMetrics(metrics.NewRecorder(reg)),
	)
	defer engine.Close()
	log.WithField("engine_id", engine.ID()).Info("stopwatch ready")

	if s.Duration > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, s.Duration)
		defer cancelTimeout()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if s.Metrics.Addr != "" {
		g.Go(func() error { return serveMetrics(ctx, log, s.Metrics.Addr, reg) })
	}

	headless := s.Headless || !isTerminal(stdout)
	g.Go(func() error {
		// The surface decides the lifetime; everything else follows it.
		defer cancel()
		if headless {
			return tui.RunHeadless(ctx, engine, stdout, s.FrameInterval)
		}
		return runTUI(ctx, v, log, engine, s)
	})

	return g.Wait()
}

func runTUI(ctx context.Context, v *viper.Viper, log logrus.FieldLogger, engine *stopwatch.Engine, s config.Settings) error {
	p := tui.NewProgram(ctx, tui.NewModel(engine, tui.Options{
		Theme:         s.Theme,
		FrameInterval: s.FrameInterval,
		Logger:        log,
	}))

	if file := v.ConfigFileUsed(); file != "" {
		v.OnConfigChange(func(e fsnotify.Event) {
			log.WithField("file", e.Name).Info("config file changed")
			p.Send(tui.ThemeMsg{Name: v.GetString("theme")})
		})
		v.WatchConfig()
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running screen: %w", err)
	}
	return nil
}

func serveMetrics(ctx context.Context, log logrus.FieldLogger, addr string, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(g))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		util.LogError(log, "closing metrics server", srv.Close())
	}()

	log.Infof("serving metrics on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
