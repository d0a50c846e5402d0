package main

import (
	"os"

	"github.com/akyairhashvil/stopwatch/internal/config"
	"github.com/akyairhashvil/stopwatch/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "A stopwatch for the terminal",
		Version:       tui.VersionLabel(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfgFile == "" {
				cfgFile = os.Getenv(config.EnvPrefix + "_CONFIG")
			}
			s, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), v, s, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "Path to config file")
	flags.Duration("tick-interval", config.TickInterval, "Time between accumulation ticks")
	flags.Duration("frame-interval", config.FrameInterval, "Time between screen redraws")
	flags.String("theme", config.DefaultTheme, "Color theme (default, dracula)")
	flags.Bool("headless", false, "Print updates as lines instead of drawing a screen")
	flags.Duration("duration", 0, "Stop after this long (0 runs until interrupted)")
	flags.String("log-level", config.LogLevel, "Log level (panic, fatal, error, warn, info, debug, trace)")
	flags.String("log-file", "", "Write logs to this file")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	bindFlags(v, flags)

	return cmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for key, name := range map[string]string{
		"tick_interval":  "tick-interval",
		"frame_interval": "frame-interval",
		"theme":          "theme",
		"headless":       "headless",
		"duration":       "duration",
		"log.level":      "log-level",
		"log.file":       "log-file",
		"metrics.addr":   "metrics-addr",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}
