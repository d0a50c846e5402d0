package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/stopwatch/internal/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Settings is the runtime configuration assembled from flags, env and file.
type Settings struct {
	TickInterval  time.Duration `mapstructure:"tick_interval"`
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	Theme         string        `mapstructure:"theme"`
	Headless      bool          `mapstructure:"headless"`
	Duration      time.Duration `mapstructure:"duration"`
	Log           Log           `mapstructure:"log"`
	Metrics       Metrics       `mapstructure:"metrics"`
}

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Metrics struct {
	Addr string `mapstructure:"addr"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tick_interval", TickInterval)
	v.SetDefault("frame_interval", FrameInterval)
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("headless", false)
	v.SetDefault("duration", time.Duration(0))
	v.SetDefault("log.level", LogLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("metrics.addr", "")
}

// Load reads an optional config file into v and decodes the merged result.
// Without an explicit cfgFile the file is looked up in the user config dir
// and its absence is not an error.
func Load(v *viper.Viper, cfgFile string) (Settings, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileType)
		v.AddConfigPath(util.ConfigDir(AppName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading config: %w", err)
		}
	}
	return Decode(v)
}

// Decode unmarshals and validates the current state of v.
func Decode(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("parsing configuration: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.TickInterval <= 0 {
		return invalid("tick_interval", s.TickInterval, "must be positive")
	}
	if s.FrameInterval <= 0 {
		return invalid("frame_interval", s.FrameInterval, "must be positive")
	}
	if s.Duration < 0 {
		return invalid("duration", s.Duration, "must not be negative")
	}
	if _, err := logrus.ParseLevel(s.Log.Level); err != nil {
		return invalid("log.level", s.Log.Level, err.Error())
	}
	return nil
}
