package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/jmateri/mculog/logger"
	"github.com/jmateri/mculog/sink"
)

// Config carries the logger settings a deployment supplies through the
// environment or a yaml file. The zero value describes a disabled
// logger.
type Config struct {
	// Level names the severity threshold: silent, fatal, error,
	// warning, debug, trace or verbose. Unknown names fall back to
	// silent.
	Level string `yaml:"level" env:"MCULOG_LEVEL" env-default:"silent"`

	// ShowLevel controls the one-character level tag in front of each
	// record.
	ShowLevel bool `yaml:"showLevel" env:"MCULOG_SHOW_LEVEL" env-default:"true"`

	// Baud, when non-zero, is applied during Apply to sinks that
	// support rate configuration.
	Baud int64 `yaml:"baud" env:"MCULOG_BAUD" env-default:"0"`
}

// ReadEnv loads the configuration from environment variables.
func ReadEnv() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read logger config from environment: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration from a yaml file at path, with
// environment variables overriding file values.
func Load(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read logger config %s: %w", path, err)
	}
	return cfg, nil
}

// Apply initializes l against out from the configuration. When Baud is
// set and the sink supports it, the rate is configured before output is
// enabled; a rejected rate leaves the logger untouched.
func (c Config) Apply(l *logger.Logger, out sink.Sink) error {
	if rs, ok := out.(sink.RateSink); ok && c.Baud > 0 {
		if err := rs.SetRate(c.Baud); err != nil {
			return fmt.Errorf("configure sink rate %d: %w", c.Baud, err)
		}
	}
	l.Init(logger.ParseLevel(c.Level), out, c.ShowLevel)
	return nil
}
