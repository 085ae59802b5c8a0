package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Settings are the operator-tunable knobs, as opposed to the guild state in
// BotConfig. They come from an optional YAML file with environment-variable
// overrides on top; the bot token itself is only ever read from the
// environment.
type Settings struct {
	StatePath     string
	SweepInterval time.Duration
	APITimeout    time.Duration
	LogLevel      string
}

const (
	DefaultStatePath     = "articlebot_state.json"
	DefaultSweepInterval = 5 * time.Minute
	DefaultAPITimeout    = 15 * time.Second
)

type settingsFile struct {
	StatePath     string `yaml:"state_path"`
	SweepInterval string `yaml:"sweep_interval"`
	APITimeout    string `yaml:"api_timeout"`
	LogLevel      string `yaml:"log_level"`
}

// LoadSettings reads path (may be empty for defaults-plus-env) and applies
// overrides from ARTICLEBOT_STATE_PATH, ARTICLEBOT_SWEEP_INTERVAL,
// ARTICLEBOT_API_TIMEOUT and LOG_LEVEL.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{
		StatePath:     DefaultStatePath,
		SweepInterval: DefaultSweepInterval,
		APITimeout:    DefaultAPITimeout,
		LogLevel:      "info",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading settings file %s", path)
		}
		var f settingsFile
		if err := yaml.UnmarshalStrict(data, &f); err != nil {
			return nil, errors.Wrapf(err, "decoding settings file %s", path)
		}
		if err := s.apply(f); err != nil {
			return nil, errors.Wrapf(err, "invalid settings file %s", path)
		}
	}

	if err := s.apply(settingsFile{
		StatePath:     os.Getenv("ARTICLEBOT_STATE_PATH"),
		SweepInterval: os.Getenv("ARTICLEBOT_SWEEP_INTERVAL"),
		APITimeout:    os.Getenv("ARTICLEBOT_API_TIMEOUT"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}); err != nil {
		return nil, errors.Wrap(err, "invalid settings override in environment")
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) apply(f settingsFile) error {
	if f.StatePath != "" {
		s.StatePath = f.StatePath
	}
	if f.LogLevel != "" {
		s.LogLevel = f.LogLevel
	}
	if f.SweepInterval != "" {
		d, err := time.ParseDuration(f.SweepInterval)
		if err != nil {
			return errors.Wrap(err, "sweep_interval")
		}
		s.SweepInterval = d
	}
	if f.APITimeout != "" {
		d, err := time.ParseDuration(f.APITimeout)
		if err != nil {
			return errors.Wrap(err, "api_timeout")
		}
		s.APITimeout = d
	}
	return nil
}

func (s *Settings) validate() error {
	if s.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be positive, got %s", s.SweepInterval)
	}
	if s.APITimeout <= 0 {
		return fmt.Errorf("api_timeout must be positive, got %s", s.APITimeout)
	}
	return nil
}
