package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/studiowebux/reqline/internal/types"
)

// ErrInvalid is wrapped by every settings validation failure
var ErrInvalid = errors.New("invalid settings")

// EnvPrefix prefixes every environment override
const EnvPrefix = "REQLINE_"

// Settings are the user tunables
type Settings struct {
	TickRate      time.Duration  `yaml:"tick_rate" env:"TICK_RATE"`
	FrameRate     float64        `yaml:"frame_rate" env:"FRAME_RATE"`
	Timeout       time.Duration  `yaml:"timeout" env:"TIMEOUT"`
	DefaultMethod types.Method   `yaml:"default_method" env:"DEFAULT_METHOD"`
	LogLevel      string         `yaml:"log_level" env:"LOG_LEVEL"`
	Headers       []types.Header `yaml:"headers"`
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		TickRate:      250 * time.Millisecond,
		FrameRate:     0,
		Timeout:       30 * time.Second,
		DefaultMethod: types.MethodGet,
		LogLevel:      "info",
	}
}

// Load reads settings from path on top of the defaults, then applies
// REQLINE_* environment overrides and validates the result. A missing file
// is not an error.
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return s, fmt.Errorf("failed to read settings: %w", err)
		default:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return s, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return s, fmt.Errorf("failed to apply environment: %w", err)
	}

	if err := s.validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	if s.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %s", ErrInvalid, s.TickRate)
	}
	if s.FrameRate < 0 || s.FrameRate > 240 {
		return fmt.Errorf("%w: frame_rate must be between 0 and 240, got %g", ErrInvalid, s.FrameRate)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalid, s.Timeout)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for i, h := range s.Headers {
		if strings.TrimSpace(h.Name) == "" {
			return fmt.Errorf("%w: headers[%d] has no name", ErrInvalid, i)
		}
	}
	return nil
}

// Level returns the parsed log level. Only valid after Load.
func (s Settings) Level() slog.Level {
	level, _ := ParseLevel(s.LogLevel)
	return level
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}
