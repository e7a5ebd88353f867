// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	if err := logging.Setup(); err != nil { ... }  // level etc. from env
//	logging.SetupWithLevel(slog.LevelDebug)        // explicit level override
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
//	LOG_ADD_SOURCE: include file:line in records (default: true)
//	LOG_TIME_FORMAT: Go time layout for timestamps (default: 3:04PM)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/mmynk/mathproblems/internal/config"
)

// EnvPrefix is prepended to every Config env tag.
const EnvPrefix = "LOG_"

// Config holds the logging settings read from the environment
type Config struct {
	Level      string `env:"LEVEL" envDefault:"info"`
	AddSource  bool   `env:"ADD_SOURCE" envDefault:"true"`
	TimeFormat string `env:"TIME_FORMAT" envDefault:"3:04PM"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnvPrefix(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load logging config: %w", err)
	}
	return cfg, nil
}

// Setup configures colored logging from the environment.
func Setup() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(NewHandler(os.Stderr, cfg)))
	return nil
}

// SetupWithLevel configures colored logging at the given level, ignoring
// LOG_LEVEL.
func SetupWithLevel(level slog.Level) {
	cfg := Config{AddSource: true, TimeFormat: time.Kitchen}
	slog.SetDefault(slog.New(newHandler(os.Stderr, level, cfg)))
}

// NewHandler returns a tint handler writing to w with the settings in cfg.
func NewHandler(w io.Writer, cfg Config) slog.Handler {
	return newHandler(w, ParseLevel(cfg.Level), cfg)
}

func newHandler(w io.Writer, level slog.Leveler, cfg Config) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: cfg.TimeFormat,
		AddSource:  cfg.AddSource,
		NoColor:    !isTerminal(w),
	})
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
