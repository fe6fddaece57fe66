// Package logger holds the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var base atomic.Pointer[zerolog.Logger]

// Init configures the global JSON logger from the environment.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error (default: info)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	Configure(getenv("LOG_LEVEL", "info"), strings.EqualFold(getenv("LOG_PRETTY", "false"), "true"), os.Stdout)
}

// Configure replaces the global logger. pretty switches to zerolog's console writer,
// meant for the CLI and local runs.
func Configure(level string, pretty bool, w io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(w).With().Timestamp().Str("service", "b3charts").Logger().Level(parseLevel(level))
	base.Store(&l)
}

// L returns the global logger, initializing it from the environment on first use.
func L() *zerolog.Logger {
	if l := base.Load(); l != nil {
		return l
	}
	Init()
	return base.Load()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
