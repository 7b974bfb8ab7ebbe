// Package applog wires up the structured logger shared by the CLI and the
// engine's diagnostics. Console output goes to stderr in human-readable
// form; a rotating-free append log under the user's state directory keeps
// a durable record of every calculation request.
package applog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)
}

// Init opens the on-disk log file under ~/.tentlayout/logs and fans output
// to both it and the console writer. Failure to open the file is non-fatal:
// the logger falls back to console-only.
func Init(debug bool) error {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	home, err := os.UserHomeDir()
	if err != nil {
		logger = zerolog.New(console).With().Timestamp().Logger().Level(level)
		return fmt.Errorf("resolve home directory: %w", err)
	}

	logDir := filepath.Join(home, ".tentlayout", "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger = zerolog.New(console).With().Timestamp().Logger().Level(level)
		return fmt.Errorf("create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, "tentlayout.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logger = zerolog.New(console).With().Timestamp().Logger().Level(level)
		return fmt.Errorf("open log file: %w", err)
	}

	var w io.Writer = zerolog.MultiLevelWriter(console, f)
	logger = zerolog.New(w).With().Timestamp().Logger().Level(level)
	return nil
}

// Logger returns the shared logger.
func Logger() *zerolog.Logger {
	return &logger
}

// WithComponent returns a child logger tagged with a component name, used
// to distinguish CLI, engine, and persistence log lines.
func WithComponent(name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
