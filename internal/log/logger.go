// FILE: lixenwraith/dconf/internal/log/logger.go

// Package log configures the zerolog logger used by the command-line tool.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Field names shared by log entries
const (
	FieldComponent = "component"
	FieldKey       = "key"
	FieldDir       = "dir"
	FieldFormat    = "format"
)

// Config captures options for building a logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Console bool      // human-readable output instead of JSON
}

// New builds a logger from cfg. The level comes from cfg.Level, then LOG_LEVEL;
// empty or unknown names are skipped and warn applies when neither parses.
func New(cfg Config) zerolog.Logger {
	level := zerolog.WarnLevel
	for _, name := range []string{cfg.Level, os.Getenv("LOG_LEVEL")} {
		if name == "" {
			continue
		}
		if parsed, err := zerolog.ParseLevel(name); err == nil {
			level = parsed
			break
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if cfg.Console {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.RFC3339}
	}

	return zerolog.New(writer).Level(level).With().
		Timestamp().
		Logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str(FieldComponent, component).Logger()
}
