// Package logging configures the zerolog logger shared by every shutter package.
//
// The TUI owns the terminal, so interactive runs log to a file. One-shot CLI
// runs may log to stderr through the console writer instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options select where and how verbosely logs are written.
type Options struct {
	Level   string
	Path    string    // log file; ignored when Output is set
	Output  io.Writer // explicit sink, e.g. os.Stderr
	Console bool      // human-readable output instead of JSON lines
}

// Setup configures the global logger and returns a closer for the log file.
func Setup(opts Options) (zerolog.Logger, func() error, error) {
	zerolog.SetGlobalLevel(ParseLevel(opts.Level))

	out := opts.Output
	closer := func() error { return nil }
	if out == nil {
		if strings.TrimSpace(opts.Path) == "" {
			out = io.Discard
		} else {
			file, err := openLogFile(opts.Path)
			if err != nil {
				return zerolog.Nop(), closer, err
			}
			out = file
			closer = file.Close
		}
	}
	if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	log.Logger = logger
	return logger, closer, nil
}

// New returns a sub-logger tagged with the given component.
func New(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// ParseLevel maps a config level to zerolog, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
