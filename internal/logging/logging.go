// Package logging sets up zerolog for both binaries. The TUI owns the
// terminal, so the client logs to a file under its config dir; the server
// logs to stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// NewFileLogger opens (or creates) todoterm.log inside dir and returns a
// logger writing to it. The caller closes the returned file on exit.
func NewFileLogger(dir, level string) (zerolog.Logger, *os.File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("mkdir: %w", err)
	}
	p := filepath.Join(dir, "todoterm.log")
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log: %w", err)
	}
	logger := zerolog.New(f).Level(parseLevel(level)).With().Timestamp().Logger()
	return logger, f, nil
}

// NewConsoleLogger returns a stderr console logger for the dev backend.
func NewConsoleLogger(level string) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
}
