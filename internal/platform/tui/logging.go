package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the session logger. The TUI owns the terminal, so
// output goes to path when one is given and is discarded otherwise.
// The returned close function is never nil.
func NewLogger(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: log level: %w", err)
	}

	if path == "" {
		logger := NopLogger()
		logger.SetLevel(lvl)
		return logger, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           lvl,
	})
	return logger, f.Close, nil
}

// NopLogger returns a logger that writes nowhere.
func NopLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
