// Package logging builds the slog loggers used by contour.
//
// The previewer owns the terminal, so it logs to a file. Batch subcommands
// log to stderr when verbose and discard everything otherwise.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options select the log destination.
type Options struct {
	Level slog.Level
	// File receives logs when non-empty.
	File string
	// Writer receives logs when File is empty. Nil discards.
	Writer io.Writer
}

// New returns a logger and a close function for its destination.
func New(opts Options) (*slog.Logger, func() error, error) {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	if path := strings.TrimSpace(opts.File); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(file, handlerOpts)), file.Close, nil
	}

	if opts.Writer != nil {
		return slog.New(slog.NewTextHandler(opts.Writer, handlerOpts)), nopClose, nil
	}
	return Discard(), nopClose, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func nopClose() error { return nil }
