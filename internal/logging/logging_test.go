package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "contour.log")

	logger, closeFn, err := New(Options{Level: slog.LevelInfo, File: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("reloaded", "points", 5)
	if err := closeFn(); err != nil {
		t.Fatalf("close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "msg=reloaded") || !strings.Contains(out, "points=5") {
		t.Fatalf("log output = %q, want reloaded points=5", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("log output = %q, debug should be filtered", out)
	}
}

func TestNew_Writer(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Level: slog.LevelDebug, Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("fit", "steps", 10)
	if !strings.Contains(buf.String(), "steps=10") {
		t.Fatalf("output = %q, want steps=10", buf.String())
	}
}

func TestNew_DiscardsByDefault(t *testing.T) {
	logger, closeFn, err := New(Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("default logger should be disabled")
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close returned error: %v", err)
	}
}
