package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Steps != defaultSteps {
		t.Fatalf("Steps = %d, want %d", cfg.Steps, defaultSteps)
	}
	if cfg.Domain != nil {
		t.Fatalf("Domain = %#v, want nil", cfg.Domain)
	}
	if cfg.PollEvery != defaultPoll {
		t.Fatalf("PollEvery = %v, want %v", cfg.PollEvery, defaultPoll)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_ParsesConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
steps = 64
domain_min = -1.5
domain_max = 3.0
workers = 4
poll_seconds = 5
log_file = "  ~/logs/contour.log  "
log_level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Steps != 64 || cfg.Workers != 4 {
		t.Fatalf("Steps/Workers = %d/%d, want 64/4", cfg.Steps, cfg.Workers)
	}
	if cfg.Domain == nil || cfg.Domain.Min != -1.5 || cfg.Domain.Max != 3 {
		t.Fatalf("Domain = %#v, want [-1.5, 3]", cfg.Domain)
	}
	if cfg.PollEvery != 5*time.Second {
		t.Fatalf("PollEvery = %v, want 5s", cfg.PollEvery)
	}
	if cfg.LogFile != filepath.Join(home, "logs/contour.log") {
		t.Fatalf("LogFile = %q, want it under HOME", cfg.LogFile)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("LogLevel = %v, want debug", cfg.LogLevel)
	}

	opts := cfg.FitOptions()
	if opts.Steps != 64 || opts.Domain != cfg.Domain || opts.Workers != 4 {
		t.Fatalf("FitOptions = %#v, want config values", opts)
	}
}

func TestLoad_NonPositiveValuesUseDefaults(t *testing.T) {
	path := writeConfig(t, `
workers = 0
poll_seconds = -3
log_file = "   "
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Workers != defaultWorkers || cfg.PollEvery != defaultPoll {
		t.Fatalf("Workers/PollEvery = %d/%v, want defaults", cfg.Workers, cfg.PollEvery)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad toml", `steps = [`, "parse config"},
		{"zero steps", `steps = 0`, "steps"},
		{"one bound", `domain_min = 1.0`, "set together"},
		{"inverted domain", "domain_min = 2.0\ndomain_max = 1.0", "domain"},
		{"bad level", `log_level = "loud"`, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_OnlyExpandsOwnHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if got != home {
		t.Fatalf("expandPath(~) = %q, want %q", got, home)
	}

	got, err = expandPath("~other/config.toml")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if strings.HasPrefix(got, home) {
		t.Fatalf("expandPath(~other/config.toml) = %q, want it outside %q", got, home)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
