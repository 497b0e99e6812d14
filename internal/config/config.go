package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/contour/internal/curve"
)

// Config captures contour's runtime settings.
type Config struct {
	Steps     int
	Domain    *curve.Domain // nil uses the input x range
	Workers   int
	PollEvery time.Duration
	LogFile   string
	LogLevel  slog.Level
}

const (
	defaultConfigPath = "~/.config/contour/config.toml"
	defaultLogFile    = "~/.local/state/contour/contour.log"
	defaultSteps      = curve.DefaultSteps
	defaultWorkers    = 1
	defaultPoll       = 2 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Steps:     defaultSteps,
		Workers:   defaultWorkers,
		PollEvery: defaultPoll,
		LogFile:   mustExpand(defaultLogFile),
		LogLevel:  slog.LevelInfo,
	}
}

// Load locates and parses the contour config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Steps       *int     `toml:"steps"`
		DomainMin   *float64 `toml:"domain_min"`
		DomainMax   *float64 `toml:"domain_max"`
		Workers     *int     `toml:"workers"`
		PollSeconds *int     `toml:"poll_seconds"`
		LogFile     string   `toml:"log_file"`
		LogLevel    string   `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.Steps != nil {
		if *raw.Steps < 1 || *raw.Steps > curve.MaxSteps {
			return Config{}, fmt.Errorf("invalid config: steps must be within [1, %d], got %d", curve.MaxSteps, *raw.Steps)
		}
		cfg.Steps = *raw.Steps
	}

	switch {
	case raw.DomainMin != nil && raw.DomainMax != nil:
		d := curve.Domain{Min: *raw.DomainMin, Max: *raw.DomainMax}
		if err := d.Validate(); err != nil {
			return Config{}, fmt.Errorf("invalid config: %w", err)
		}
		cfg.Domain = &d
	case raw.DomainMin != nil || raw.DomainMax != nil:
		return Config{}, fmt.Errorf("invalid config: domain_min and domain_max must be set together")
	}

	if raw.Workers != nil && *raw.Workers > 0 {
		cfg.Workers = *raw.Workers
	}
	if raw.PollSeconds != nil && *raw.PollSeconds > 0 {
		cfg.PollEvery = time.Duration(*raw.PollSeconds) * time.Second
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("invalid config: log_level: %w", err)
		}
	}

	return cfg, nil
}

// FitOptions converts the config into curve pipeline options.
func (c Config) FitOptions() curve.FitOptions {
	return curve.FitOptions{Steps: c.Steps, Domain: c.Domain, Workers: c.Workers}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
