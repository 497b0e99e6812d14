package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/contour/internal/curve"
)

// Fetcher produces a sampled curve. It is implemented by *File and *Client.
type Fetcher interface {
	FetchSeries(ctx context.Context) (curve.Series, error)
	Location() string
}

// File reads a sample document from disk.
type File struct {
	Path   string
	Format Format
}

// Ensure File implements Fetcher at compile time.
var _ Fetcher = (*File)(nil)

// NewFile resolves path and picks its format from the extension.
func NewFile(path string) (*File, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	format, err := FormatForPath(resolved)
	if err != nil {
		return nil, err
	}
	return &File{Path: resolved, Format: format}, nil
}

// Location returns the resolved file path.
func (f *File) Location() string {
	return f.Path
}

// FetchSeries opens and decodes the file.
func (f *File) FetchSeries(ctx context.Context) (curve.Series, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open samples: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Decode(file, f.Format)
}

// IsRemote reports whether location is an http(s) URL.
func IsRemote(location string) bool {
	lower := strings.ToLower(strings.TrimSpace(location))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// New returns the Fetcher matching location.
func New(location string) (Fetcher, error) {
	if IsRemote(location) {
		return NewClient(location)
	}
	return NewFile(location)
}

// Load fetches the series at location in one step.
func Load(ctx context.Context, location string) (curve.Series, error) {
	fetcher, err := New(location)
	if err != nil {
		return nil, err
	}
	return fetcher.FetchSeries(ctx)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
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
