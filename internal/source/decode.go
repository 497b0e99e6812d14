package source

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/contour/internal/curve"
)

// Format identifies a sample document encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for unsupported extensions.
var ErrUnknownFormat = errors.New("unknown sample format")

type pointDoc struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

type seriesDoc struct {
	Points []pointDoc `json:"points" yaml:"points" toml:"points"`
}

// FormatForPath picks a format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// FormatForContentType picks a format from an HTTP Content-Type header,
// defaulting to JSON.
func FormatForContentType(contentType string) Format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return FormatJSON
	}
	switch {
	case strings.HasSuffix(mediaType, "csv"):
		return FormatCSV
	case strings.HasSuffix(mediaType, "yaml"):
		return FormatYAML
	case strings.HasSuffix(mediaType, "toml"):
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Decode parses a sample document.
func Decode(r io.Reader, format Format) (curve.Series, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}
	switch format {
	case FormatCSV:
		return decodeCSV(data)
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		var doc seriesDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return toSeries(doc.Points), nil
	case FormatTOML:
		var doc seriesDoc
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		return toSeries(doc.Points), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func decodeJSON(data []byte) (curve.Series, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decode json: empty document")
	}
	if trimmed[0] == '{' {
		var doc seriesDoc
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return toSeries(doc.Points), nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	points := make([]pointDoc, 0, len(raw))
	for i, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '[' {
			var pair []float64
			if err := json.Unmarshal(item, &pair); err != nil {
				return nil, fmt.Errorf("decode json: point %d: %w", i, err)
			}
			if len(pair) < 2 {
				return nil, fmt.Errorf("decode json: point %d: want [x, y], got %d values", i, len(pair))
			}
			points = append(points, pointDoc{X: pair[0], Y: pair[1]})
			continue
		}
		var p pointDoc
		if err := json.Unmarshal(item, &p); err != nil {
			return nil, fmt.Errorf("decode json: point %d: %w", i, err)
		}
		points = append(points, p)
	}
	return toSeries(points), nil
}

func decodeCSV(data []byte) (curve.Series, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}

	points := make([]pointDoc, 0, len(records))
	for i, record := range records {
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("decode csv: row %d: want x,y", i+1)
		}
		x, errX := parseFloat(record[0])
		y, errY := parseFloat(record[1])
		if errX != nil || errY != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("decode csv: row %d: %w", i+1, errors.Join(errX, errY))
		}
		points = append(points, pointDoc{X: x, Y: y})
	}
	return toSeries(points), nil
}

func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}

func toSeries(points []pointDoc) curve.Series {
	out := make(curve.Series, len(points))
	for i, p := range points {
		out[i] = curve.SamplePoint{Index: i, X: p.X, Y: p.Y}
	}
	return out
}
