package source

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/five82/contour/internal/curve"
)

func TestDecode_Formats(t *testing.T) {
	want := curve.Series{
		{Index: 0, X: 0, Y: 0},
		{Index: 1, X: 1, Y: 5},
		{Index: 2, X: 2.5, Y: -1},
	}

	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"csv", FormatCSV, "0,0\n1,5\n2.5,-1\n"},
		{"csv with header and comments", FormatCSV, "# tap\nx,y\n0, 0\n\n1,5,extra\n2.5,-1\n"},
		{"json object", FormatJSON, `{"points":[{"x":0,"y":0},{"x":1,"y":5},{"x":2.5,"y":-1}]}`},
		{"json pairs", FormatJSON, `[[0,0],[1,5],[2.5,-1]]`},
		{"json objects", FormatJSON, ` [{"x":0,"y":0},{"x":1,"y":5},{"x":2.5,"y":-1}]`},
		{"yaml", FormatYAML, "points:\n  - {x: 0, y: 0}\n  - {x: 1, y: 5}\n  - {x: 2.5, y: -1}\n"},
		{"toml", FormatTOML, "[[points]]\nx = 0.0\ny = 0.0\n[[points]]\nx = 1.0\ny = 5.0\n[[points]]\nx = 2.5\ny = -1.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("Decode = %#v, want %#v", got, want)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		want   string
	}{
		{"csv bad row", FormatCSV, "0,0\n1,abc\n", "row 2"},
		{"csv single column", FormatCSV, "0\n", "want x,y"},
		{"json empty", FormatJSON, "  ", "empty document"},
		{"json short pair", FormatJSON, "[[1]]", "want [x, y]"},
		{"json garbage", FormatJSON, "{", "decode json"},
		{"yaml garbage", FormatYAML, "points: [", "decode yaml"},
		{"toml garbage", FormatTOML, "points = [", "decode toml"},
		{"unknown", Format("xml"), "<x/>", "unknown sample format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatalf("Decode returned nil error, want %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Decode error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	cases := map[string]Format{
		"a.csv":  FormatCSV,
		"a.TXT":  FormatCSV,
		"a.json": FormatJSON,
		"a.yml":  FormatYAML,
		"a.yaml": FormatYAML,
		"a.toml": FormatTOML,
	}
	for path, want := range cases {
		got, err := FormatForPath(path)
		if err != nil {
			t.Fatalf("FormatForPath(%q) returned error: %v", path, err)
		}
		if got != want {
			t.Fatalf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
	if _, err := FormatForPath("a.wav"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("FormatForPath(a.wav) error = %v, want ErrUnknownFormat", err)
	}
}

func TestFormatForContentType(t *testing.T) {
	cases := map[string]Format{
		"":                                FormatJSON,
		"application/json; charset=utf-8": FormatJSON,
		"text/csv":                        FormatCSV,
		"application/yaml":                FormatYAML,
		"application/toml":                FormatTOML,
		"garbage;;":                       FormatJSON,
	}
	for ct, want := range cases {
		if got := FormatForContentType(ct); got != want {
			t.Fatalf("FormatForContentType(%q) = %q, want %q", ct, got, want)
		}
	}
}
