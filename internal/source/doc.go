// Package source loads sampled curves from files and HTTP endpoints.
//
// # Locations
//
// A location is either an http(s) URL or a file path. File paths support
// tilde expansion and are resolved to absolute paths:
//
//	fetcher, err := source.New("~/waves/tap.csv")
//	series, err := fetcher.FetchSeries(ctx)
//
//	// or in one step
//	series, err := source.Load(ctx, "http://127.0.0.1:8080/curve")
//
// # Formats
//
// The decoder is picked from the file extension, or from the Content-Type
// header for HTTP responses (JSON when absent):
//
//   - CSV: one "x,y" row per point. A non-numeric first row is treated as a
//     header. Blank lines and lines starting with '#' are skipped. Extra
//     columns are ignored.
//   - JSON: {"points": [{"x": 0, "y": 1}, ...]}, a bare array of point
//     objects, or a bare array of [x, y] pairs.
//   - YAML: points: [{x: 0, y: 1}, ...]
//   - TOML: [[points]] tables with x and y keys.
//
// Points keep file order and are indexed 0..n-1. Ordering is not checked
// here; the curve package rejects series whose x values do not increase.
//
// # Errors
//
// Missing files, unreadable bodies, HTTP status codes >= 400 and malformed
// documents are returned wrapped with the step that failed, for example
// "open samples: ..." or "decode csv: row 3: ...".
package source
