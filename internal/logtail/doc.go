// Package logtail reads the tail of contour's log file for the previewer's
// log view.
//
// Read keeps the last N lines with a ring buffer, so it never holds more
// than N lines regardless of file size. A missing file is not an error; the
// log file only appears after the first record is written.
//
// Parse splits a line produced by slog's text handler into time, level,
// message and the remaining attributes, unquoting quoted values. The UI uses
// the level to pick a color.
package logtail
