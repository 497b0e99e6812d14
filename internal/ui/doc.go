// Package ui provides the terminal previewer for contour.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds view state and the latest
// state.Snapshot; it polls the store on a tick and never touches the curve
// pipeline directly. Reloads and step changes go through the Controller
// interface, run as commands off the update loop, and report back with an
// actionMsg.
//
// # Package Structure
//
//   - app.go: Model, Update/View, key handling, commands and Run
//   - chart.go: character rasterizer and the chart view
//   - points.go: extremity and resampled tables (go-pretty) in a viewport
//   - logs.go: tail of contour's own log file, colored by level
//   - header.go: status line and command bar
//   - help.go: help overlay built from the key map
//   - theme.go: Dracula and Slate palettes and Lipgloss styles
//   - style_helpers.go: background-safe rendering helpers
//
// # Chart
//
// The resampled spline is drawn with • and joined vertically across steep
// segments. Extremities are overlaid as ▲ maxima, ▼ minima and ● endpoints;
// raw samples as ·. Markers always win over the line. Axis labels use SI
// prefixes.
//
// # Keys
//
//   - +/-: double or halve the step count (1 to 4096)
//   - x, s: toggle extremity markers and raw samples
//   - tab: cycle chart, points and log views
//   - l: toggle the log view
//   - r: reload the source
//   - T: cycle theme
//   - h/?: help
//   - e, ctrl+c: quit
//
// Theme and toggles are persisted to the prefs file on change.
package ui
