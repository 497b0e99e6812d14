package ui

import "time"

// Screen regions.
const (
	// HeaderRows is the number of rows used by the status line and command bar.
	HeaderRows = 2

	// AxisLabelWidth is the width reserved for y-axis labels.
	AxisLabelWidth = 8

	// MinPlotWidth and MinPlotHeight are the smallest plot area drawn.
	MinPlotWidth  = 10
	MinPlotHeight = 4
)

// Step limits for interactive resampling.
const (
	MinViewSteps = 1
	MaxViewSteps = 4096
)

// LogTailLines is the number of log lines kept by the log view.
const LogTailLines = 500

// Timing constants.
const (
	// DefaultUIInterval is the default snapshot refresh interval.
	DefaultUIInterval = time.Second

	// ActionTimeout bounds a reload or refit triggered from the keyboard.
	ActionTimeout = 10 * time.Second
)
