// Package pattern converts fitted curves into haptic pattern documents.
//
// A pattern holds one continuous event spanning the curve and a chain of
// intensity parameter curves that follow the resampled envelope. The JSON
// layout matches the Apple Haptic and Audio Pattern (AHAP) format so the
// output can be played by any engine that reads it. Marshal checks every
// document against a bundled JSON Schema before it leaves the package.
package pattern

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/five82/contour/internal/curve"
)

// MaxControlPoints is the largest number of control points a single
// parameter curve may carry.
const MaxControlPoints = 16

const (
	formatVersion = 1.0

	eventContinuous  = "HapticContinuous"
	paramIntensity   = "HapticIntensity"
	paramSharpness   = "HapticSharpness"
	curveIntensity   = "HapticIntensityControl"
	defaultSharpness = 0.5
)

// Options tune the conversion.
type Options struct {
	// TimeScale converts x units to seconds; zero means 1.
	TimeScale float64
	// Sharpness of the continuous event in [0, 1]; nil means 0.5.
	Sharpness *float64
	// Description is copied into the metadata block.
	Description string
}

// Pattern is a haptic pattern document.
type Pattern struct {
	Version  float64  `json:"Version"`
	Metadata Metadata `json:"Metadata"`
	Pattern  []Entry  `json:"Pattern"`
}

// Metadata describes where a pattern came from.
type Metadata struct {
	Project     string `json:"Project"`
	Description string `json:"Description,omitempty"`
}

// Entry is either an event or a parameter curve.
type Entry struct {
	Event          *Event          `json:"Event,omitempty"`
	ParameterCurve *ParameterCurve `json:"ParameterCurve,omitempty"`
}

// Event is a haptic event.
type Event struct {
	Time            float64          `json:"Time"`
	EventType       string           `json:"EventType"`
	EventDuration   float64          `json:"EventDuration"`
	EventParameters []EventParameter `json:"EventParameters"`
}

// EventParameter is a static event parameter.
type EventParameter struct {
	ParameterID    string  `json:"ParameterID"`
	ParameterValue float64 `json:"ParameterValue"`
}

// ParameterCurve modulates a dynamic parameter over time.
type ParameterCurve struct {
	ParameterID   string         `json:"ParameterID"`
	Time          float64        `json:"Time"`
	ControlPoints []ControlPoint `json:"ParameterCurveControlPoints"`
}

// ControlPoint is a curve sample; Time is relative to the curve start.
type ControlPoint struct {
	Time           float64 `json:"Time"`
	ParameterValue float64 `json:"ParameterValue"`
}

var errNoSamples = errors.New("pattern needs at least 2 resampled points")

// Build converts a fitted curve into a pattern.
func Build(res curve.Result, opts Options) (Pattern, error) {
	samples := res.Resampled
	if len(samples) < 2 {
		return Pattern{}, errNoSamples
	}

	scale := opts.TimeScale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return Pattern{}, fmt.Errorf("time scale must be positive, got %g", scale)
	}
	sharpness := defaultSharpness
	if opts.Sharpness != nil {
		sharpness = *opts.Sharpness
	}
	if sharpness < 0 || sharpness > 1 {
		return Pattern{}, fmt.Errorf("sharpness must be within [0, 1], got %g", sharpness)
	}

	start := samples[0].X
	times := make([]float64, len(samples))
	for i, p := range samples {
		times[i] = (p.X - start) * scale
	}
	values := Normalize(samples.Ys())

	p := Pattern{
		Version:  formatVersion,
		Metadata: Metadata{Project: "contour", Description: opts.Description},
		Pattern: []Entry{{Event: &Event{
			Time:          0,
			EventType:     eventContinuous,
			EventDuration: times[len(times)-1],
			EventParameters: []EventParameter{
				{ParameterID: paramIntensity, ParameterValue: 1},
				{ParameterID: paramSharpness, ParameterValue: sharpness},
			},
		}}},
	}
	for _, c := range splitCurves(times, values) {
		p.Pattern = append(p.Pattern, Entry{ParameterCurve: c})
	}
	return p, nil
}

// Duration is the start time of the last event or parameter curve, plus
// that event's duration or the curve's last control point offset.
func (p Pattern) Duration() float64 {
	var end float64
	for _, e := range p.Pattern {
		switch {
		case e.Event != nil:
			end = max(end, e.Event.Time+e.Event.EventDuration)
		case e.ParameterCurve != nil:
			c := e.ParameterCurve
			last := c.Time
			if n := len(c.ControlPoints); n > 0 {
				last += c.ControlPoints[n-1].Time
			}
			end = max(end, last)
		}
	}
	return end
}

// Normalize maps values onto [0, 1] over their own range. A flat input maps
// to all ones.
func Normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	for i, v := range values {
		if span == 0 {
			out[i] = 1
			continue
		}
		out[i] = (v - lo) / span
	}
	return out
}

// splitCurves chains parameter curves of at most MaxControlPoints points.
// Each curve after the first starts on the previous curve's last point.
func splitCurves(times, values []float64) []*ParameterCurve {
	var curves []*ParameterCurve
	for from := 0; from < len(times)-1; from += MaxControlPoints - 1 {
		to := min(from+MaxControlPoints, len(times))
		c := &ParameterCurve{ParameterID: curveIntensity, Time: times[from]}
		for i := from; i < to; i++ {
			c.ControlPoints = append(c.ControlPoints, ControlPoint{
				Time:           times[i] - times[from],
				ParameterValue: values[i],
			})
		}
		curves = append(curves, c)
	}
	return curves
}

// Encode writes p as indented JSON.
func Encode(w io.Writer, p Pattern) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode pattern: %w", err)
	}
	return nil
}
