package curve

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
)

var (
	ErrTooFewPoints  = errors.New("curve needs at least 2 points")
	ErrNotIncreasing = errors.New("x values must be strictly increasing")
	ErrNonFinite     = errors.New("coordinates must be finite")
	ErrInvalidSteps  = errors.New("step count must be at least 1")
	ErrInvalidDomain = errors.New("domain must satisfy min < max")
)

// SamplePoint is one function evaluation along the x axis.
type SamplePoint struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Series is an ordered run of sample points.
type Series []SamplePoint

// Domain is a closed range [Min, Max].
type Domain struct {
	Min float64 `json:"min" toml:"min"`
	Max float64 `json:"max" toml:"max"`
}

// Span returns Max - Min.
func (d Domain) Span() float64 {
	return d.Max - d.Min
}

// Contains reports whether v lies inside the closed range.
func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// Validate checks that the domain is finite and non-empty, and that its span
// does not overflow.
func (d Domain) Validate() error {
	if !finite(d.Min) || !finite(d.Max) || d.Min >= d.Max || !finite(d.Span()) {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidDomain, d.Min, d.Max)
	}
	return nil
}

// NewSeries builds a series from parallel coordinate slices, indexing points
// in order. Extra values in the longer slice are ignored.
func NewSeries(xs, ys []float64) Series {
	n := min(len(xs), len(ys))
	out := make(Series, n)
	for i := 0; i < n; i++ {
		out[i] = SamplePoint{Index: i, X: xs[i], Y: ys[i]}
	}
	return out
}

// Xs returns the x coordinates.
func (s Series) Xs() []float64 {
	return lo.Map(s, func(p SamplePoint, _ int) float64 { return p.X })
}

// Ys returns the y coordinates.
func (s Series) Ys() []float64 {
	return lo.Map(s, func(p SamplePoint, _ int) float64 { return p.Y })
}

// Clone returns an independent copy.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	dup := make(Series, len(s))
	copy(dup, s)
	return dup
}

// Reindex returns a copy whose indices run 0..len-1.
func (s Series) Reindex() Series {
	return lo.Map(s, func(p SamplePoint, i int) SamplePoint {
		p.Index = i
		return p
	})
}

// Bounds returns the x and y ranges covered by the series. An empty series
// yields zero ranges.
func (s Series) Bounds() (x, y Domain) {
	if len(s) == 0 {
		return Domain{}, Domain{}
	}
	x = Domain{Min: s[0].X, Max: s[0].X}
	y = Domain{Min: s[0].Y, Max: s[0].Y}
	for _, p := range s[1:] {
		x.Min = math.Min(x.Min, p.X)
		x.Max = math.Max(x.Max, p.X)
		y.Min = math.Min(y.Min, p.Y)
		y.Max = math.Max(y.Max, p.Y)
	}
	return x, y
}

// Validate reports whether the series can drive a spline: at least two
// finite points with strictly increasing x.
func (s Series) Validate() error {
	if len(s) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(s))
	}
	for i, p := range s {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("%w: point %d is (%g, %g)", ErrNonFinite, i, p.X, p.Y)
		}
		if i > 0 && p.X <= s[i-1].X {
			return fmt.Errorf("%w: point %d has x=%g after x=%g", ErrNotIncreasing, i, p.X, s[i-1].X)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
