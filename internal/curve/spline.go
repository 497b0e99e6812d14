package curve

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// MaxSteps bounds the step count accepted by Resample.
const MaxSteps = 1 << 20

// ctxCheckEvery is how many evaluations a parallel worker runs between
// context checks.
const ctxCheckEvery = 1024

// Spline is a natural cubic spline fitted through control points.
type Spline struct {
	pred interp.FittablePredictor
	span Domain
}

// NewSpline fits a spline through control. Two control points produce a
// straight line.
func NewSpline(control Series) (*Spline, error) {
	if err := control.Validate(); err != nil {
		return nil, err
	}
	var pred interp.FittablePredictor
	if len(control) == 2 {
		pred = &interp.PiecewiseLinear{}
	} else {
		pred = &interp.NaturalCubic{}
	}
	if err := pred.Fit(control.Xs(), control.Ys()); err != nil {
		return nil, fmt.Errorf("fit spline: %w", err)
	}
	return &Spline{
		pred: pred,
		span: Domain{Min: control[0].X, Max: control[len(control)-1].X},
	}, nil
}

// At evaluates the spline at x. Values outside the control range hold the
// nearest endpoint.
func (s *Spline) At(x float64) float64 {
	return s.pred.Predict(math.Min(math.Max(x, s.span.Min), s.span.Max))
}

// Span returns the x range of the control points.
func (s *Spline) Span() Domain {
	return s.span
}

// Grid returns steps+1 uniformly spaced x values from d.Min to d.Max. The
// first and last values are exactly the bounds.
func Grid(d Domain, steps int) ([]float64, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if steps < 1 || steps > MaxSteps {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}
	xs := floats.Span(make([]float64, steps+1), d.Min, d.Max)
	xs[0], xs[steps] = d.Min, d.Max
	return xs, nil
}

// Resample fits a natural cubic spline through control and evaluates it at
// steps+1 uniform positions across domain.
func Resample(control Series, domain Domain, steps int) (Series, error) {
	spline, xs, err := prepare(control, domain, steps)
	if err != nil {
		return nil, err
	}
	out := make(Series, len(xs))
	spline.fill(out, xs, 0, len(xs))
	return out, nil
}

// ResampleParallel is Resample with evaluation split across workers
// goroutines. workers <= 0 uses GOMAXPROCS. The result is identical to
// Resample for the same inputs.
func ResampleParallel(ctx context.Context, control Series, domain Domain, steps, workers int) (Series, error) {
	spline, xs, err := prepare(control, domain, steps)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(xs))

	out := make(Series, len(xs))
	chunk := (len(xs) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(xs); start += chunk {
		end := min(start+chunk, len(xs))
		g.Go(func() error {
			for from := start; from < end; from += ctxCheckEvery {
				if err := ctx.Err(); err != nil {
					return err
				}
				spline.fill(out, xs, from, min(from+ctxCheckEvery, end))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}
	return out, nil
}

func prepare(control Series, domain Domain, steps int) (*Spline, []float64, error) {
	xs, err := Grid(domain, steps)
	if err != nil {
		return nil, nil, err
	}
	spline, err := NewSpline(control)
	if err != nil {
		return nil, nil, err
	}
	return spline, xs, nil
}

func (s *Spline) fill(out Series, xs []float64, from, to int) {
	for i := from; i < to; i++ {
		out[i] = SamplePoint{Index: i, X: xs[i], Y: s.At(xs[i])}
	}
}
