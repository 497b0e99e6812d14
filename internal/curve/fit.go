package curve

import (
	"context"
	"fmt"
)

// DefaultSteps is the step count used when FitOptions.Steps is zero.
const DefaultSteps = 200

// FitOptions tune the Fit pipeline.
type FitOptions struct {
	// Steps is the resample step count; zero uses DefaultSteps.
	Steps int
	// Domain overrides the output range; nil uses the input x range.
	Domain *Domain
	// Workers > 1 resamples in parallel.
	Workers int
}

// Result is the output of the Fit pipeline.
type Result struct {
	Input       Series
	Extremities Series
	Resampled   Series
	Domain      Domain
	Steps       int
}

// Fit validates points, extracts their extremities and resamples them across
// the resolved domain.
func Fit(ctx context.Context, points Series, opts FitOptions) (Result, error) {
	if err := points.Validate(); err != nil {
		return Result{}, err
	}

	steps := opts.Steps
	if steps == 0 {
		steps = DefaultSteps
	}

	domain, _ := points.Bounds()
	if opts.Domain != nil {
		domain = *opts.Domain
	}

	extremities := Extremities(points)

	var (
		resampled Series
		err       error
	)
	if opts.Workers > 1 {
		resampled, err = ResampleParallel(ctx, extremities, domain, steps, opts.Workers)
	} else {
		resampled, err = Resample(extremities, domain, steps)
	}
	if err != nil {
		return Result{}, fmt.Errorf("resample extremities: %w", err)
	}

	return Result{
		Input:       points.Clone(),
		Extremities: extremities,
		Resampled:   resampled,
		Domain:      domain,
		Steps:       steps,
	}, nil
}

// Kinds classifies the result's extremities by input index.
func (r Result) Kinds() map[int]Kind {
	kinds := make(map[int]Kind, len(r.Extremities))
	for i, p := range r.Input {
		if k := Classify(r.Input, i); k != KindNone {
			kinds[p.Index] = k
		}
	}
	return kinds
}
