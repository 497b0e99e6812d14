package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/five82/contour/internal/curve"
	"github.com/five82/contour/internal/source"
	"github.com/five82/contour/internal/state"
)

// Refresher loads samples, fits them and publishes the result to a store.
type Refresher struct {
	fetcher source.Fetcher
	store   *state.Store
	logger  *slog.Logger

	// run serialises reloads and refits so results publish in call order.
	run sync.Mutex

	mu   sync.Mutex
	opts curve.FitOptions
	last curve.Series
}

// NewRefresher wires a fetcher to a store.
func NewRefresher(fetcher source.Fetcher, store *state.Store, opts curve.FitOptions, logger *slog.Logger) *Refresher {
	if opts.Steps == 0 {
		opts.Steps = curve.DefaultSteps
	}
	store.SetLocation(fetcher.Location())
	return &Refresher{fetcher: fetcher, store: store, logger: logger, opts: opts}
}

// Reload fetches the series again and refits it.
func (r *Refresher) Reload(ctx context.Context) error {
	r.run.Lock()
	defer r.run.Unlock()

	series, err := r.fetcher.FetchSeries(ctx)
	if err != nil {
		r.fail(fmt.Errorf("load %s: %w", r.fetcher.Location(), err))
		return err
	}

	r.mu.Lock()
	r.last = series
	r.mu.Unlock()

	return r.refit(ctx)
}

// Steps returns the current resample step count.
func (r *Refresher) Steps() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opts.Steps
}

// SetSteps changes the step count and refits the last loaded series.
func (r *Refresher) SetSteps(ctx context.Context, steps int) error {
	if steps < 1 || steps > curve.MaxSteps {
		return fmt.Errorf("%w: got %d", curve.ErrInvalidSteps, steps)
	}
	r.run.Lock()
	defer r.run.Unlock()

	r.mu.Lock()
	r.opts.Steps = steps
	r.mu.Unlock()
	return r.refit(ctx)
}

func (r *Refresher) refit(ctx context.Context) error {
	r.mu.Lock()
	series, opts := r.last, r.opts
	r.mu.Unlock()

	if series == nil {
		return nil
	}
	res, err := curve.Fit(ctx, series, opts)
	if err != nil {
		r.fail(fmt.Errorf("fit %s: %w", r.fetcher.Location(), err))
		return err
	}
	r.store.Update(&res, nil)
	r.logger.Info("curve fitted",
		"location", r.fetcher.Location(),
		"points", len(res.Input),
		"extremities", len(res.Extremities),
		"steps", res.Steps)
	return nil
}

func (r *Refresher) fail(err error) {
	r.store.Update(nil, err)
	r.logger.Warn("refresh failed", "error", err)
}

// LoadAndFit fetches location once and runs the fit pipeline.
func LoadAndFit(ctx context.Context, location string, opts curve.FitOptions) (curve.Result, error) {
	series, err := source.Load(ctx, location)
	if err != nil {
		return curve.Result{}, fmt.Errorf("load %s: %w", location, err)
	}
	res, err := curve.Fit(ctx, series, opts)
	if err != nil {
		return curve.Result{}, fmt.Errorf("fit %s: %w", location, err)
	}
	return res, nil
}
