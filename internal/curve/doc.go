// Package curve extracts extremities from sampled curves and resamples them
// with a natural cubic spline.
//
// # Overview
//
// A sampled curve is a [Series] of [SamplePoint] values ordered along the x
// axis. The package provides two pure transforms and a pipeline that chains
// them:
//
//  1. [Extremities]: keep the endpoints plus every interior strict local
//     minimum or maximum
//  2. [Resample]: fit a natural cubic spline through control points and
//     evaluate it at uniform steps across a closed [Domain]
//  3. [Fit]: validate, extract, resolve the domain and resample
//
// # Extremities
//
// An interior point is a local minimum when its y value is strictly less than
// both neighbours and a local maximum when strictly greater. Plateaus (equal
// neighbour values) never qualify. The first and last points are always kept,
// so the result of a series with at least two points is never empty and keeps
// the input x ordering.
//
//	(0,0) (1,5) (2,1) (3,5) (4,0)  ->  all five points
//	(0,0) (1,1) (2,2) (3,3)        ->  (0,0) (3,3)
//
// # Resampling
//
// The spline has zero second derivative at both ends (a natural spline). Two
// control points degenerate to a straight line. Evaluation points outside the
// control range hold the value of the nearest control point.
//
// Resampling with n steps yields n+1 points whose x values are uniformly
// spaced; the first and last x are exactly the domain bounds.
//
// # Errors
//
// Malformed input is reported with sentinel errors rather than panics:
//
//   - [ErrTooFewPoints]: fewer than two points
//   - [ErrNotIncreasing]: x values not strictly increasing
//   - [ErrNonFinite]: NaN or infinite coordinates
//   - [ErrInvalidSteps]: step count below one
//   - [ErrInvalidDomain]: empty, inverted or non-finite domain
//
// Match them with errors.Is.
//
// # Concurrency
//
// Every function is pure. [ResampleParallel] splits evaluation into
// contiguous chunks run on an errgroup; each worker writes a disjoint range of
// the output so ordering by x is preserved without coordination.
package curve
