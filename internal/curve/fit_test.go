package curve

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit_DefaultsToInputRange(t *testing.T) {
	in := pts(1, 0, 2, 5, 3, 1, 4, 5, 5, 0)
	res, err := Fit(context.Background(), in, FitOptions{})
	require.NoError(t, err)

	assert.Equal(t, DefaultSteps, res.Steps)
	assert.Equal(t, Domain{Min: 1, Max: 5}, res.Domain)
	assert.Len(t, res.Extremities, 5)
	assert.Len(t, res.Resampled, DefaultSteps+1)
	assert.Equal(t, 1.0, res.Resampled[0].X)
	assert.Equal(t, 5.0, res.Resampled[DefaultSteps].X)
}

func TestFit_ExplicitDomainAndWorkers(t *testing.T) {
	in := pts(0, 0, 1, 1, 2, 2, 3, 3)
	domain := Domain{Min: -1, Max: 4}
	res, err := Fit(context.Background(), in, FitOptions{Steps: 10, Domain: &domain, Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, domain, res.Domain)
	assert.Equal(t, []float64{0, 3}, res.Extremities.Xs())
	require.Len(t, res.Resampled, 11)
	assert.Equal(t, 0.0, res.Resampled[0].Y)
	assert.Equal(t, 3.0, res.Resampled[10].Y)
}

func TestFit_InputIsCloned(t *testing.T) {
	in := pts(0, 0, 1, 1, 2, 0)
	res, err := Fit(context.Background(), in, FitOptions{Steps: 2})
	require.NoError(t, err)
	res.Input[0].Y = 42
	assert.Equal(t, 0.0, in[0].Y)
}

func TestFit_RejectsBadInput(t *testing.T) {
	_, err := Fit(context.Background(), pts(0, 1), FitOptions{})
	assert.True(t, errors.Is(err, ErrTooFewPoints))

	_, err = Fit(context.Background(), pts(1, 0, 0, 1), FitOptions{})
	assert.True(t, errors.Is(err, ErrNotIncreasing))

	bad := Domain{Min: 3, Max: 3}
	_, err = Fit(context.Background(), pts(0, 0, 1, 1), FitOptions{Domain: &bad})
	assert.True(t, errors.Is(err, ErrInvalidDomain))
}

func TestResult_Kinds(t *testing.T) {
	res, err := Fit(context.Background(), pts(0, 0, 1, 5, 2, 2, 3, 1, 4, 3), FitOptions{Steps: 4})
	require.NoError(t, err)

	kinds := res.Kinds()
	assert.Equal(t, map[int]Kind{0: KindStart, 1: KindMaximum, 3: KindMinimum, 4: KindEnd}, kinds)
}

func TestSeries_Bounds(t *testing.T) {
	x, y := pts(0, 3, 2, -1, 5, 7).Bounds()
	assert.Equal(t, Domain{Min: 0, Max: 5}, x)
	assert.Equal(t, Domain{Min: -1, Max: 7}, y)

	x, y = Series(nil).Bounds()
	assert.Equal(t, Domain{}, x)
	assert.Equal(t, Domain{}, y)
}
