package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/contour/internal/curve"
)

func zigzagResult() curve.Result {
	input := curve.NewSeries([]float64{0, 1, 2, 3, 4}, []float64{0, 5, 1, 5, 0})
	return curve.Result{
		Input:       input,
		Extremities: input.Clone(),
		Resampled:   input.Clone(),
		Domain:      curve.Domain{Min: 0, Max: 4},
		Steps:       4,
	}
}

func TestRasterize_Markers(t *testing.T) {
	p := rasterize(zigzagResult(), plotOptions{Width: 5, Height: 6, ShowExtremities: true})

	want := []string{
		" ▲ ▲ ",
		" ••••",
		" ••••",
		" ••••",
		" •▼ •",
		"●   ●",
	}
	assert.Equal(t, want, p.lines())
}

func TestRasterize_CurveOnly(t *testing.T) {
	p := rasterize(zigzagResult(), plotOptions{Width: 5, Height: 6})

	lines := p.lines()
	require.Len(t, lines, 6)
	assert.Equal(t, " • • ", lines[0])
	assert.Equal(t, " •• •", lines[4])
	assert.Equal(t, "•   •", lines[5])
	for _, line := range lines {
		assert.NotContains(t, line, "▲")
		assert.NotContains(t, line, "●")
	}
}

func TestRasterize_FlatCurveUsesMiddleRow(t *testing.T) {
	input := curve.NewSeries([]float64{0, 1}, []float64{2, 2})
	res := curve.Result{
		Input:       input,
		Extremities: input.Clone(),
		Resampled:   curve.NewSeries([]float64{0, 0.5, 1}, []float64{2, 2, 2}),
		Domain:      curve.Domain{Min: 0, Max: 1},
		Steps:       2,
	}
	p := rasterize(res, plotOptions{Width: 3, Height: 3})

	assert.Equal(t, []string{"   ", "•••", "   "}, p.lines())
}

func TestRasterize_SamplesOutsideDomainDropped(t *testing.T) {
	input := curve.NewSeries([]float64{0, 2, 4}, []float64{0, 1, 0})
	res := curve.Result{
		Input:       input,
		Extremities: input.Clone(),
		Resampled:   curve.NewSeries([]float64{1, 2, 3}, []float64{0.5, 1, 0.5}),
		Domain:      curve.Domain{Min: 1, Max: 3},
		Steps:       2,
	}
	p := rasterize(res, plotOptions{Width: 3, Height: 3, ShowSamples: true, ShowExtremities: true})

	joined := strings.Join(p.lines(), "\n")
	assert.NotContains(t, joined, "●", "endpoints at x=0 and x=4 lie outside the domain")
	assert.Contains(t, joined, "▲")
}

func TestRasterize_SamplesBelowMarkers(t *testing.T) {
	p := rasterize(zigzagResult(), plotOptions{Width: 5, Height: 6, ShowSamples: true})
	assert.Equal(t, " · · ", p.lines()[0])

	p = rasterize(zigzagResult(), plotOptions{Width: 5, Height: 6, ShowSamples: true, ShowExtremities: true})
	assert.Equal(t, " ▲ ▲ ", p.lines()[0])
}

func TestRasterize_EmptyResult(t *testing.T) {
	p := rasterize(curve.Result{}, plotOptions{Width: 4, Height: 2})
	assert.Equal(t, []string{"    ", "    "}, p.lines())
}

func TestYAxisLabel(t *testing.T) {
	y := curve.Domain{Min: 0, Max: 5}
	assert.Equal(t, "5", yAxisLabel(y, 0, 6))
	assert.Equal(t, "2.5", yAxisLabel(y, 2, 6))
	assert.Equal(t, "", yAxisLabel(y, 1, 6))
	assert.Equal(t, "0", yAxisLabel(y, 5, 6))
}

func TestXAxisLabels(t *testing.T) {
	got := xAxisLabels(curve.Domain{Min: 0, Max: 1000}, 20)
	assert.Equal(t, "0"+strings.Repeat(" ", 8)+"500"+strings.Repeat(" ", 5)+"1 k", got)

	narrow := xAxisLabels(curve.Domain{Min: 0, Max: 1000}, 6)
	assert.Equal(t, "0  1 k", narrow)
}
