package pattern

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/contour/internal/curve"
)

func fitted(t *testing.T, steps int) curve.Result {
	t.Helper()
	in := curve.NewSeries([]float64{0, 1, 2, 3, 4}, []float64{0, 5, 1, 5, 0})
	res, err := curve.Fit(context.Background(), in, curve.FitOptions{Steps: steps})
	require.NoError(t, err)
	return res
}

func TestBuild_SingleCurve(t *testing.T) {
	p, err := Build(fitted(t, 8), Options{TimeScale: 0.5})
	require.NoError(t, err)

	require.Len(t, p.Pattern, 2)
	ev := p.Pattern[0].Event
	require.NotNil(t, ev)
	assert.Equal(t, eventContinuous, ev.EventType)
	assert.InDelta(t, 2.0, ev.EventDuration, 1e-12)
	assert.Equal(t, defaultSharpness, ev.EventParameters[1].ParameterValue)

	c := p.Pattern[1].ParameterCurve
	require.NotNil(t, c)
	assert.Equal(t, curveIntensity, c.ParameterID)
	assert.Len(t, c.ControlPoints, 9)
	assert.Equal(t, 0.0, c.ControlPoints[0].Time)
	assert.InDelta(t, 2.0, c.ControlPoints[8].Time, 1e-12)
	for _, cp := range c.ControlPoints {
		assert.GreaterOrEqual(t, cp.ParameterValue, 0.0)
		assert.LessOrEqual(t, cp.ParameterValue, 1.0)
	}
}

func TestBuild_SplitsLongCurvesWithoutGaps(t *testing.T) {
	res := fitted(t, 40)
	p, err := Build(res, Options{})
	require.NoError(t, err)

	curves := p.Pattern[1:]
	// 41 points, 16 per curve with one shared point between neighbours.
	require.Len(t, curves, 3)

	total := 0
	for i, e := range curves {
		c := e.ParameterCurve
		require.NotNil(t, c)
		assert.LessOrEqual(t, len(c.ControlPoints), MaxControlPoints)
		total += len(c.ControlPoints)
		if i > 0 {
			prev := curves[i-1].ParameterCurve
			last := prev.ControlPoints[len(prev.ControlPoints)-1]
			assert.InDelta(t, prev.Time+last.Time, c.Time, 1e-12)
			assert.Equal(t, last.ParameterValue, c.ControlPoints[0].ParameterValue)
		}
	}
	assert.Equal(t, len(res.Resampled)+len(curves)-1, total)
}

func TestBuild_Validation(t *testing.T) {
	_, err := Build(curve.Result{}, Options{})
	assert.Error(t, err)

	bad := 1.5
	_, err = Build(fitted(t, 4), Options{Sharpness: &bad})
	assert.Error(t, err)

	_, err = Build(fitted(t, 4), Options{TimeScale: -1})
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, Normalize([]float64{-2, 0, 2}))
	assert.Equal(t, []float64{1, 1}, Normalize([]float64{3, 3}))
	assert.Empty(t, Normalize(nil))
}

func TestEncode(t *testing.T) {
	zero := 0.0
	p, err := Build(fitted(t, 2), Options{Sharpness: &zero, Description: "tap"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, p))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 1.0, doc["Version"])
	assert.Equal(t, "tap", doc["Metadata"].(map[string]any)["Description"])
	entries := doc["Pattern"].([]any)
	require.Len(t, entries, 2)
	_, hasCurve := entries[1].(map[string]any)["ParameterCurve"]
	assert.True(t, hasCurve)
}

func TestDuration(t *testing.T) {
	p, err := Build(fitted(t, 40), Options{TimeScale: 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, p.Duration(), 1e-12)

	assert.Equal(t, 0.0, Pattern{}.Duration())

	curveOnly := Pattern{Pattern: []Entry{{ParameterCurve: &ParameterCurve{
		Time:          1,
		ControlPoints: []ControlPoint{{Time: 0}, {Time: 0.75}},
	}}}}
	assert.InDelta(t, 1.75, curveOnly.Duration(), 1e-12)
}
