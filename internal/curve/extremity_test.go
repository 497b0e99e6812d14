package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(coords ...float64) Series {
	xs := make([]float64, 0, len(coords)/2)
	ys := make([]float64, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		xs = append(xs, coords[i])
		ys = append(ys, coords[i+1])
	}
	return NewSeries(xs, ys)
}

func TestExtremities(t *testing.T) {
	tests := []struct {
		name  string
		in    Series
		wantX []float64
	}{
		{"zigzag keeps all", pts(0, 0, 1, 5, 2, 1, 3, 5, 4, 0), []float64{0, 1, 2, 3, 4}},
		{"increasing keeps endpoints", pts(0, 0, 1, 1, 2, 2, 3, 3), []float64{0, 3}},
		{"decreasing keeps endpoints", pts(0, 9, 1, 4, 2, 1, 3, -2), []float64{0, 3}},
		{"two points", pts(0, 1, 1, 1), []float64{0, 1}},
		{"single peak", pts(0, 0, 1, 1, 2, 3, 3, 1, 4, 0), []float64{0, 2, 4}},
		{"single valley", pts(0, 3, 1, 1, 2, 2), []float64{0, 1, 2}},
		{"plateau is not an extremity", pts(0, 0, 1, 2, 2, 2, 3, 0), []float64{0, 3}},
		{"flat line", pts(0, 1, 1, 1, 2, 1, 3, 1), []float64{0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extremities(tt.in)
			assert.Equal(t, tt.wantX, got.Xs())
		})
	}
}

func TestExtremities_KeepsIndicesAndOrder(t *testing.T) {
	in := pts(0, 0, 1, 1, 2, 3, 3, 1, 4, 0, 5, 2)
	got := Extremities(in)

	require.Len(t, got, 4)
	assert.Equal(t, []int{0, 2, 4, 5}, []int{got[0].Index, got[1].Index, got[2].Index, got[3].Index})
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].X, got[i].X)
	}
}

func TestExtremities_MonotonicRunsOfAnyLength(t *testing.T) {
	for n := 2; n <= 32; n++ {
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := range xs {
			xs[i] = float64(i)
			ys[i] = float64(i * i)
		}
		got := Extremities(NewSeries(xs, ys))
		require.Len(t, got, 2, "n=%d", n)
		assert.Equal(t, 0, got[0].Index)
		assert.Equal(t, n-1, got[1].Index)
	}
}

func TestExtremities_ShortInputIsCopied(t *testing.T) {
	assert.Empty(t, Extremities(nil))

	in := pts(1, 2)
	got := Extremities(in)
	require.Len(t, got, 1)
	got[0].Y = 99
	assert.Equal(t, 2.0, in[0].Y)
}

func TestClassify(t *testing.T) {
	in := pts(0, 0, 1, 5, 2, 1, 3, 1, 4, 0)
	want := []Kind{KindStart, KindMaximum, KindNone, KindNone, KindEnd}
	for i, k := range want {
		assert.Equal(t, k, Classify(in, i), "index %d", i)
	}
	assert.Equal(t, KindNone, Classify(in, -1))
	assert.Equal(t, KindNone, Classify(in, len(in)))
	assert.Equal(t, "max", KindMaximum.String())
}
