package activations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestSoftmaxActivateBatch(t *testing.T) {
	tests := []struct {
		name     string
		x        []float64
		expected []float64
	}{
		{"Uniform", []float64{0, 0}, []float64{0.5, 0.5}},
		{"Shift invariant", []float64{123, 123, 123, 123}, []float64{0.25, 0.25, 0.25, 0.25}},
		{"Two classes", []float64{0, math.Log(3)}, []float64{0.25, 0.75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Softmax{}.ActivateBatch(tt.x)
			require.InDeltaSlice(t, tt.expected, got, 1e-12)
		})
	}
}

func TestSoftmaxActivateBatchInPlace(t *testing.T) {
	x := []float64{1, 2, 3}
	got := Softmax{}.ActivateBatch(x)
	require.Same(t, &x[0], &got[0])
}

func TestSoftmaxActivateBatchLargeScores(t *testing.T) {
	// exp(1e4) overflows without the max shift.
	x := []float64{1e4, -1e4, 5e3}
	p := Softmax{}.ActivateBatch(x)

	for i, v := range p {
		require.False(t, math.IsNaN(v), "p[%d] is NaN", i)
		require.GreaterOrEqual(t, v, 0.0)
	}
	require.InDelta(t, 1.0, floats.Sum(p), 1e-12)
	require.InDelta(t, 1.0, p[0], 1e-12)
}
