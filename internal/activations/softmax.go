// Package activations provides activation functions used by the loss package.
package activations

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Softmax maps a vector of scores to a probability distribution.
type Softmax struct{}

// ActivateBatch overwrites x with softmax(x) = exp(x) / sum(exp(x)) and returns it.
// The maximum is subtracted first so the largest exponent is exp(0).
func (s Softmax) ActivateBatch(x []float64) []float64 {
	maxVal := floats.Max(x)
	for i := range x {
		x[i] = math.Exp(x[i] - maxVal)
	}
	floats.Scale(1/floats.Sum(x), x)
	return x
}
