// Package gosoftmax exposes the softmax cross-entropy loss of a linear
// classifier together with the gradient-checking helpers used to verify it.
package gosoftmax

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoSoftmax/internal/gradcheck"
	"github.com/FlavioCFOliveira/GoSoftmax/internal/loss"
)

// Re-export common types for easier access
type (
	LossFunc  = loss.SoftmaxLossFunc
	Objective = gradcheck.Func
	Check     = gradcheck.Check
)

// Loss functions
func SoftmaxLossNaive(W, X mat.Matrix, y []int, reg float64) (float64, *mat.Dense) {
	return loss.SoftmaxLossNaive(W, X, y, reg)
}

func SoftmaxLossVectorized(W, X mat.Matrix, y []int, reg float64) (float64, *mat.Dense) {
	return loss.SoftmaxLossVectorized(W, X, y, reg)
}

// Gradient checking
func NumericalGradient(f Objective, W mat.Matrix, step float64) *mat.Dense {
	return gradcheck.Numerical(f, W, step)
}

func SparseGradCheck(f Objective, W, analytic mat.Matrix, n int, step float64, rng *rand.Rand) []Check {
	return gradcheck.Sparse(f, W, analytic, n, step, rng)
}

func RelError(a, b mat.Matrix) float64 {
	return gradcheck.RelError(a, b)
}
