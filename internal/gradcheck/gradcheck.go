// Package gradcheck compares analytic gradients against finite-difference
// estimates of a scalar function of a matrix.
package gradcheck

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// DefaultStep is the finite-difference step used when a step of zero is given.
const DefaultStep = 1e-5

// Func evaluates a scalar function at W.
type Func func(W *mat.Dense) float64

// Check is one sampled coordinate of a sparse gradient check.
type Check struct {
	Row, Col  int
	Numerical float64
	Analytic  float64
	RelError  float64
}

// Numerical estimates the gradient of f at W with central differences.
// W is not modified.
func Numerical(f Func, W mat.Matrix, step float64) *mat.Dense {
	r, c := W.Dims()
	x := mat.DenseCopyOf(W).RawMatrix().Data

	grad := fd.Gradient(nil, func(v []float64) float64 {
		return f(mat.NewDense(r, c, v))
	}, x, settings(step))

	return mat.NewDense(r, c, grad)
}

// Sparse samples n random coordinates of W and compares the analytic gradient
// at each one against a central-difference estimate of f.
func Sparse(f Func, W, analytic mat.Matrix, n int, step float64, rng *rand.Rand) []Check {
	r, c := W.Dims()
	w := mat.DenseCopyOf(W)

	checks := make([]Check, n)
	for k := range checks {
		i, j := rng.Intn(r), rng.Intn(c)
		orig := w.At(i, j)

		num := fd.Derivative(func(v float64) float64 {
			w.Set(i, j, v)
			return f(w)
		}, orig, settings(step))
		w.Set(i, j, orig)

		ana := analytic.At(i, j)
		checks[k] = Check{
			Row:       i,
			Col:       j,
			Numerical: num,
			Analytic:  ana,
			RelError:  relError(num, ana),
		}
	}
	return checks
}

// RelError returns the largest entrywise relative error between a and b.
func RelError(a, b mat.Matrix) float64 {
	r, c := a.Dims()
	if br, bc := b.Dims(); br != r || bc != c {
		panic(mat.ErrShape)
	}

	var worst float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			worst = math.Max(worst, relError(a.At(i, j), b.At(i, j)))
		}
	}
	return worst
}

func relError(x, y float64) float64 {
	return math.Abs(x-y) / math.Max(1e-8, math.Abs(x)+math.Abs(y))
}

func settings(step float64) *fd.Settings {
	if step == 0 {
		step = DefaultStep
	}
	return &fd.Settings{Formula: fd.Central, Step: step}
}
