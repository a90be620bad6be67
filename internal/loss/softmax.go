// Package loss provides the softmax cross-entropy loss of a linear classifier.
package loss

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoSoftmax/internal/activations"
)

// SoftmaxLossFunc computes the softmax cross-entropy loss of a linear
// classifier and its gradient with respect to the weights.
//
// W is the D×C weight matrix, X the N×D minibatch and y the N labels, each in
// [0, C). The loss is the mean negative log-likelihood of the true classes
// plus reg*sum(W²). The returned gradient has the shape of W and is newly
// allocated on every call.
//
// Inputs are not validated: a shape mismatch panics with mat.ErrShape and an
// out-of-range label panics on the offending index.
type SoftmaxLossFunc func(W, X mat.Matrix, y []int, reg float64) (float64, *mat.Dense)

var (
	_ SoftmaxLossFunc = SoftmaxLossNaive
	_ SoftmaxLossFunc = SoftmaxLossVectorized
)

// SoftmaxLossNaive computes the softmax loss and gradient with explicit loops
// over examples and classes.
func SoftmaxLossNaive(W, X mat.Matrix, y []int, reg float64) (float64, *mat.Dense) {
	n, _ := X.Dims()
	d, c := W.Dims()

	dW := mat.NewDense(d, c, nil)
	scores := mat.NewVecDense(c, nil)
	softmax := activations.Softmax{}

	var loss float64
	for i := 0; i < n; i++ {
		xi := mat.Row(nil, i, X)
		scores.MulVec(W.T(), mat.NewVecDense(len(xi), xi))

		s := scores.RawVector().Data
		// -log(p[y]) as log-sum-exp minus the true score, finite even when p[y] underflows.
		loss += floats.LogSumExp(s) - s[y[i]]

		p := softmax.ActivateBatch(s)
		for j := 0; j < c; j++ {
			coef := p[j]
			if j == y[i] {
				coef--
			}
			for k := 0; k < d; k++ {
				dW.Set(k, j, dW.At(k, j)+coef*xi[k])
			}
		}
	}

	return regularize(loss, dW, W, n, reg), dW
}

// SoftmaxLossVectorized computes the same loss and gradient as
// SoftmaxLossNaive using batched matrix operations.
func SoftmaxLossVectorized(W, X mat.Matrix, y []int, reg float64) (float64, *mat.Dense) {
	n, _ := X.Dims()
	d, c := W.Dims()

	var scores mat.Dense
	scores.Mul(X, W)

	ones := make([]float64, c)
	floats.AddConst(1, ones)
	onesC := mat.NewVecDense(c, ones)

	maxs := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		maxs.SetVec(i, floats.Max(scores.RawRowView(i)))
	}
	var shift mat.Dense
	shift.Outer(1, maxs, onesC)
	scores.Sub(&scores, &shift)

	var probs mat.Dense
	probs.Apply(func(_, _ int, v float64) float64 { return math.Exp(v) }, &scores)

	// Each row sum is at least exp(0) = 1 after the shift.
	sums := mat.NewVecDense(n, nil)
	sums.MulVec(&probs, onesC)
	var denom mat.Dense
	denom.Outer(1, sums, onesC)
	probs.DivElem(&probs, &denom)

	var loss float64
	for i, label := range y[:n] {
		loss += math.Log(sums.AtVec(i)) - scores.At(i, label)
		probs.Set(i, label, probs.At(i, label)-1)
	}

	dW := mat.NewDense(d, c, nil)
	dW.Mul(X.T(), &probs)

	return regularize(loss, dW, W, n, reg), dW
}

// regularize averages the summed data loss and gradient over n examples and
// adds the L2 penalty. The loss gains reg*sum(W²) while the gradient gains
// reg*W: reg is taken as already halved on the gradient side.
func regularize(loss float64, dW *mat.Dense, W mat.Matrix, n int, reg float64) float64 {
	var sq mat.Dense
	sq.MulElem(W, W)

	var regW mat.Dense
	regW.Scale(reg, W)

	dW.Scale(1/float64(n), dW)
	dW.Add(dW, &regW)

	return loss/float64(n) + reg*mat.Sum(&sq)
}
