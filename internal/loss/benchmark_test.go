package loss

import (
	"math/rand"
	"testing"
)

// BenchmarkSoftmaxLossNaive benchmarks the looped softmax loss on a
// CIFAR-sized minibatch.
func BenchmarkSoftmaxLossNaive(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	W, X, y := randomProblem(rng, 500, 3073, 10, 0.0001)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = SoftmaxLossNaive(W, X, y, 5e-6)
	}
}

// BenchmarkSoftmaxLossVectorized benchmarks the batched softmax loss on the
// same minibatch.
func BenchmarkSoftmaxLossVectorized(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	W, X, y := randomProblem(rng, 500, 3073, 10, 0.0001)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = SoftmaxLossVectorized(W, X, y, 5e-6)
	}
}
