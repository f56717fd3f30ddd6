// Package operators provides the elementwise activation used by both models: the logistic (or
// sigmoid) function and its derivative, for scalars, slices, and gonum matrices.
package operators

import (
	"math"
	"runtime"

	"github.com/sharnoff/digitclass/utils"
	"gonum.org/v1/gonum/mat"
)

// matrices with at least this many elements are evaluated across multiple goroutines
const parallelThreshold int = 1 << 16

const threadSizeMultiplier int = 1

// Sigmoid returns 1 / (1 + e^-z).
func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// SigmoidGradient returns the derivative of Sigmoid at z, which is Sigmoid(z) * (1 - Sigmoid(z)).
func SigmoidGradient(z float64) float64 {
	s := Sigmoid(z)
	return s * (1 - s)
}

// SigmoidVec applies Sigmoid to each value of src, storing the results in dst and returning it.
// If dst is nil, a new slice is allocated. dst may be the same slice as src. SigmoidVec panics if
// dst is non-nil and has a different length from src.
func SigmoidVec(dst, src []float64) []float64 {
	dst = prepare(dst, len(src))
	for i, z := range src {
		dst[i] = Sigmoid(z)
	}

	return dst
}

// SigmoidGradientVec is SigmoidVec for SigmoidGradient.
func SigmoidGradientVec(dst, src []float64) []float64 {
	dst = prepare(dst, len(src))
	for i, z := range src {
		dst[i] = SigmoidGradient(z)
	}

	return dst
}

func prepare(dst []float64, n int) []float64 {
	if dst == nil {
		return make([]float64, n)
	} else if len(dst) != n {
		panic("operators: destination length does not match source")
	}

	return dst
}

// SigmoidDense returns a new matrix holding Sigmoid applied to every element of a.
func SigmoidDense(a mat.Matrix) *mat.Dense {
	return applyDense(a, Sigmoid)
}

// SigmoidGradientDense returns a new matrix holding SigmoidGradient applied to every element of a.
func SigmoidGradientDense(a mat.Matrix) *mat.Dense {
	return applyDense(a, SigmoidGradient)
}

func applyDense(a mat.Matrix, f func(float64) float64) *mat.Dense {
	r, c := a.Dims()
	out := mat.NewDense(r, c, nil)

	if r*c < parallelThreshold {
		out.Apply(func(_, _ int, v float64) float64 { return f(v) }, a)
		return out
	}

	// each row is written by exactly one goroutine
	row := func(i int) {
		for j := 0; j < c; j++ {
			out.Set(i, j, f(a.At(i, j)))
		}
	}

	opsPerThread := runtime.NumCPU() * threadSizeMultiplier
	threadsPerCPU := 1

	utils.MultiThread(0, r, row, opsPerThread, threadsPerCPU)

	return out
}
