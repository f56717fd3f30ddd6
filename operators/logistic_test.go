package operators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSigmoidKnownValues(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid(0))
	assert.InDelta(t, 0.7310585786300049, Sigmoid(1), 1e-15)
	assert.InDelta(t, 0.2689414213699951, Sigmoid(-1), 1e-15)
	assert.InDelta(t, 1, Sigmoid(50), 1e-15)
	assert.InDelta(t, 0, Sigmoid(-50), 1e-15)
}

func TestSigmoidGradient(t *testing.T) {
	assert.Equal(t, 0.25, SigmoidGradient(0))

	// the derivative is symmetric around zero
	for _, z := range []float64{0.3, 1, 2.5, 7} {
		assert.InDelta(t, SigmoidGradient(z), SigmoidGradient(-z), 1e-15)
	}

	// compare against a central difference
	const h = 1e-5
	for _, z := range []float64{-3, -0.5, 0.1, 2} {
		numeric := (Sigmoid(z+h) - Sigmoid(z-h)) / (2 * h)
		assert.InDelta(t, numeric, SigmoidGradient(z), 1e-9)
	}
}

func TestSigmoidVecInPlace(t *testing.T) {
	zs := []float64{-1, 0, 1}
	out := SigmoidVec(zs, zs)

	require.Len(t, out, 3)
	assert.Equal(t, 0.5, zs[1])
	assert.InDelta(t, 1, zs[0]+zs[2], 1e-15)
}

func TestSigmoidVecLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		SigmoidVec(make([]float64, 2), make([]float64, 3))
	})
}

func TestSigmoidGradientVec(t *testing.T) {
	out := SigmoidGradientVec(nil, []float64{0, 0})
	assert.Equal(t, []float64{0.25, 0.25}, out)
}

func TestSigmoidDense(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{0, 1, -1, 2})
	s := SigmoidDense(a)
	g := SigmoidGradientDense(a)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, Sigmoid(a.At(i, j)), s.At(i, j))
			assert.Equal(t, SigmoidGradient(a.At(i, j)), g.At(i, j))
		}
	}

	// the input is left untouched
	assert.Equal(t, 1.0, a.At(0, 1))
}

func TestSigmoidDenseLargeMatchesScalar(t *testing.T) {
	r, c := 300, 300
	data := make([]float64, r*c)
	for i := range data {
		data[i] = math.Sin(float64(i)) * 5
	}

	s := SigmoidDense(mat.NewDense(r, c, data))
	for _, k := range []int{0, 1, 777, r*c - 1} {
		assert.Equal(t, Sigmoid(data[k]), s.At(k/c, k%c))
	}
}
