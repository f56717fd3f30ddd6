package initializers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandInitializeWeightsShapeAndRange(t *testing.T) {
	w := RandInitializeWeights(25, 401)

	r, c := w.Dims()
	require.Equal(t, 25, r)
	require.Equal(t, 401, c)

	var distinct bool
	first := w.At(0, 0)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := w.At(i, j)
			assert.True(t, v >= -0.12 && v <= 0.12, "weight %v out of range", v)
			if v != first {
				distinct = true
			}
		}
	}

	assert.True(t, distinct, "weights should not all be equal")
}

func TestUniformSeedIsReproducible(t *testing.T) {
	a := Uniform().Seed(7).Matrix(3, 4)
	b := Uniform().Seed(7).Matrix(3, 4)
	assert.Equal(t, a.RawMatrix().Data, b.RawMatrix().Data)

	c := Uniform().Seed(8).Matrix(3, 4)
	assert.NotEqual(t, a.RawMatrix().Data, c.RawMatrix().Data)
}

func TestUniformRange(t *testing.T) {
	u := Uniform().Range(5, 2).Seed(1)
	for i := 0; i < 100; i++ {
		v := u.Gen()
		assert.True(t, v >= 2 && v <= 5)
	}
}

func TestSetDefault(t *testing.T) {
	require.NoError(t, SetDefault("uniform-epsilon", 0.5))
	defer SetDefault_Lazy("uniform-epsilon", 0.12)

	u := Uniform()
	assert.Equal(t, -0.5, u.lower)
	assert.Equal(t, 0.5, u.upper)

	assert.Error(t, SetDefault("nope", 1))
	assert.Error(t, SetDefault("uniform-epsilon", math.NaN()))
	assert.Panics(t, func() { SetDefault_Lazy("uniform-epsilon", -1) })
}

func TestEpsilonFor(t *testing.T) {
	assert.InDelta(t, 0.1188, EpsilonFor(400, 25), 1e-4)
}

func TestDebugInitializeWeights(t *testing.T) {
	w := DebugInitializeWeights(3, 5)

	r, c := w.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 4, c)

	// row-major sin(k)
	assert.Equal(t, 0.0, w.At(0, 0))
	assert.Equal(t, math.Sin(1), w.At(0, 1))
	assert.Equal(t, math.Sin(4), w.At(1, 0))
	assert.Equal(t, math.Sin(19), w.At(4, 3))

	// and it is deterministic
	assert.True(t, w.At(2, 2) == DebugInitializeWeights(3, 5).At(2, 2))
}
