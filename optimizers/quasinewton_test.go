package optimizers

import (
	"testing"

	"github.com/pkg/errors"
	dc "github.com/sharnoff/digitclass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadratic is Σ(x_i - i)², minimized at x_i = i
type quadratic int

func (q quadratic) Size() int { return int(q) }

func (q quadratic) Evaluate(x []float64) (float64, []float64, error) {
	var f float64
	g := make([]float64, len(x))
	for i, v := range x {
		d := v - float64(i)
		f += d * d
		g[i] = 2 * d
	}

	return f, g, nil
}

type rosenbrock struct{}

func (rosenbrock) Size() int { return 2 }

func (rosenbrock) Evaluate(x []float64) (float64, []float64, error) {
	a, b := 1-x[0], x[1]-x[0]*x[0]
	f := a*a + 100*b*b
	g := []float64{-2*a - 400*x[0]*b, 200 * b}
	return f, g, nil
}

// failing returns an error once it has been evaluated more than 'after' times
type failing struct {
	quadratic
	after int
	calls *int
}

func (f failing) Evaluate(x []float64) (float64, []float64, error) {
	*f.calls++
	if *f.calls > f.after {
		return 0, nil, errors.New("broken objective")
	}

	return f.quadratic.Evaluate(x)
}

func TestQuasiNewtonQuadratic(t *testing.T) {
	init := []float64{5, 5, 5, 5}
	res, err := QuasiNewton().Minimize(quadratic(4), init)
	require.NoError(t, err)

	assert.True(t, res.Converged, res.Status)
	for i, v := range res.X {
		assert.InDelta(t, float64(i), v, 1e-6)
	}
	assert.InDelta(t, 0, res.Cost, 1e-10)
	assert.True(t, res.Evaluations > 0)

	// the initial vector is left alone
	assert.Equal(t, []float64{5, 5, 5, 5}, init)
}

func TestQuasiNewtonRosenbrock(t *testing.T) {
	res, err := QuasiNewton().MaxIterations(1000).Minimize(rosenbrock{}, []float64{-1.2, 1})
	require.NoError(t, err)

	assert.True(t, res.Converged, res.Status)
	assert.InDelta(t, 1, res.X[0], 1e-4)
	assert.InDelta(t, 1, res.X[1], 1e-4)
}

func TestQuasiNewtonIterationCapIsNotAnError(t *testing.T) {
	init := []float64{-1.2, 1}
	f0, _, _ := rosenbrock{}.Evaluate(init)

	res, err := QuasiNewton().MaxIterations(3).Minimize(rosenbrock{}, init)
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.True(t, res.Iterations <= 3)
	assert.True(t, res.Cost <= f0, "best iterate should be no worse than the start")
}

func TestQuasiNewtonAlreadyOptimal(t *testing.T) {
	res, err := QuasiNewton().Minimize(quadratic(3), []float64{0, 1, 2})
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, []float64{0, 1, 2}, res.X)
}

func TestQuasiNewtonErrors(t *testing.T) {
	_, err := QuasiNewton().Minimize(nil, nil)
	assert.IsType(t, dc.NilArgError{}, err)

	_, err = QuasiNewton().Minimize(quadratic(3), []float64{1})
	assert.Equal(t, dc.SizeMismatchError{Expected: 3, Got: 1, Name: "initial parameters"}, err)

	_, err = QuasiNewton().Tolerance(0).Minimize(quadratic(1), []float64{1})
	assert.Error(t, err)

	_, err = QuasiNewton().MaxIterations(0).Minimize(quadratic(1), []float64{1})
	assert.Error(t, err)

	var calls int
	_, err = QuasiNewton().Minimize(failing{quadratic(2), 0, &calls}, []float64{3, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken objective")

	calls = 0
	_, err = QuasiNewton().Minimize(failing{quadratic(2), 1, &calls}, []float64{3, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken objective")
}

func TestRegistered(t *testing.T) {
	m, err := dc.NewMinimizer("bfgs")
	require.NoError(t, err)
	assert.Equal(t, "bfgs", m.TypeString())

	_, ok := m.(dc.Tunable)
	assert.True(t, ok)

	assert.Contains(t, dc.Minimizers(), "bfgs")
	require.NotNil(t, dc.DefaultMinimizer())
	assert.Equal(t, "bfgs", dc.DefaultMinimizer().TypeString())

	err = dc.RegisterMinimizer("bfgs", func() dc.Minimizer { return QuasiNewton() })
	assert.Equal(t, dc.ErrRegisterDuplicate, errors.Cause(err))
}
