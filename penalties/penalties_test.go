package penalties

import (
	"testing"

	dc "github.com/sharnoff/digitclass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestL2(t *testing.T) {
	p := L2(3)
	assert.InDelta(t, 1.5*(1+4+9), p.Cost([]float64{1, -2, 3}), 1e-12)
	assert.InDelta(t, -6, p.Deriv(-2), 1e-12)
	assert.Equal(t, "l2-ridge", Ridge(1).TypeString())
}

func TestL1(t *testing.T) {
	p := L1(2)
	assert.InDelta(t, 12, p.Cost([]float64{1, -2, 3}), 1e-12)
	assert.Equal(t, -2.0, p.Deriv(-0.5))
	assert.Equal(t, 0.0, p.Deriv(0))
	assert.Equal(t, "l1-lasso", Lasso(1).TypeString())
}

func TestElasticNetEndpoints(t *testing.T) {
	ws := []float64{0.5, -1.5, 2}

	assert.InDelta(t, L2(2).Cost(ws), ElasticNet(0, 2).Cost(ws), 1e-12)
	assert.InDelta(t, L1(2).Cost(ws), ElasticNet(1, 2).Cost(ws), 1e-12)
	assert.InDelta(t, L2(2).Deriv(-1.5), ElasticNet(0, 2).Deriv(-1.5), 1e-12)
	assert.InDelta(t, L1(2).Deriv(-1.5), ElasticNet(1, 2).Deriv(-1.5), 1e-12)
}

// the derivative of each penalty should agree with a central difference of its cost
func TestDerivMatchesCost(t *testing.T) {
	const h = 1e-6
	ps := []dc.Penalty{L2(0.7), L1(0.7), ElasticNet(0.3, 0.7)}
	for _, p := range ps {
		for _, w := range []float64{-2, -0.3, 0.4, 1.7} {
			numeric := (p.Cost([]float64{w + h}) - p.Cost([]float64{w - h})) / (2 * h)
			assert.InDelta(t, numeric, p.Deriv(w), 1e-6, "%s at %v", p.TypeString(), w)
		}
	}
}

func TestNew(t *testing.T) {
	p, err := New("l2-ridge", 1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, p.Deriv(1))

	_, err = New("nope", 1)
	assert.Error(t, err)

	_, err = New("l1-lasso", -1)
	assert.Error(t, err)

	assert.Equal(t, []string{"elastic-net", "l1-lasso", "l2-ridge"}, Names())
}
