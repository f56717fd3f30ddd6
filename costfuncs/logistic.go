// Package costfuncs provides the two Objectives that the models are trained with: the
// regularized logistic regression cost, and the cost of a neural network with one hidden layer
// (computed by forward propagation and backpropagation). Both implement digitclass.Objective.
package costfuncs

import (
	dc "github.com/sharnoff/digitclass"
	"github.com/sharnoff/digitclass/operators"
	"github.com/sharnoff/digitclass/penalties"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Logistic is the cross-entropy cost of a logistic regression model with parameters theta, where
// theta[0] is the bias and is never regularized. Logistic holds the fixed parts of the problem;
// the parameters are given to Evaluate.
type Logistic struct {
	// X is the design matrix, with one sample per row. Its number of columns is the number of
	// parameters.
	X *mat.Dense

	// Y holds the binary outcome for each row of X; each value should be 0 or 1.
	Y []float64

	// Penalty is the regularization applied to theta[1:]. If nil, no regularization is applied.
	Penalty dc.Penalty
}

// NewLogistic returns a Logistic with the given data, after checking that the dimensions agree.
// A nil Penalty disables regularization.
func NewLogistic(X *mat.Dense, y []float64, pen dc.Penalty) (*Logistic, error) {
	if X == nil {
		return nil, dc.NilArg("Design matrix")
	} else if X.IsEmpty() {
		return nil, dc.ErrNoData
	}

	if m, _ := X.Dims(); len(y) != m {
		return nil, dc.SizeMismatchError{Expected: m, Got: len(y), Name: "outcomes"}
	}

	return &Logistic{X: X, Y: y, Penalty: pen}, nil
}

// LRCost is the function form of Logistic, using the L2 (ridge) penalty with strength λ:
//	J = (1/m)·Σ[-y·log(h) - (1-y)·log(1-h)] + (λ/2m)·Σθ[1:]²
//	grad = (1/m)·Xᵀ(h - y) + (λ/m)·θ, with grad[0] left unregularized
// where h = sigmoid(Xθ).
func LRCost(theta []float64, X *mat.Dense, y []float64, λ float64) (float64, []float64, error) {
	l, err := NewLogistic(X, y, penalties.L2(λ))
	if err != nil {
		return 0, nil, err
	}

	return l.Evaluate(theta)
}

// Size returns the number of parameters, which is the number of columns of X.
func (l *Logistic) Size() int {
	_, n := l.X.Dims()
	return n
}

// Evaluate is the implementation of digitclass.Objective. It returns a SizeMismatchError if theta
// does not have one value per column of X, and a NumericalError if the cost or gradient is not
// finite.
func (l *Logistic) Evaluate(theta []float64) (float64, []float64, error) {
	if l.X == nil || l.X.IsEmpty() {
		return 0, nil, dc.ErrNoData
	}

	m, n := l.X.Dims()
	if len(theta) != n {
		return 0, nil, dc.SizeMismatchError{Expected: n, Got: len(theta), Name: "logistic parameters"}
	} else if len(l.Y) != m {
		return 0, nil, dc.SizeMismatchError{Expected: m, Got: len(l.Y), Name: "outcomes"}
	}

	// h = sigmoid(Xθ); after the loop, hs holds h - y
	hs := make([]float64, m)
	mat.NewVecDense(m, hs).MulVec(l.X, mat.NewVecDense(n, theta))

	var cost float64
	for i, z := range hs {
		h := operators.Sigmoid(z)
		cost += crossEntropy(h, l.Y[i])
		hs[i] = h - l.Y[i]
	}

	grad := make([]float64, n)
	mat.NewVecDense(n, grad).MulVec(l.X.T(), mat.NewVecDense(m, hs))

	fm := float64(m)
	cost /= fm
	floats.Scale(1/fm, grad)

	if l.Penalty != nil && n > 1 {
		cost += l.Penalty.Cost(theta[1:]) / fm
		for i := 1; i < n; i++ {
			grad[i] += l.Penalty.Deriv(theta[i]) / fm
		}
	}

	if err := dc.CheckFinite("logistic cost", cost); err != nil {
		return 0, nil, err
	} else if err := dc.CheckFinite("logistic gradient", grad...); err != nil {
		return 0, nil, err
	}

	return cost, grad, nil
}
