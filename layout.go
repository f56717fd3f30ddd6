package digitclass

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Layout describes the sizes of the three layers of a network with a single hidden layer. It is
// the only place where weight matrices are flattened into, or recovered from, a parameter vector.
//
// Theta1 maps the input layer (plus a bias unit) to the hidden layer, and so has shape
// (Hidden, Input+1). Theta2 maps the hidden layer (plus a bias unit) to the output layer, with
// shape (Labels, Hidden+1). The unrolled form is all of Theta1 in row-major order, followed by
// all of Theta2 in row-major order.
type Layout struct {
	Input  int
	Hidden int
	Labels int
}

// Validate returns an error if any of the layer sizes are less than 1.
func (l Layout) Validate() error {
	if l.Input < 1 || l.Hidden < 1 || l.Labels < 1 {
		return errors.Errorf("All layer sizes must be >= 1 (input %d, hidden %d, labels %d)", l.Input, l.Hidden, l.Labels)
	}

	return nil
}

// Theta1Dims returns the shape of the first weight matrix
func (l Layout) Theta1Dims() (r, c int) {
	return l.Hidden, l.Input + 1
}

// Theta2Dims returns the shape of the second weight matrix
func (l Layout) Theta2Dims() (r, c int) {
	return l.Labels, l.Hidden + 1
}

// Size returns the total number of parameters in the unrolled vector.
func (l Layout) Size() int {
	return l.Hidden*(l.Input+1) + l.Labels*(l.Hidden+1)
}

func (l Layout) split() int {
	return l.Hidden * (l.Input + 1)
}

// Unroll flattens theta1 and theta2 into a single new vector. The shapes of both matrices must
// match the Layout, else a SizeMismatchError is returned.
func (l Layout) Unroll(theta1, theta2 mat.Matrix) ([]float64, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	} else if theta1 == nil {
		return nil, NilArg("Theta1")
	} else if theta2 == nil {
		return nil, NilArg("Theta2")
	}

	if err := checkDims("Theta1", theta1, l.Hidden, l.Input+1); err != nil {
		return nil, err
	} else if err := checkDims("Theta2", theta2, l.Labels, l.Hidden+1); err != nil {
		return nil, err
	}

	params := make([]float64, l.Size())
	unrollInto(params[:l.split()], theta1)
	unrollInto(params[l.split():], theta2)

	return params, nil
}

// UnrollInto writes the unrolled form of theta1 and theta2 into dst, which must already have
// length Size(). It is used by the cost function to assemble gradients without allocating.
// UnrollInto does not check shapes.
func (l Layout) UnrollInto(dst []float64, theta1, theta2 mat.Matrix) {
	unrollInto(dst[:l.split()], theta1)
	unrollInto(dst[l.split():], theta2)
}

func unrollInto(dst []float64, m mat.Matrix) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		mat.Row(dst[i*c:(i+1)*c], i, m)
	}
}

// Reshape recovers Theta1 and Theta2 from an unrolled vector. The returned matrices are copies,
// so params may be reused freely afterwards.
func (l Layout) Reshape(params []float64) (theta1, theta2 *mat.Dense, err error) {
	v1, v2, err := l.View(params)
	if err != nil {
		return nil, nil, err
	}

	return mat.DenseCopyOf(v1), mat.DenseCopyOf(v2), nil
}

// View is like Reshape, except that the returned matrices are backed by params. Changes to one
// are visible in the other.
func (l Layout) View(params []float64) (theta1, theta2 *mat.Dense, err error) {
	if err = l.Validate(); err != nil {
		return nil, nil, err
	} else if len(params) != l.Size() {
		return nil, nil, SizeMismatchError{l.Size(), len(params), "unrolled parameters"}
	}

	s := l.split()
	theta1 = mat.NewDense(l.Hidden, l.Input+1, params[:s:s])
	theta2 = mat.NewDense(l.Labels, l.Hidden+1, params[s:])

	return theta1, theta2, nil
}

func checkDims(name string, m mat.Matrix, rows, cols int) error {
	r, c := m.Dims()
	if r != rows {
		return SizeMismatchError{rows, r, name + " rows"}
	} else if c != cols {
		return SizeMismatchError{cols, c, name + " columns"}
	}

	return nil
}
