package costfuncs

import (
	dc "github.com/sharnoff/digitclass"
	"github.com/sharnoff/digitclass/operators"
	"github.com/sharnoff/digitclass/penalties"
	"github.com/sharnoff/digitclass/utils"

	"go.uber.org/atomic"
	"gonum.org/v1/gonum/mat"
)

// Network is the cross-entropy cost of a feed-forward network with a single hidden layer and
// sigmoid activations, together with its gradient by backpropagation. The parameters given to
// Evaluate are unrolled as described by Layout.
type Network struct {
	Layout dc.Layout

	// X is the design matrix, with Layout.Input columns and one sample per row. No bias column
	// should be included; the bias units are added internally.
	X *mat.Dense

	// Y holds the label of each row of X, in [0, Layout.Labels)
	Y []int

	// Penalty is the regularization applied to every weight that does not multiply a bias unit.
	// If nil, no regularization is applied.
	Penalty dc.Penalty

	// Workers is the number of goroutines that samples are split between. Each has its own
	// accumulators, which are summed at the end. Values less than 2 evaluate serially.
	Workers int
}

// NewNetwork returns a Network with the given data, after checking that the data fits the
// Layout. A nil Penalty disables regularization.
func NewNetwork(layout dc.Layout, X *mat.Dense, y []int, pen dc.Penalty) (*Network, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	} else if X == nil {
		return nil, dc.NilArg("Design matrix")
	} else if X.IsEmpty() {
		return nil, dc.ErrNoData
	}

	m, n := X.Dims()
	if n != layout.Input {
		return nil, dc.SizeMismatchError{Expected: layout.Input, Got: n, Name: "input features"}
	} else if len(y) != m {
		return nil, dc.SizeMismatchError{Expected: m, Got: len(y), Name: "labels"}
	} else if err := dc.CheckLabels(y, layout.Labels); err != nil {
		return nil, err
	}

	return &Network{Layout: layout, X: X, Y: y, Penalty: pen}, nil
}

// NNCost is the function form of Network, using the L2 (ridge) penalty with strength λ. The
// regularization term added to the cost is (λ/2m)·(ΣΘ1[:,1:]² + ΣΘ2[:,1:]²).
func NNCost(params []float64, layout dc.Layout, X *mat.Dense, y []int, λ float64) (float64, []float64, error) {
	n, err := NewNetwork(layout, X, y, penalties.L2(λ))
	if err != nil {
		return 0, nil, err
	}

	return n.Evaluate(params)
}

// Size returns the length of the unrolled parameter vector.
func (n *Network) Size() int {
	return n.Layout.Size()
}

// Evaluate is the implementation of digitclass.Objective. The returned gradient is unrolled in
// the same order as params.
func (n *Network) Evaluate(params []float64) (float64, []float64, error) {
	theta1, theta2, err := n.Layout.View(params)
	if err != nil {
		return 0, nil, err
	}

	if n.X == nil || n.X.IsEmpty() {
		return 0, nil, dc.ErrNoData
	}

	m, in := n.X.Dims()
	if in != n.Layout.Input {
		return 0, nil, dc.SizeMismatchError{Expected: n.Layout.Input, Got: in, Name: "input features"}
	} else if len(n.Y) != m {
		return 0, nil, dc.SizeMismatchError{Expected: m, Got: len(n.Y), Name: "labels"}
	} else if err := dc.CheckLabels(n.Y, n.Layout.Labels); err != nil {
		return 0, nil, err
	}

	chunks := utils.Chunks(m, n.Workers)
	accs := make([]*accumulator, len(chunks))
	total := atomic.NewFloat64(0)

	run := func(c int) {
		acc := newAccumulator(n.Layout)
		total.Add(acc.run(theta1, theta2, n.X, n.Y, chunks[c][0], chunks[c][1]))
		accs[c] = acc
	}

	utils.MultiThreadN(0, len(chunks), run, 1, len(chunks))

	// summed in chunk order, so that the gradient does not depend on scheduling
	grad1, grad2 := accs[0].grad1, accs[0].grad2
	for _, acc := range accs[1:] {
		grad1.Add(grad1, acc.grad1)
		grad2.Add(grad2, acc.grad2)
	}

	fm := float64(m)
	cost := total.Load() / fm
	grad1.Scale(1/fm, grad1)
	grad2.Scale(1/fm, grad2)

	if n.Penalty != nil {
		cost += (n.penaltyCost(theta1) + n.penaltyCost(theta2)) / fm
		n.addPenaltyDeriv(grad1, theta1, fm)
		n.addPenaltyDeriv(grad2, theta2, fm)
	}

	grad := make([]float64, n.Layout.Size())
	n.Layout.UnrollInto(grad, grad1, grad2)

	if err := dc.CheckFinite("network cost", cost); err != nil {
		return 0, nil, err
	} else if err := dc.CheckFinite("network gradient", grad...); err != nil {
		return 0, nil, err
	}

	return cost, grad, nil
}

// penaltyCost gives the penalty over every column but the first, which holds bias weights
func (n *Network) penaltyCost(theta *mat.Dense) float64 {
	r, c := theta.Dims()
	if c < 2 {
		return 0
	}

	ws := make([]float64, 0, r*(c-1))
	for i := 0; i < r; i++ {
		ws = append(ws, theta.RawRowView(i)[1:]...)
	}

	return n.Penalty.Cost(ws)
}

func (n *Network) addPenaltyDeriv(grad, theta *mat.Dense, m float64) {
	r, c := theta.Dims()
	for i := 0; i < r; i++ {
		for j := 1; j < c; j++ {
			grad.Set(i, j, grad.At(i, j)+n.Penalty.Deriv(theta.At(i, j))/m)
		}
	}
}

// accumulator holds the summed outer products for a contiguous range of samples, along with the
// scratch space used for each one
type accumulator struct {
	grad1, grad2 *mat.Dense

	a1, z2, a2, h, d3, back, d2 *mat.VecDense
}

func newAccumulator(l dc.Layout) *accumulator {
	r1, c1 := l.Theta1Dims()
	r2, c2 := l.Theta2Dims()

	return &accumulator{
		grad1: mat.NewDense(r1, c1, nil),
		grad2: mat.NewDense(r2, c2, nil),

		a1:   mat.NewVecDense(l.Input+1, nil),
		z2:   mat.NewVecDense(l.Hidden, nil),
		a2:   mat.NewVecDense(l.Hidden+1, nil),
		h:    mat.NewVecDense(l.Labels, nil),
		d3:   mat.NewVecDense(l.Labels, nil),
		back: mat.NewVecDense(l.Hidden+1, nil),
		d2:   mat.NewVecDense(l.Hidden, nil),
	}
}

// run propagates samples [start, end) forwards and backwards, adding their error terms to the
// accumulated gradients. It returns the summed (unaveraged) cost of those samples.
func (acc *accumulator) run(theta1, theta2 *mat.Dense, X *mat.Dense, y []int, start, end int) float64 {
	a1 := acc.a1.RawVector().Data
	z2 := acc.z2.RawVector().Data
	a2 := acc.a2.RawVector().Data
	h := acc.h.RawVector().Data
	d3 := acc.d3.RawVector().Data
	back := acc.back.RawVector().Data
	d2 := acc.d2.RawVector().Data

	a1[0] = 1
	a2[0] = 1

	var cost float64
	for i := start; i < end; i++ {
		// forward
		mat.Row(a1[1:], i, X)
		acc.z2.MulVec(theta1, acc.a1)
		operators.SigmoidVec(a2[1:], z2)
		acc.h.MulVec(theta2, acc.a2)
		operators.SigmoidVec(h, h)

		// cost and output error against the one-hot target
		for k := range h {
			var target float64
			if k == y[i] {
				target = 1
			}

			cost += crossEntropy(h[k], target)
			d3[k] = h[k] - target
		}

		// hidden error, skipping the bias unit
		acc.back.MulVec(theta2.T(), acc.d3)
		for j := range d2 {
			d2[j] = back[j+1] * operators.SigmoidGradient(z2[j])
		}

		acc.grad1.RankOne(acc.grad1, 1, acc.d2, acc.a1)
		acc.grad2.RankOne(acc.grad2, 1, acc.d3, acc.a2)
	}

	return cost
}
