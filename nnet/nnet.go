// Package nnet trains and evaluates a feed-forward network with one hidden layer of sigmoid
// units, using the backpropagation cost in "costfuncs" and any registered Minimizer.
package nnet

import (
	"github.com/pkg/errors"
	dc "github.com/sharnoff/digitclass"
	"github.com/sharnoff/digitclass/costfuncs"
	"github.com/sharnoff/digitclass/initializers"
	"github.com/sharnoff/digitclass/operators"
	"github.com/sharnoff/digitclass/penalties"
	"gonum.org/v1/gonum/mat"

	// registers the default Minimizer
	_ "github.com/sharnoff/digitclass/optimizers"
)

// Config holds the settings for Train. Start from DefaultConfig.
type Config struct {
	// Hidden is the number of hidden units
	Hidden int

	// Lambda is the strength of the L2 penalty on all weights that do not multiply a bias unit.
	// It is ignored if Penalty is set.
	Lambda  float64
	Penalty dc.Penalty

	// Minimizer creates the Minimizer used for training. If nil, the default is used.
	Minimizer func() dc.Minimizer

	// Tolerance and MaxIterations are given to the Minimizer if it implements
	// digitclass.Tunable.
	Tolerance     float64
	MaxIterations int

	// Epsilon is the half-width of the range that initial weights are drawn from. If zero, the
	// default for initializers.Uniform is used.
	Epsilon float64

	// Seed, if not zero, makes the initial weights reproducible.
	Seed int64

	// Workers is the number of goroutines that each cost evaluation is split between.
	Workers int
}

// DefaultConfig returns the settings used for handwritten digits: 25 hidden units, λ = 1, and 50
// iterations.
func DefaultConfig() Config {
	return Config{
		Hidden:        25,
		Lambda:        1,
		Tolerance:     1e-6,
		MaxIterations: 50,
		Workers:       1,
	}
}

// Model is a trained network.
type Model struct {
	Layout dc.Layout

	// Theta1 has shape (Hidden, Input+1) and Theta2 has shape (Labels, Hidden+1). The first column
	// of each holds the weights of the bias unit.
	Theta1 *mat.Dense
	Theta2 *mat.Dense
}

// NewModel unrolls a parameter vector into a Model. The parameters are copied.
func NewModel(layout dc.Layout, params []float64) (*Model, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	t1, t2, err := layout.Reshape(params)
	if err != nil {
		return nil, err
	}

	return &Model{layout, t1, t2}, nil
}

// Params returns the unrolled parameters of the Model.
func (m *Model) Params() ([]float64, error) {
	return m.Layout.Unroll(m.Theta1, m.Theta2)
}

// InitialParams returns randomly initialized, unrolled weights for the layout, as described by
// the Epsilon and Seed fields of the Config.
func InitialParams(layout dc.Layout, cfg Config) ([]float64, error) {
	gen := initializers.Uniform()
	if cfg.Epsilon != 0 {
		gen.Range(-cfg.Epsilon, cfg.Epsilon)
	}
	if cfg.Seed != 0 {
		gen.Seed(cfg.Seed)
	}

	r1, c1 := layout.Theta1Dims()
	r2, c2 := layout.Theta2Dims()

	return layout.Unroll(gen.Matrix(r1, c1), gen.Matrix(r2, c2))
}

// Train fits a network to data, starting from random weights. data.X should not include a bias
// column. If the Minimizer stops early, the best weights it found are still returned.
func Train(data *dc.Dataset, cfg Config) (*Model, error) {
	if data == nil {
		return nil, dc.NilArg("Dataset")
	} else if data.X == nil || data.X.IsEmpty() {
		return nil, dc.ErrNoData
	}

	layout := dc.Layout{Input: data.Features(), Hidden: cfg.Hidden, Labels: data.NumLabels}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	init, err := InitialParams(layout, cfg)
	if err != nil {
		return nil, err
	}

	return TrainFrom(data, layout, init, cfg)
}

// TrainFrom is Train with given initial parameters, which are not modified. The number of hidden
// units is taken from layout rather than cfg.
func TrainFrom(data *dc.Dataset, layout dc.Layout, init []float64, cfg Config) (*Model, error) {
	if data == nil {
		return nil, dc.NilArg("Dataset")
	} else if cfg.Lambda < 0 {
		return nil, errors.Errorf("Lambda must be >= 0 (%v)", cfg.Lambda)
	}

	pen := cfg.Penalty
	if pen == nil {
		pen = penalties.L2(cfg.Lambda)
	}

	obj, err := costfuncs.NewNetwork(layout, data.X, data.Y, pen)
	if err != nil {
		return nil, err
	}
	obj.Workers = cfg.Workers

	var m dc.Minimizer
	if cfg.Minimizer != nil {
		m = cfg.Minimizer()
	} else {
		m = dc.DefaultMinimizer()
	}

	if m == nil {
		return nil, dc.NilArg("Minimizer")
	}

	if t, ok := m.(dc.Tunable); ok {
		if cfg.Tolerance > 0 {
			t.SetTolerance(cfg.Tolerance)
		}
		if cfg.MaxIterations > 0 {
			t.SetMaxIterations(cfg.MaxIterations)
		}
	}

	dc.Logf("nnet: training %d-%d-%d network on %d samples with %s", layout.Input, layout.Hidden, layout.Labels, data.Size(), m.TypeString())

	res, err := m.Minimize(obj, init)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't train network")
	}

	dc.Logf("nnet: stopped after %d iterations (%s) with cost %g", res.Iterations, res.Status, res.Cost)

	return NewModel(layout, res.X)
}

// Predict returns the most likely label for each row of X, which should not include a bias
// column. Ties go to the lowest label.
func (m *Model) Predict(X mat.Matrix) ([]int, error) {
	return Predict(m.Theta1, m.Theta2, X)
}

// Accuracy returns the fraction of rows of data.X whose predicted label matches data.Y.
func (m *Model) Accuracy(data *dc.Dataset) (float64, error) {
	if data == nil {
		return 0, dc.NilArg("Dataset")
	}

	pred, err := m.Predict(data.X)
	if err != nil {
		return 0, err
	}

	return dc.Accuracy(pred, data.Y)
}

// Predict runs the network given by theta1 and theta2 forward on every row of X at once:
//	h = sigmoid([1 X] Θ1ᵀ)
//	o = sigmoid([1 h] Θ2ᵀ)
// and returns the index of the largest output of each row.
func Predict(theta1, theta2 *mat.Dense, X mat.Matrix) ([]int, error) {
	out, err := Forward(theta1, theta2, X)
	if err != nil {
		return nil, err
	}

	return dc.ArgmaxRows(out), nil
}

// Forward returns the output activations of the network for every row of X, one row per sample
// and one column per label.
func Forward(theta1, theta2 *mat.Dense, X mat.Matrix) (*mat.Dense, error) {
	if theta1 == nil {
		return nil, dc.NilArg("Theta1")
	} else if theta2 == nil {
		return nil, dc.NilArg("Theta2")
	} else if X == nil {
		return nil, dc.NilArg("Design matrix")
	}

	hidden, c1 := theta1.Dims()
	_, c2 := theta2.Dims()
	if _, n := X.Dims(); n+1 != c1 {
		return nil, dc.SizeMismatchError{Expected: c1 - 1, Got: n, Name: "input features"}
	} else if c2 != hidden+1 {
		return nil, dc.SizeMismatchError{Expected: hidden + 1, Got: c2, Name: "Theta2 columns"}
	}

	var z2 mat.Dense
	z2.Mul(dc.AddBias(X), theta1.T())

	var z3 mat.Dense
	z3.Mul(dc.AddBias(operators.SigmoidDense(&z2)), theta2.T())

	return operators.SigmoidDense(&z3), nil
}
