// Package onevsall trains a multi-class classifier out of regularized logistic regressions: one
// binary classifier per label, each separating that label from all of the others.
package onevsall

import (
	"github.com/pkg/errors"
	dc "github.com/sharnoff/digitclass"
	"github.com/sharnoff/digitclass/costfuncs"
	"github.com/sharnoff/digitclass/penalties"
	"github.com/sharnoff/digitclass/utils"
	"gonum.org/v1/gonum/mat"

	// registers the default Minimizer
	_ "github.com/sharnoff/digitclass/optimizers"
)

// Config holds the settings for Train. The zero value is not useful; start from DefaultConfig.
type Config struct {
	// Lambda is the strength of the L2 penalty on every parameter but the first. It is ignored
	// if Penalty is set.
	Lambda float64

	// Penalty, if not nil, replaces the L2 penalty given by Lambda.
	Penalty dc.Penalty

	// Minimizer creates the Minimizer for each class. Every class gets its own. If nil, the
	// default Minimizer is used.
	Minimizer func() dc.Minimizer

	// Tolerance and MaxIterations are given to the Minimizer if it implements
	// digitclass.Tunable.
	Tolerance     float64
	MaxIterations int

	// Workers is the number of classes fit at once. 1 fits them in order.
	Workers int
}

// DefaultConfig returns the settings used for handwritten digits: λ = 0.1, a tolerance of 1e-6,
// and at most 400 iterations per class, fit one class at a time.
func DefaultConfig() Config {
	return Config{
		Lambda:        0.1,
		Tolerance:     1e-6,
		MaxIterations: 400,
		Workers:       1,
	}
}

// problem is the read-only data shared by every class fit
type problem struct {
	X   *mat.Dense
	Y   []int
	pen dc.Penalty
	cfg Config
}

func (p *problem) minimizer() (dc.Minimizer, error) {
	var m dc.Minimizer
	if p.cfg.Minimizer != nil {
		m = p.cfg.Minimizer()
	} else {
		m = dc.DefaultMinimizer()
	}

	if m == nil {
		return nil, dc.NilArg("Minimizer")
	}

	if t, ok := m.(dc.Tunable); ok {
		if p.cfg.Tolerance > 0 {
			t.SetTolerance(p.cfg.Tolerance)
		}
		if p.cfg.MaxIterations > 0 {
			t.SetMaxIterations(p.cfg.MaxIterations)
		}
	}

	return m, nil
}

// Train fits one logistic regression per label in data, returning their parameters as the
// columns of an n x NumLabels matrix, where n is the number of columns of data.X. The first
// column of data.X is treated as the bias and is not regularized, so it should usually be all
// ones (see Dataset.WithBias).
//
// A class whose Minimizer stops before converging still contributes its best parameters.
func Train(data *dc.Dataset, cfg Config) (*mat.Dense, error) {
	if data == nil {
		return nil, dc.NilArg("Dataset")
	} else if data.X == nil || data.X.IsEmpty() {
		return nil, dc.ErrNoData
	} else if len(data.Y) != data.Size() {
		return nil, dc.SizeMismatchError{Expected: data.Size(), Got: len(data.Y), Name: "labels"}
	} else if err := dc.CheckLabels(data.Y, data.NumLabels); err != nil {
		return nil, err
	} else if cfg.Lambda < 0 {
		return nil, errors.Errorf("Lambda must be >= 0 (%v)", cfg.Lambda)
	}

	p := &problem{X: data.X, Y: data.Y, pen: cfg.Penalty, cfg: cfg}
	if p.pen == nil {
		p.pen = penalties.L2(cfg.Lambda)
	}

	cols := make([][]float64, data.NumLabels)
	errs := make([]error, data.NumLabels)

	// each class writes only to its own index
	fit := func(c int) {
		cols[c], errs[c] = fitClass(c, p)
	}

	utils.MultiThreadN(0, data.NumLabels, fit, 1, cfg.Workers)

	for c, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "Couldn't fit class %d", c)
		}
	}

	theta := mat.NewDense(data.Features(), data.NumLabels, nil)
	for c := range cols {
		theta.SetCol(c, cols[c])
	}

	return theta, nil
}

// fitClass minimizes the logistic cost of class against all others, starting from zero. It
// only reads from p, so any number of calls may run at once.
func fitClass(class int, p *problem) ([]float64, error) {
	obj, err := costfuncs.NewLogistic(p.X, dc.Binarize(p.Y, class), p.pen)
	if err != nil {
		return nil, err
	}

	m, err := p.minimizer()
	if err != nil {
		return nil, err
	}

	res, err := m.Minimize(obj, make([]float64, obj.Size()))
	if err != nil {
		return nil, err
	} else if len(res.X) != obj.Size() {
		return nil, dc.SizeMismatchError{Expected: obj.Size(), Got: len(res.X), Name: "minimized parameters"}
	}

	if !res.Converged {
		dc.Logf("onevsall: class %d did not converge after %d iterations (%s); keeping cost %g", class, res.Iterations, res.Status, res.Cost)
	} else {
		dc.Logf("onevsall: class %d converged after %d iterations with cost %g", class, res.Iterations, res.Cost)
	}

	return res.X, nil
}

// Predict returns the most likely label for each row of X, given the parameters from Train. The
// scores Xθ are compared directly: the sigmoid would not change which is largest. Ties go to the
// lowest label.
func Predict(theta *mat.Dense, X mat.Matrix) ([]int, error) {
	if theta == nil {
		return nil, dc.NilArg("Parameters")
	} else if X == nil {
		return nil, dc.NilArg("Design matrix")
	}

	n, _ := theta.Dims()
	if _, c := X.Dims(); c != n {
		return nil, dc.SizeMismatchError{Expected: n, Got: c, Name: "features"}
	}

	var scores mat.Dense
	scores.Mul(X, theta)

	return dc.ArgmaxRows(&scores), nil
}

// Accuracy returns the fraction of rows of data.X whose predicted label matches data.Y.
func Accuracy(theta *mat.Dense, data *dc.Dataset) (float64, error) {
	if data == nil {
		return 0, dc.NilArg("Dataset")
	}

	pred, err := Predict(theta, data.X)
	if err != nil {
		return 0, err
	}

	return dc.Accuracy(pred, data.Y)
}
