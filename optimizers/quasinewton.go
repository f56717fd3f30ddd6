package optimizers

import (
	"math"

	"github.com/pkg/errors"
	dc "github.com/sharnoff/digitclass"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

const (
	// DefaultTolerance is the gradient threshold below which minimization stops
	DefaultTolerance float64 = 1e-6

	// DefaultMaxIterations is the cap on major iterations
	DefaultMaxIterations int = 400
)

type quasiNewton struct {
	tol     float64
	maxIter int
}

// QuasiNewton returns a Minimizer that uses the BFGS method, which builds an approximation of the
// Hessian from successive gradients, and so behaves like Newton's method without needing second
// derivatives. It stops when the largest component of the gradient is below the tolerance, or
// after the maximum number of iterations.
//
// QuasiNewton implements digitclass.Tunable.
func QuasiNewton() *quasiNewton {
	return &quasiNewton{DefaultTolerance, DefaultMaxIterations}
}

// Tolerance sets the gradient threshold, returning the same Minimizer
func (q *quasiNewton) Tolerance(tol float64) *quasiNewton {
	q.tol = tol
	return q
}

// MaxIterations sets the iteration cap, returning the same Minimizer
func (q *quasiNewton) MaxIterations(iters int) *quasiNewton {
	q.maxIter = iters
	return q
}

func (q *quasiNewton) SetTolerance(tol float64) {
	q.Tolerance(tol)
}

func (q *quasiNewton) SetMaxIterations(iters int) {
	q.MaxIterations(iters)
}

func (q *quasiNewton) TypeString() string {
	return "bfgs"
}

// Minimize is the implementation of digitclass.Minimizer. Errors from the Objective are returned;
// failures of the line search are not, and instead give the best parameters found so far with
// Converged set to false.
func (q *quasiNewton) Minimize(obj dc.Objective, init []float64) (*dc.Result, error) {
	if obj == nil {
		return nil, dc.NilArg("Objective")
	} else if len(init) != obj.Size() {
		return nil, dc.SizeMismatchError{Expected: obj.Size(), Got: len(init), Name: "initial parameters"}
	} else if q.tol <= 0 || math.IsNaN(q.tol) {
		return nil, errors.Errorf("Tolerance must be > 0 (%v)", q.tol)
	} else if q.maxIter < 1 {
		return nil, errors.Errorf("Maximum iterations must be >= 1 (%d)", q.maxIter)
	}

	c := &cache{obj: obj}

	// evaluating once up front catches any problem with the data before gonum sees it
	c.eval(init)
	if c.err != nil {
		return nil, errors.Wrapf(c.err, "Couldn't evaluate objective at initial parameters")
	}

	problem := optimize.Problem{
		Func:   c.fn,
		Grad:   c.grad,
		Status: c.status,
	}

	settings := &optimize.Settings{
		InitValues: &optimize.Location{
			F:        c.f,
			Gradient: append([]float64(nil), c.g...),
		},
		GradientThreshold: q.tol,
		MajorIterations:   q.maxIter,
	}

	res, err := optimize.Minimize(problem, init, settings, &optimize.BFGS{})
	if c.err != nil {
		return nil, errors.Wrapf(c.err, "Objective failed during minimization")
	}

	result := &dc.Result{
		X:           append([]float64(nil), init...),
		Cost:        c.initial,
		Evaluations: c.evals,
	}

	if res != nil && len(res.X) == len(init) {
		copy(result.X, res.X)
		result.Cost = res.F
		result.Iterations = res.MajorIterations
		result.Status = res.Status.String()
		result.Converged = err == nil && converged(res.Status)
	}

	if err != nil {
		result.Converged = false
		result.Status = err.Error()
		dc.Logf("bfgs: stopped early after %d iterations, keeping best parameters (cost %g): %v", result.Iterations, result.Cost, err)
	}

	return result, nil
}

func converged(s optimize.Status) bool {
	switch s {
	case optimize.Success, optimize.GradientThreshold, optimize.FunctionConvergence:
		return true
	}

	return false
}

// cache remembers the most recent evaluation, because gonum asks for the value and the gradient
// at the same point separately
type cache struct {
	obj dc.Objective

	x, g    []float64
	f       float64
	initial float64
	evals   int

	// the first error returned by the objective
	err error
}

func (c *cache) eval(x []float64) {
	if c.x != nil && floats.Equal(c.x, x) {
		return
	}

	f, g, err := c.obj.Evaluate(x)
	c.evals++
	if err != nil {
		if c.err == nil {
			c.err = err
		}

		// an infinite cost makes the line search back off
		f, g = math.Inf(1), make([]float64, len(x))
	}

	if c.evals == 1 {
		c.initial = f
	}

	c.x = append(c.x[:0], x...)
	c.f, c.g = f, g
}

func (c *cache) fn(x []float64) float64 {
	c.eval(x)
	return c.f
}

func (c *cache) grad(grad, x []float64) {
	c.eval(x)
	copy(grad, c.g)
}

func (c *cache) status() (optimize.Status, error) {
	if c.err != nil {
		return optimize.Failure, c.err
	}

	return optimize.NotTerminated, nil
}
