// Package gradcheck compares analytical gradients against estimates from central finite
// differences. The estimates need two evaluations of the cost per parameter, so this is only
// practical for small problems; it exists to catch mistakes in backpropagation, not to train.
package gradcheck

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	dc "github.com/sharnoff/digitclass"
	"github.com/sharnoff/digitclass/costfuncs"
	"github.com/sharnoff/digitclass/initializers"
	"github.com/sharnoff/digitclass/penalties"
	"gonum.org/v1/gonum/diff/fd"
)

const (
	// Step is the perturbation applied to each parameter
	Step float64 = 1e-4

	// Tolerance is the largest absolute difference allowed between an analytical and a numerical
	// gradient component
	Tolerance float64 = 1e-7
)

// ComputeNumericalGradient estimates the gradient of J at theta. For each parameter p, it is
//	(J(θ + ε·e_p) - J(θ - ε·e_p)) / 2ε
// with ε = Step. The first error returned by J stops the estimate and is returned.
func ComputeNumericalGradient(J func([]float64) (float64, error), theta []float64) ([]float64, error) {
	if J == nil {
		return nil, dc.NilArg("Cost function")
	} else if len(theta) == 0 {
		return nil, errors.Errorf("No parameters to perturb")
	}

	var jErr error
	f := func(x []float64) float64 {
		if jErr != nil {
			return 0
		}

		c, err := J(x)
		if err != nil {
			jErr = err
		}

		return c
	}

	settings := &fd.Settings{
		Formula: fd.Central,
		Step:    Step,
	}

	numgrad := fd.Gradient(nil, f, theta, settings)
	if jErr != nil {
		return nil, errors.Wrapf(jErr, "Couldn't evaluate cost while estimating gradient")
	}

	return numgrad, nil
}

// Cost adapts an Objective into the form taken by ComputeNumericalGradient, discarding the
// analytical gradient.
func Cost(obj dc.Objective) func([]float64) (float64, error) {
	return func(params []float64) (float64, error) {
		c, _, err := obj.Evaluate(params)
		return c, err
	}
}

// Report holds the outcome of comparing two gradients.
type Report struct {
	Analytical []float64
	Numerical  []float64

	// MaxDiff is the largest absolute difference between corresponding components
	MaxDiff float64

	// RelDiff is norm(numerical - analytical) / norm(numerical + analytical)
	RelDiff float64

	Tolerance float64
}

// OK returns whether every component is within Tolerance.
func (r Report) OK() bool {
	return r.MaxDiff < r.Tolerance
}

// String lays the two gradients side by side, so that a failed check can be diffed by eye.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-4s %22s %22s %12s\n", "#", "analytical", "numerical", "diff")
	for i := range r.Analytical {
		d := math.Abs(r.Analytical[i] - r.Numerical[i])
		mark := ""
		if d >= r.Tolerance {
			mark = " !"
		}
		fmt.Fprintf(&b, "%-4d %22.15g %22.15g %12.3g%s\n", i, r.Analytical[i], r.Numerical[i], d, mark)
	}
	fmt.Fprintf(&b, "max difference %g (tolerance %g), relative difference %g\n", r.MaxDiff, r.Tolerance, r.RelDiff)

	return b.String()
}

// Compare builds a Report from two gradients of equal length.
func Compare(analytical, numerical []float64, tol float64) (Report, error) {
	if len(analytical) != len(numerical) {
		return Report{}, dc.SizeMismatchError{Expected: len(analytical), Got: len(numerical), Name: "numerical gradient"}
	}

	r := Report{Analytical: analytical, Numerical: numerical, Tolerance: tol}

	var diffSq, sumSq float64
	for i := range analytical {
		d := analytical[i] - numerical[i]
		s := analytical[i] + numerical[i]
		r.MaxDiff = math.Max(r.MaxDiff, math.Abs(d))
		diffSq += d * d
		sumSq += s * s
	}

	if sumSq != 0 {
		r.RelDiff = math.Sqrt(diffSq) / math.Sqrt(sumSq)
	}

	return r, nil
}

// Check compares the gradient returned by an Objective at theta against a numerical estimate,
// using the given tolerance.
func Check(obj dc.Objective, theta []float64, tol float64) (Report, error) {
	if obj == nil {
		return Report{}, dc.NilArg("Objective")
	}

	_, grad, err := obj.Evaluate(theta)
	if err != nil {
		return Report{}, errors.Wrapf(err, "Couldn't evaluate analytical gradient")
	}

	numgrad, err := ComputeNumericalGradient(Cost(obj), theta)
	if err != nil {
		return Report{}, err
	}

	return Compare(grad, numgrad, tol)
}

// DebugLayout is the small network used by CheckNNGradients
var DebugLayout = dc.Layout{Input: 3, Hidden: 5, Labels: 3}

// debugSamples is the number of samples in the debug network
const debugSamples int = 5

// DebugNetwork returns the fixed network used by CheckNNGradients: deterministic weights and
// inputs from DebugInitializeWeights, with labels i mod 3. The unrolled parameters are returned
// along with the cost function.
func DebugNetwork(λ float64) (*costfuncs.Network, []float64, error) {
	l := DebugLayout

	theta1 := initializers.DebugInitializeWeights(l.Input, l.Hidden)
	theta2 := initializers.DebugInitializeWeights(l.Hidden, l.Labels)

	// reusing DebugInitializeWeights for the inputs
	X := initializers.DebugInitializeWeights(l.Input-1, debugSamples)

	y := make([]int, debugSamples)
	for i := range y {
		y[i] = i % l.Labels
	}

	params, err := l.Unroll(theta1, theta2)
	if err != nil {
		return nil, nil, err
	}

	n, err := costfuncs.NewNetwork(l, X, y, penalties.L2(λ))
	if err != nil {
		return nil, nil, err
	}

	return n, params, nil
}

// CheckNNGradients compares the backpropagation gradient of the debug network (see DebugNetwork)
// against its numerical estimate, with regularization strength λ. An error is only returned if
// the check could not be run; whether the gradients agree is given by Report.OK.
func CheckNNGradients(λ float64) (Report, error) {
	n, params, err := DebugNetwork(λ)
	if err != nil {
		return Report{}, errors.Wrapf(err, "Couldn't build debug network")
	}

	r, err := Check(n, params, Tolerance)
	if err != nil {
		return Report{}, err
	}

	dc.Logf("gradcheck: λ = %g, max difference %g, relative difference %g", λ, r.MaxDiff, r.RelDiff)
	return r, nil
}
