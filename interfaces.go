package digitclass

// Objective is a scalar function of a flat parameter vector, together with its gradient. Both
// cost functions in "costfuncs" implement it.
type Objective interface {
	// Size returns the number of parameters that Evaluate expects.
	Size() int

	// Evaluate returns the cost at the given parameters and the gradient of the cost with respect
	// to each of them. The gradient has length Size() and follows the same ordering as params.
	//
	// Evaluate must not modify params, and may be called many times with the same values.
	Evaluate(params []float64) (float64, []float64, error)
	// Evaluate(params []float64) (cost float64, grad []float64, err error)
}

// Minimizer refines an initial parameter vector so that it reduces the value of an Objective.
type Minimizer interface {
	// TypeString returns the name that the Minimizer is registered under.
	TypeString() string

	// Minimize runs until convergence or until its own iteration cap is reached. Running out of
	// iterations is not an error; the best parameters found are returned with Converged set to
	// false. init is not modified.
	Minimize(obj Objective, init []float64) (*Result, error)
}

// Tunable is implemented by Minimizers that accept a convergence tolerance and an iteration cap.
// The trainers use it to apply their configuration before minimizing.
type Tunable interface {
	Minimizer

	SetTolerance(tol float64)
	SetMaxIterations(iters int)
}

// Result is returned by Minimizers.
type Result struct {
	// X is the best parameter vector found
	X []float64

	// Cost is the value of the Objective at X
	Cost float64

	// Iterations is the number of major iterations performed
	Iterations int

	// Evaluations is the number of calls made to Objective.Evaluate
	Evaluations int

	// Converged indicates whether or not the Minimizer stopped because its tolerance was met
	Converged bool

	// Status is a free-form description of why the Minimizer stopped
	Status string
}

// Penalty is the regularization applied to the non-bias parameters of a model. Costs and
// derivatives are unscaled; the cost functions divide both by the number of samples.
type Penalty interface {
	TypeString() string

	// Cost returns the total penalty for the given weights.
	Cost(ws []float64) float64

	// Deriv returns the derivative of the penalty with respect to a single weight.
	Deriv(w float64) float64
}
