package initializers

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RandInitializeWeights returns an lIn x lOut matrix of weights drawn uniformly from [-ε, ε], with
// ε = 0.12 by default. Random starting weights keep the hidden units from all learning the same
// function.
//
// For the weights between two layers, the first argument is the size of the next layer and the
// second is the size of the previous layer plus one for its bias unit, e.g.
//	theta1 := initializers.RandInitializeWeights(hidden, input+1)
func RandInitializeWeights(lIn, lOut int) *mat.Dense {
	return Uniform().Matrix(lIn, lOut)
}

// EpsilonFor gives a range for RandInitializeWeights that is scaled by the sizes of the layers on
// either side: sqrt(6) / sqrt(lIn + lOut). For 400 inputs and 25 hidden units this is close to
// the default of 0.12.
func EpsilonFor(lIn, lOut int) float64 {
	return math.Sqrt(6) / math.Sqrt(float64(lIn+lOut))
}

// DebugInitializeWeights returns the weights of a layer with fanIn incoming connections and
// fanOut outgoing connections, as a fanOut x (fanIn+1) matrix. The values are sin(k) for
// k = 0, 1, 2, ... in row-major order, so they are always the same. They are only meant for
// reproducible tests and gradient checks.
func DebugInitializeWeights(fanIn, fanOut int) *mat.Dense {
	cols := fanIn + 1
	data := make([]float64, fanOut*cols)
	for k := range data {
		data[k] = math.Sin(float64(k))
	}

	return mat.NewDense(fanOut, cols, data)
}
