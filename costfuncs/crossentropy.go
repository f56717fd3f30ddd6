package costfuncs

import (
	"math"
)

// Epsilon bounds the arguments to the logarithms in the cross-entropy cost to [Epsilon, 1]. When
// the sigmoid saturates to exactly 0 or 1 (which happens for |z| > ~37), the cost of a wrong
// prediction would otherwise be infinite. Only the cost is clamped: gradients are always computed
// from the unclamped activations, so they are exact. Clamping does not hide bad inputs: NaN or
// infinite activations still produce a digitclass.NumericalError.
const Epsilon float64 = 1e-15

func clamp(p float64) float64 {
	if p < Epsilon {
		return Epsilon
	}

	return p
}

// crossEntropy is the binary cross-entropy of a single output h against target y
func crossEntropy(h, y float64) float64 {
	var sum float64
	if y != 0 {
		sum -= y * math.Log(clamp(h))
	}
	if y != 1 {
		sum -= (1 - y) * math.Log(clamp(1-h))
	}

	return sum
}
