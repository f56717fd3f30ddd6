package digitclass

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ArgmaxRows returns, for each row of scores, the column index of its largest value. If several
// columns share the maximum, the first is chosen.
func ArgmaxRows(scores mat.Matrix) []int {
	r, c := scores.Dims()
	out := make([]int, r)
	row := make([]float64, c)
	for i := range out {
		mat.Row(row, i, scores)
		out[i] = floats.MaxIdx(row)
	}

	return out
}

// Accuracy returns the fraction of predictions that equal their labels, in [0, 1]. The two slices
// must have the same non-zero length.
func Accuracy(predicted, labels []int) (float64, error) {
	if len(predicted) != len(labels) {
		return 0, SizeMismatchError{len(labels), len(predicted), "predictions"}
	} else if len(labels) == 0 {
		return 0, ErrNoData
	}

	var correct int
	for i := range predicted {
		if predicted[i] == labels[i] {
			correct++
		}
	}

	return float64(correct) / float64(len(labels)), nil
}

// CheckFinite returns a NumericalError naming where if any value is NaN or infinite.
func CheckFinite(where string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NumericalError{where, v}
		}
	}

	return nil
}
