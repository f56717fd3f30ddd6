package digitclass

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Dataset pairs a design matrix with its labels. X has one sample per row; Y[i] is the label of
// row i. A Dataset should be treated as read-only once created: trainers share it between
// goroutines without copying.
type Dataset struct {
	X         *mat.Dense
	Y         []int
	NumLabels int
}

// NewDataset checks that X and y agree and that every label is within [0, numLabels), returning
// the Dataset that holds them. X and y are not copied.
func NewDataset(X *mat.Dense, y []int, numLabels int) (*Dataset, error) {
	if X == nil {
		return nil, NilArg("Design matrix")
	} else if X.IsEmpty() {
		return nil, ErrNoData
	} else if numLabels < 1 {
		return nil, errors.Errorf("Number of labels must be >= 1 (%d)", numLabels)
	}

	m, _ := X.Dims()
	if len(y) != m {
		return nil, SizeMismatchError{m, len(y), "labels"}
	}

	if err := CheckLabels(y, numLabels); err != nil {
		return nil, err
	}

	return &Dataset{X: X, Y: y, NumLabels: numLabels}, nil
}

// CheckLabels returns a LabelError for the first label outside of [0, numLabels).
func CheckLabels(y []int, numLabels int) error {
	for i, l := range y {
		if l < 0 || l >= numLabels {
			return LabelError{i, l, numLabels}
		}
	}

	return nil
}

// Size returns the number of samples.
func (d *Dataset) Size() int {
	m, _ := d.X.Dims()
	return m
}

// Features returns the number of values in each sample.
func (d *Dataset) Features() int {
	_, n := d.X.Dims()
	return n
}

// Binarize returns the outcome vector for a single class: 1 where the label equals class, 0
// everywhere else.
func (d *Dataset) Binarize(class int) []float64 {
	return Binarize(d.Y, class)
}

// Binarize is the function form of Dataset.Binarize.
func Binarize(y []int, class int) []float64 {
	out := make([]float64, len(y))
	for i, l := range y {
		if l == class {
			out[i] = 1
		}
	}

	return out
}

// OneHot returns a vector of length numLabels that is 1 at label and 0 elsewhere. OneHot assumes
// that the label is in range.
func OneHot(label, numLabels int) []float64 {
	v := make([]float64, numLabels)
	v[label] = 1
	return v
}

// AddBias returns a copy of X with a column of ones prepended, so that the first parameter of a
// linear model acts as its intercept.
func AddBias(X mat.Matrix) *mat.Dense {
	m, n := X.Dims()
	out := mat.NewDense(m, n+1, nil)
	for i := 0; i < m; i++ {
		out.Set(i, 0, 1)
	}

	out.Slice(0, m, 1, n+1).(*mat.Dense).Copy(X)
	return out
}

// WithBias returns a new Dataset whose design matrix has a leading column of ones. Labels are
// shared with the original.
func (d *Dataset) WithBias() *Dataset {
	return &Dataset{X: AddBias(d.X), Y: d.Y, NumLabels: d.NumLabels}
}
