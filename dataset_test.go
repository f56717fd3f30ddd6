package digitclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewDataset(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})

	d, err := NewDataset(X, []int{0, 2, 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Size())
	assert.Equal(t, 2, d.Features())

	_, err = NewDataset(X, []int{0, 1}, 3)
	assert.Equal(t, SizeMismatchError{3, 2, "labels"}, err)

	_, err = NewDataset(X, []int{0, 3, 1}, 3)
	assert.Equal(t, LabelError{1, 3, 3}, err)

	_, err = NewDataset(X, []int{0, -1, 1}, 3)
	assert.Equal(t, LabelError{1, -1, 3}, err)

	_, err = NewDataset(nil, nil, 3)
	assert.IsType(t, NilArgError{}, err)

	_, err = NewDataset(&mat.Dense{}, nil, 3)
	assert.Equal(t, ErrNoData, err)

	_, err = NewDataset(X, []int{0, 0, 0}, 0)
	assert.Error(t, err)
}

func TestBinarize(t *testing.T) {
	y := []int{0, 2, 1, 2}
	assert.Equal(t, []float64{0, 1, 0, 1}, Binarize(y, 2))
	assert.Equal(t, []float64{0, 0, 0, 0}, Binarize(y, 5))
	assert.Equal(t, []float64{0, 0, 1, 0, 0}, OneHot(2, 5))
}

func TestAddBias(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{3, 4, 5, 6})

	b := AddBias(X)
	assert.Equal(t, []float64{1, 3, 4, 1, 5, 6}, b.RawMatrix().Data)

	// X is untouched
	assert.Equal(t, []float64{3, 4, 5, 6}, X.RawMatrix().Data)

	d := &Dataset{X: X, Y: []int{0, 1}, NumLabels: 2}
	wb := d.WithBias()
	assert.Equal(t, 3, wb.Features())
	assert.Equal(t, d.Y, wb.Y)
	assert.Equal(t, 2, d.Features())
}
