package display

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	dc "github.com/sharnoff/digitclass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestImageIsTransposed(t *testing.T) {
	// stored column by column: the first column of the picture is {0, 1}
	img, err := Image([]float64{0, 1, 2, 3}, 2)
	require.NoError(t, err)

	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(85), img.GrayAt(0, 1).Y)
	assert.Equal(t, uint8(170), img.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(1, 1).Y)
}

func TestImageConstant(t *testing.T) {
	img, err := Image([]float64{4, 4, 4, 4}, 2)
	require.NoError(t, err)
	for _, p := range img.Pix {
		assert.Equal(t, uint8(0), p)
	}
}

func TestGrid(t *testing.T) {
	// 5 rows gives a 2x2 grid; the fifth is left out
	X := mat.NewDense(5, 4, nil)
	for i := 0; i < 5; i++ {
		X.SetRow(i, []float64{0, 0, 0, float64(i + 1)})
	}

	img, err := Grid(X, 2)
	require.NoError(t, err)

	size := 2*2 + Pad
	assert.Equal(t, size, img.Bounds().Dx())
	assert.Equal(t, size, img.Bounds().Dy())

	// the bottom-right pixel of every tile is white, and the padding is black
	step := 2 + Pad
	for ty := 0; ty < 2; ty++ {
		for tx := 0; tx < 2; tx++ {
			assert.Equal(t, uint8(255), img.GrayAt(tx*step+1, ty*step+1).Y)
			assert.Equal(t, uint8(0), img.GrayAt(tx*step, ty*step).Y)
		}
	}
	assert.Equal(t, uint8(0), img.GrayAt(2, 0).Y)
}

func TestGridErrors(t *testing.T) {
	_, err := Grid(mat.NewDense(4, 5, nil), 2)
	assert.Equal(t, dc.SizeMismatchError{Expected: 4, Got: 5, Name: "pixels"}, err)

	_, err = Grid(nil, 2)
	assert.IsType(t, dc.NilArgError{}, err)

	_, err = Grid(mat.NewDense(1, 1, nil), 0)
	assert.Error(t, err)

	_, err = Image([]float64{1, 2, 3}, 2)
	assert.IsType(t, dc.SizeMismatchError{}, err)
}

func TestWritePNG(t *testing.T) {
	img, err := Image([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8}, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	path := filepath.Join(t.TempDir(), "digit.png")
	assert.NoError(t, SavePNG(path, img))

	assert.IsType(t, dc.NilArgError{}, WritePNG(nil, img))
}
