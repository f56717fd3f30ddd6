// Package display renders samples from a design matrix as grayscale images. Each sample is a
// row of side*side pixel values stored column by column, so the row is transposed as it is drawn.
package display

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	dc "github.com/sharnoff/digitclass"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Pad is the number of black pixels between the tiles of a Grid
const Pad int = 1

// Image draws a single sample. Values are scaled so that the smallest is black and the largest is
// white; a constant sample is drawn black.
func Image(row []float64, side int) (*image.Gray, error) {
	if side < 1 {
		return nil, errors.Errorf("Image side must be >= 1 (%d)", side)
	} else if len(row) != side*side {
		return nil, dc.SizeMismatchError{Expected: side * side, Got: len(row), Name: "pixels"}
	}

	img := image.NewGray(image.Rect(0, 0, side, side))
	draw(img, row, side, 0, 0)
	return img, nil
}

// Grid draws the first k² rows of X as a k x k grid of tiles, where k is the largest integer with
// k² <= rows(X). Tiles are filled left to right, then top to bottom, and are separated by Pad
// pixels.
func Grid(X mat.Matrix, side int) (*image.Gray, error) {
	if X == nil {
		return nil, dc.NilArg("Design matrix")
	} else if side < 1 {
		return nil, errors.Errorf("Image side must be >= 1 (%d)", side)
	}

	m, n := X.Dims()
	if n != side*side {
		return nil, dc.SizeMismatchError{Expected: side * side, Got: n, Name: "pixels"}
	}

	k := int(math.Sqrt(float64(m)))
	for (k+1)*(k+1) <= m {
		k++
	}
	if k == 0 {
		return nil, dc.ErrNoData
	}

	size := k*side + (k-1)*Pad
	img := image.NewGray(image.Rect(0, 0, size, size))

	row := make([]float64, n)
	for i := 0; i < k*k; i++ {
		mat.Row(row, i, X)
		x0 := (i % k) * (side + Pad)
		y0 := (i / k) * (side + Pad)
		draw(img, row, side, x0, y0)
	}

	return img, nil
}

// draw writes one tile with its top-left corner at (x0, y0)
func draw(img *image.Gray, row []float64, side, x0, y0 int) {
	lo, hi := floats.Min(row), floats.Max(row)
	scale := 0.0
	if hi > lo {
		scale = 255 / (hi - lo)
	}

	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			v := (row[x*side+y] - lo) * scale
			img.SetGray(x0+x, y0+y, color.Gray{Y: uint8(math.Round(v))})
		}
	}
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if w == nil {
		return dc.NilArg("Writer")
	} else if img == nil {
		return dc.NilArg("Image")
	}

	return errors.Wrapf(png.Encode(w, img), "Couldn't encode PNG")
}

// SavePNG writes img to a new file at path, replacing any file already there.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Couldn't create %s", path)
	}

	if err = WritePNG(f, img); err != nil {
		f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "Couldn't close %s", path)
}
