// Package datasets reads labelled samples from text files into digitclass Datasets.
package datasets

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	dc "github.com/sharnoff/digitclass"
	"gonum.org/v1/gonum/mat"
)

// Digits is the number of labels in a handwritten digit dataset
const Digits int = 10

// LoadCSV reads a digit dataset in which each line is a label followed by the values of one
// sample, all separated by commas:
//	label,x1,x2,...,xn
// Every line must have the same number of values. Labels are 0 to 9; a label of 10 is also read
// as 0, because some copies of the data store the digit zero that way. Blank lines are skipped.
func LoadCSV(r io.Reader) (*dc.Dataset, error) {
	return LoadLabelled(r, Digits)
}

// LoadLabelled is LoadCSV with a given number of labels. A label equal to numLabels is read as 0.
func LoadLabelled(r io.Reader, numLabels int) (*dc.Dataset, error) {
	if r == nil {
		return nil, dc.NilArg("Reader")
	} else if numLabels < 1 {
		return nil, errors.Errorf("Number of labels must be >= 1 (%d)", numLabels)
	}

	var data []float64
	var y []int
	width := -1

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<24)
	for line := 1; scanner.Scan(); line++ {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}

		strs := strings.Split(s, ",")
		if width == -1 {
			width = len(strs) - 1
			if width < 1 {
				return nil, errors.Errorf("Line %d has a label but no values", line)
			}
		} else if len(strs)-1 != width {
			return nil, errors.Wrapf(dc.SizeMismatchError{Expected: width, Got: len(strs) - 1, Name: "values"}, "Line %d", line)
		}

		lbl, err := strconv.Atoi(strings.TrimSpace(strs[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "Couldn't parse label on line %d", line)
		}
		if lbl == numLabels {
			lbl = 0
		}
		if lbl < 0 || lbl >= numLabels {
			return nil, errors.Wrapf(dc.LabelError{Index: len(y), Label: lbl, NumLabels: numLabels}, "Line %d", line)
		}
		y = append(y, lbl)

		for i, str := range strs[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "Couldn't parse value %d on line %d", i, line)
			}
			data = append(data, v)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "Couldn't read dataset")
	} else if len(y) == 0 {
		return nil, dc.ErrNoData
	}

	return dc.NewDataset(mat.NewDense(len(y), width, data), y, numLabels)
}

// LoadCSVFile opens the file at path and reads it with LoadCSV.
func LoadCSVFile(path string) (*dc.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't open dataset")
	}
	defer f.Close()

	d, err := LoadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't load %s", path)
	}

	return d, nil
}
