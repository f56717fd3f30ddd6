package digitclass

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables, and can all follow the form:
//	if err == dc.ErrNoData { ... }
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrNoData            = Error{"Dataset has no samples"}
	ErrRegisterNilReturn = Error{"Function return is nil"}
	ErrRegisterDuplicate = Error{"Name has already been registered"}
	ErrUnknownMinimizer  = Error{"No Minimizer registered with that name"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// NilArg returns a NilArgError for the named argument.
func NilArg(name string) NilArgError {
	return NilArgError{name}
}

// SizeMismatchError is returned whenever two pieces of data that must agree in size do not. Name
// describes which dimension was checked.
type SizeMismatchError struct {
	Expected int
	Got      int
	Name     string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Dimension mismatch for %s: expected %d, got %d", err.Name, err.Expected, err.Got)
}

// LabelError is returned when a label lies outside of [0, NumLabels).
type LabelError struct {
	Index     int
	Label     int
	NumLabels int
}

func (err LabelError) Error() string {
	return fmt.Sprintf("Label %d at index %d is outside of [0, %d)", err.Label, err.Index, err.NumLabels)
}

// NumericalError is returned when a cost or gradient is no longer finite. Where names the value
// that went bad.
type NumericalError struct {
	Where string
	Value float64
}

func (err NumericalError) Error() string {
	return fmt.Sprintf("Non-finite value in %s (%v)", err.Where, err.Value)
}
