// Package initializers provides the generators for starting weights: uniformly random weights
// that break the symmetry between hidden units, and deterministic weights for reproducible
// gradient checks.
package initializers

import (
	"math"
	"sync"

	"github.com/pkg/errors"
)

// default values, because 'default' is a keyword
var (
	defaultMux   sync.RWMutex
	defaultValue = map[string]float64{
		"uniform-epsilon": 0.12,
	}
)

// SetDefault changes one of the default values used by this package. The only value that can be
// set is "uniform-epsilon", the half-width of the range used by Uniform and
// RandInitializeWeights.
func SetDefault(name string, value float64) error {
	defaultMux.Lock()
	defer defaultMux.Unlock()

	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// SetDefault_Lazy simply calls SetDefault, but panics instead of returning an error
func SetDefault_Lazy(name string, value float64) {
	if err := SetDefault(name, value); err != nil {
		panic(err)
	}
}

func getDefault(name string) float64 {
	defaultMux.RLock()
	defer defaultMux.RUnlock()
	return defaultValue[name]
}
