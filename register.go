package digitclass

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

var (
	registryMux      sync.RWMutex
	minimizers       = make(map[string]func() Minimizer)
	defaultMinimizer func() Minimizer
)

// RegisterMinimizer makes a Minimizer available by name, typically from the init function of the
// package that provides it. Registering the same name twice returns ErrRegisterDuplicate, and a
// function that returns nil gives ErrRegisterNilReturn.
func RegisterMinimizer(name string, f func() Minimizer) error {
	if f == nil {
		return NilArg("Minimizer function")
	} else if f() == nil {
		return ErrRegisterNilReturn
	}

	registryMux.Lock()
	defer registryMux.Unlock()

	if _, ok := minimizers[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Couldn't register Minimizer %q", name)
	}

	minimizers[name] = f
	return nil
}

// NewMinimizer returns a fresh instance of the Minimizer registered under name.
func NewMinimizer(name string) (Minimizer, error) {
	registryMux.RLock()
	f, ok := minimizers[name]
	registryMux.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrUnknownMinimizer, "Couldn't create Minimizer %q", name)
	}

	return f(), nil
}

// Minimizers returns the sorted names of all registered Minimizers.
func Minimizers() []string {
	registryMux.RLock()
	defer registryMux.RUnlock()

	names := make([]string, 0, len(minimizers))
	for n := range minimizers {
		names = append(names, n)
	}

	sort.Strings(names)
	return names
}

// SetDefaultMinimizer sets the function used to create Minimizers when none is given to a
// trainer. SetDefaultMinimizer will panic with type NilArgError if f is nil.
func SetDefaultMinimizer(f func() Minimizer) {
	if f == nil {
		panic(NilArg("Default Minimizer function"))
	}

	registryMux.Lock()
	defaultMinimizer = f
	registryMux.Unlock()
}

// DefaultMinimizer returns a new instance of the default Minimizer, or nil if no default has been
// set. The package "optimizers" sets one when imported.
func DefaultMinimizer() Minimizer {
	registryMux.RLock()
	f := defaultMinimizer
	registryMux.RUnlock()

	if f == nil {
		return nil
	}

	return f()
}
