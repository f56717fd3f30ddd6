package digitclass

import (
	"bytes"
	"log"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMinimizer struct{}

func (stubMinimizer) TypeString() string { return "stub" }

func (stubMinimizer) Minimize(obj Objective, init []float64) (*Result, error) {
	return &Result{X: init, Converged: true}, nil
}

func TestRegisterMinimizer(t *testing.T) {
	require.NoError(t, RegisterMinimizer("stub", func() Minimizer { return stubMinimizer{} }))

	m, err := NewMinimizer("stub")
	require.NoError(t, err)
	assert.Equal(t, "stub", m.TypeString())
	assert.Contains(t, Minimizers(), "stub")

	err = RegisterMinimizer("stub", func() Minimizer { return stubMinimizer{} })
	assert.Equal(t, ErrRegisterDuplicate, errors.Cause(err))

	err = RegisterMinimizer("nil-return", func() Minimizer { return nil })
	assert.Equal(t, ErrRegisterNilReturn, err)

	err = RegisterMinimizer("nil", nil)
	assert.IsType(t, NilArgError{}, err)

	_, err = NewMinimizer("does-not-exist")
	assert.Equal(t, ErrUnknownMinimizer, errors.Cause(err))
}

func TestDefaultMinimizer(t *testing.T) {
	registryMux.RLock()
	old := defaultMinimizer
	registryMux.RUnlock()
	defer func() {
		registryMux.Lock()
		defaultMinimizer = old
		registryMux.Unlock()
	}()

	SetDefaultMinimizer(func() Minimizer { return stubMinimizer{} })
	require.NotNil(t, DefaultMinimizer())
	assert.Equal(t, "stub", DefaultMinimizer().TypeString())

	assert.Panics(t, func() { SetDefaultMinimizer(nil) })
}

func TestLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(log.New(&buf, "", 0))
	Logf("cost %g", 0.5)
	assert.Equal(t, "cost 0.5\n", buf.String())

	SetLogger(nil)
	Logf("dropped")
	assert.Equal(t, "cost 0.5\n", buf.String())
}
