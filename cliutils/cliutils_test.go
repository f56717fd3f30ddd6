package cliutils

import (
	"bytes"
	"testing"

	dc "github.com/sharnoff/digitclass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimizer(t *testing.T) {
	f, err := Minimizer("bfgs")
	require.NoError(t, err)

	a, b := f(), f()
	assert.Equal(t, "bfgs", a.TypeString())
	assert.NotSame(t, a, b)

	_, err = Minimizer("newton")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bfgs")
}

func TestPenalty(t *testing.T) {
	for short, full := range map[string]string{"l1": "l1-lasso", "l2": "l2-ridge", "elastic": "elastic-net", "l2-ridge": "l2-ridge"} {
		p, err := Penalty(short, 1)
		require.NoError(t, err, short)
		assert.Equal(t, full, p.TypeString())
	}

	_, err := Penalty("l3", 1)
	assert.Error(t, err)

	_, err = Penalty("l2", -1)
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	defer dc.SetLogger(nil)

	var buf bytes.Buffer
	SetupLogging(&buf, "prog", true)
	dc.Logf("hello %d", 4)
	assert.Contains(t, buf.String(), "prog: ")
	assert.Contains(t, buf.String(), "hello 4")

	buf.Reset()
	SetupLogging(&buf, "prog", false)
	dc.Logf("quiet")
	assert.Empty(t, buf.String())
}
