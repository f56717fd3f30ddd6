// Package cliutils holds the pieces shared by the command-line drivers: turning names given as
// flags into Minimizers and Penalties, and routing training logs to the terminal.
package cliutils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	dc "github.com/sharnoff/digitclass"
	"github.com/sharnoff/digitclass/penalties"

	// registers "bfgs"
	_ "github.com/sharnoff/digitclass/optimizers"
)

// Minimizer checks that name is registered, returning a function that creates a new instance of
// it each time it is called.
func Minimizer(name string) (func() dc.Minimizer, error) {
	if _, err := dc.NewMinimizer(name); err != nil {
		return nil, errors.Errorf("Unknown minimizer %q (options: %s)", name, strings.Join(dc.Minimizers(), ", "))
	}

	return func() dc.Minimizer {
		m, _ := dc.NewMinimizer(name)
		return m
	}, nil
}

// Penalty returns the penalty with the given name and strength. The short names "l1", "l2", and
// "elastic" are accepted along with the full type strings.
func Penalty(name string, λ float64) (dc.Penalty, error) {
	switch name {
	case "l1":
		name = penalties.L1(0).TypeString()
	case "l2":
		name = penalties.L2(0).TypeString()
	case "elastic":
		name = penalties.ElasticNet(0, 0).TypeString()
	}

	return penalties.New(name, λ)
}

// SetupLogging sends training progress to w, prefixed with the name of the program. If verbose
// is false, nothing is logged.
func SetupLogging(w io.Writer, program string, verbose bool) {
	if !verbose {
		dc.SetLogger(nil)
		return
	}

	dc.SetLogger(log.New(w, program+": ", log.Ltime))
}

// Fatal prints err to stderr and exits with status 1.
func Fatal(program string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", program, err)
	os.Exit(1)
}
