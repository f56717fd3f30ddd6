// Package penalties provides the regularization terms that can be given to the cost functions in
// "costfuncs". All of them implement digitclass.Penalty, and none of them are ever applied to
// bias parameters.
package penalties

import (
	"sort"

	"github.com/pkg/errors"
	dc "github.com/sharnoff/digitclass"
)

var list = map[string]func(λ float64) dc.Penalty{
	L2(0).TypeString():            func(λ float64) dc.Penalty { return L2(λ) },
	L1(0).TypeString():            func(λ float64) dc.Penalty { return L1(λ) },
	ElasticNet(0, 0).TypeString(): func(λ float64) dc.Penalty { return ElasticNet(0.5, λ) },
}

// New returns the penalty with the given type string and strength. Elastic net is given an even
// split between L1 and L2.
func New(name string, λ float64) (dc.Penalty, error) {
	f, ok := list[name]
	if !ok {
		return nil, errors.Errorf("No penalty with name %q (options: %v)", name, Names())
	} else if λ < 0 {
		return nil, errors.Errorf("Regularization strength must be >= 0 (%v)", λ)
	}

	return f(λ), nil
}

// Names returns the sorted type strings of all penalties.
func Names() []string {
	ns := make([]string, 0, len(list))
	for n := range list {
		ns = append(ns, n)
	}

	sort.Strings(ns)
	return ns
}
