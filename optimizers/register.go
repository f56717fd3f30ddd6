// Package optimizers provides the Minimizer used to fit both models. Importing it registers the
// Minimizer under its TypeString and makes it the default:
//
//		import _ "github.com/sharnoff/digitclass/optimizers"
package optimizers

import (
	dc "github.com/sharnoff/digitclass"
)

func init() {
	list := map[string]func() dc.Minimizer{
		QuasiNewton().TypeString(): func() dc.Minimizer { return QuasiNewton() },
	}

	for s, f := range list {
		err := dc.RegisterMinimizer(s, f)
		if err != nil {
			panic(err.Error())
		}
	}

	dc.SetDefaultMinimizer(func() dc.Minimizer { return QuasiNewton() })
}
