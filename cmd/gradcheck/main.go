// Command gradcheck compares the analytical gradients of both cost functions against numerical
// estimates on small fixed problems, printing both side by side. It exits with status 1 if any
// component differs by more than the tolerance.
package main

import (
	"flag"
	"fmt"
	"os"

	dc "github.com/sharnoff/digitclass"
	"github.com/sharnoff/digitclass/cliutils"
	"github.com/sharnoff/digitclass/costfuncs"
	"github.com/sharnoff/digitclass/gradcheck"
	"github.com/sharnoff/digitclass/initializers"
	"gonum.org/v1/gonum/mat"
)

const program string = "gradcheck"

func main() {
	lambda := flag.Float64("lambda", 3, "regularization strength for the second round of checks")
	penalty := flag.String("penalty", "l2", "regularization for the logistic check: [ l2 | l1 | elastic ]")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Parse()

	cliutils.SetupLogging(os.Stderr, program, *verbose)

	ok := true
	for _, λ := range []float64{0, *lambda} {
		r, err := gradcheck.CheckNNGradients(λ)
		if err != nil {
			cliutils.Fatal(program, err)
		}

		fmt.Printf("Neural network, lambda = %g:\n%s\n", λ, r)
		ok = ok && r.OK()

		r, err = checkLogistic(*penalty, λ)
		if err != nil {
			cliutils.Fatal(program, err)
		}

		fmt.Printf("Logistic regression, lambda = %g:\n%s\n", λ, r)
		ok = ok && r.OK()
	}

	if !ok {
		fmt.Println("Gradients do not match")
		os.Exit(1)
	}

	fmt.Println("All gradients match")
}

// checkLogistic runs the check on a small logistic regression built from debug weights
func checkLogistic(penalty string, λ float64) (gradcheck.Report, error) {
	pen, err := cliutils.Penalty(penalty, λ)
	if err != nil {
		return gradcheck.Report{}, err
	}

	X := dc.AddBias(initializers.DebugInitializeWeights(2, 5))
	y := []float64{1, 0, 1, 0, 1}

	l, err := costfuncs.NewLogistic(X, y, pen)
	if err != nil {
		return gradcheck.Report{}, err
	}

	theta := mat.Row(nil, 0, initializers.DebugInitializeWeights(l.Size()-1, 1))

	// the L1 penalty has no derivative at zero; a step of 1e-4 never crosses it from here
	return gradcheck.Check(l, theta, gradcheck.Tolerance)
}
