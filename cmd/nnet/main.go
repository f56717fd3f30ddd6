// Command nnet trains a network with one hidden layer on a CSV dataset and reports the training
// accuracy. It can check the backpropagation gradient first, and draw the learned hidden units.
//
// Usage:
//	nnet -data digits.csv [-hidden 25] [-lambda 1] [-iters 50] [-check] [-hidden-png units.png]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sharnoff/digitclass/cliutils"
	"github.com/sharnoff/digitclass/datasets"
	"github.com/sharnoff/digitclass/display"
	"github.com/sharnoff/digitclass/gradcheck"
	"github.com/sharnoff/digitclass/nnet"
)

const program string = "nnet"

type cli struct {
	data      string
	hidden    int
	lambda    float64
	minimizer string
	tol       float64
	iters     int
	epsilon   float64
	seed      int64
	workers   int
	check     bool
	unitsPNG  string
	side      int
	verbose   bool
}

func parseFlags() cli {
	def := nnet.DefaultConfig()

	var c cli
	flag.StringVar(&c.data, "data", "", "CSV file of samples, one 'label,x1,...,xn' per line (required)")
	flag.IntVar(&c.hidden, "hidden", def.Hidden, "number of hidden units")
	flag.Float64Var(&c.lambda, "lambda", def.Lambda, "L2 regularization strength")
	flag.StringVar(&c.minimizer, "minimizer", "bfgs", "registered minimizer to train with")
	flag.Float64Var(&c.tol, "tol", def.Tolerance, "gradient tolerance for convergence")
	flag.IntVar(&c.iters, "iters", def.MaxIterations, "maximum iterations")
	flag.Float64Var(&c.epsilon, "epsilon", 0, "initial weights are drawn from [-epsilon, epsilon] (0 uses 0.12)")
	flag.Int64Var(&c.seed, "seed", 0, "seed for the initial weights (0 is random)")
	flag.IntVar(&c.workers, "workers", def.Workers, "goroutines per cost evaluation")
	flag.BoolVar(&c.check, "check", false, "check backpropagation against numerical gradients before training")
	flag.StringVar(&c.unitsPNG, "hidden-png", "", "if set, write a PNG of the hidden units' input weights to this path")
	flag.IntVar(&c.side, "side", 20, "width and height of each sample image, in pixels")
	flag.BoolVar(&c.verbose, "v", false, "log progress to stderr")
	flag.Parse()

	return c
}

func main() {
	c := parseFlags()
	if c.data == "" {
		flag.Usage()
		os.Exit(2)
	}

	cliutils.SetupLogging(os.Stderr, program, c.verbose)

	if c.check {
		for _, λ := range []float64{0, c.lambda} {
			r, err := gradcheck.CheckNNGradients(λ)
			if err != nil {
				cliutils.Fatal(program, err)
			}

			fmt.Printf("Gradient check with lambda = %g:\n%s", λ, r)
			if !r.OK() {
				cliutils.Fatal(program, fmt.Errorf("backpropagation gradient does not match (max difference %g)", r.MaxDiff))
			}
		}
	}

	data, err := datasets.LoadCSVFile(c.data)
	if err != nil {
		cliutils.Fatal(program, err)
	}
	fmt.Printf("Loaded %d samples with %d features\n", data.Size(), data.Features())

	cfg := nnet.DefaultConfig()
	cfg.Hidden = c.hidden
	cfg.Lambda = c.lambda
	cfg.Tolerance = c.tol
	cfg.MaxIterations = c.iters
	cfg.Epsilon = c.epsilon
	cfg.Seed = c.seed
	cfg.Workers = c.workers

	if cfg.Minimizer, err = cliutils.Minimizer(c.minimizer); err != nil {
		cliutils.Fatal(program, err)
	}

	fmt.Println("Training neural network...")
	model, err := nnet.Train(data, cfg)
	if err != nil {
		cliutils.Fatal(program, err)
	}

	acc, err := model.Accuracy(data)
	if err != nil {
		cliutils.Fatal(program, err)
	}
	fmt.Printf("Training set accuracy: %.2f%%\n", acc*100)

	if c.unitsPNG != "" {
		// each hidden unit's weights, without the bias, form an image the size of a sample
		r, cols := model.Theta1.Dims()
		img, err := display.Grid(model.Theta1.Slice(0, r, 1, cols), c.side)
		if err == nil {
			err = display.SavePNG(c.unitsPNG, img)
		}
		if err != nil {
			cliutils.Fatal(program, err)
		}
	}
}
