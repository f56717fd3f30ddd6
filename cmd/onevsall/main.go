// Command onevsall trains one regularized logistic regression per digit on a CSV dataset and
// reports the training accuracy.
//
// Usage:
//	onevsall -data digits.csv [-lambda 0.1] [-workers 4] [-grid samples.png]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sharnoff/digitclass/cliutils"
	"github.com/sharnoff/digitclass/datasets"
	"github.com/sharnoff/digitclass/display"
	"github.com/sharnoff/digitclass/onevsall"
)

const program string = "onevsall"

type cli struct {
	data      string
	lambda    float64
	penalty   string
	minimizer string
	tol       float64
	iters     int
	workers   int
	grid      string
	side      int
	verbose   bool
}

func parseFlags() cli {
	def := onevsall.DefaultConfig()

	var c cli
	flag.StringVar(&c.data, "data", "", "CSV file of samples, one 'label,x1,...,xn' per line (required)")
	flag.Float64Var(&c.lambda, "lambda", def.Lambda, "regularization strength")
	flag.StringVar(&c.penalty, "penalty", "l2", "regularization: [ l2 | l1 | elastic ]")
	flag.StringVar(&c.minimizer, "minimizer", "bfgs", "registered minimizer to fit each class with")
	flag.Float64Var(&c.tol, "tol", def.Tolerance, "gradient tolerance for convergence")
	flag.IntVar(&c.iters, "iters", def.MaxIterations, "maximum iterations per class")
	flag.IntVar(&c.workers, "workers", def.Workers, "number of classes fit at once")
	flag.StringVar(&c.grid, "grid", "", "if set, write a PNG of the first samples to this path")
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

	data, err := datasets.LoadCSVFile(c.data)
	if err != nil {
		cliutils.Fatal(program, err)
	}
	fmt.Printf("Loaded %d samples with %d features\n", data.Size(), data.Features())

	if c.grid != "" {
		img, err := display.Grid(data.X, c.side)
		if err == nil {
			err = display.SavePNG(c.grid, img)
		}
		if err != nil {
			cliutils.Fatal(program, err)
		}
	}

	cfg := onevsall.DefaultConfig()
	cfg.Lambda = c.lambda
	cfg.Tolerance = c.tol
	cfg.MaxIterations = c.iters
	cfg.Workers = c.workers

	if cfg.Penalty, err = cliutils.Penalty(c.penalty, c.lambda); err != nil {
		cliutils.Fatal(program, err)
	}
	if cfg.Minimizer, err = cliutils.Minimizer(c.minimizer); err != nil {
		cliutils.Fatal(program, err)
	}

	fmt.Println("Training one-vs-all classifiers...")
	biased := data.WithBias()
	theta, err := onevsall.Train(biased, cfg)
	if err != nil {
		cliutils.Fatal(program, err)
	}

	acc, err := onevsall.Accuracy(theta, biased)
	if err != nil {
		cliutils.Fatal(program, err)
	}

	fmt.Printf("Training set accuracy: %.2f%%\n", acc*100)
}
