// Package digitclass provides the shared pieces for training two classic classifiers of
// flattened images: one-vs-all regularized logistic regression and a feed-forward neural network
// with a single hidden layer, trained by backpropagation.
//
// Data
//
// All training and prediction is done on a Dataset, which pairs a design matrix (one sample per
// row) with its integer labels:
//
//		data, err := digitclass.NewDataset(X, y, 10)
//		if err != nil {
//			return err
//		}
//
// For brevity, digitclass is abbreviated 'dc'.
//
// Objectives and Minimizers
//
// Both models are fit by handing an Objective to a Minimizer. An Objective maps a flat parameter
// vector to a cost and a gradient of the same length; the implementations (logistic regression
// and the neural network) are found in the subpackage "costfuncs". Minimizers are found in
// "optimizers", and register themselves by name when imported:
//
//		import _ "github.com/sharnoff/digitclass/optimizers"
//
//		min, err := dc.NewMinimizer("bfgs")
//
// Any type satisfying Minimizer can be used in its place; the trainers in "onevsall" and "nnet"
// only depend on the interface.
//
// Unrolling
//
// The neural network holds two weight matrices, but Minimizers only understand vectors. Layout
// is the one place that converts between the two:
//
//		layout := dc.Layout{Input: 400, Hidden: 25, Labels: 10}
//		params, err := layout.Unroll(theta1, theta2)
//		theta1, theta2, err = layout.Reshape(params)
//
// Gradients returned by the network cost use the same ordering.
//
// Checking gradients
//
// The subpackage "gradcheck" estimates gradients by central finite differences and compares them
// against the analytical ones. It is slow, and only meant to be used on small networks.
package digitclass
