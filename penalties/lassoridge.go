package penalties

import (
	"math"
)

// **********************************************
// L1 (Lasso)
// **********************************************

type l1 float64

// L1 returns the Lasso penalty λ·Σ|w|. λ is the regularization strength, where λ ≥ 0.
func L1(λ float64) *l1 {
	p := l1(λ)
	return &p
}

// Lasso is a proxy for L1
func Lasso(λ float64) *l1 {
	return L1(λ)
}

func (p *l1) TypeString() string {
	return "l1-lasso"
}

func (p *l1) Cost(ws []float64) float64 {
	var sum float64
	for _, w := range ws {
		sum += math.Abs(w)
	}

	return float64(*p) * sum
}

// Deriv uses a subgradient of 0 at w = 0
func (p *l1) Deriv(w float64) float64 {
	if w == 0 {
		return 0
	}

	return float64(*p) * math.Copysign(1, w)
}

// **********************************************
// L2 (Ridge)
// **********************************************

type l2 float64

// L2 returns the Ridge penalty λ/2·Σw². λ is the regularization strength, where λ ≥ 0. This is
// the penalty used by default by both cost functions.
func L2(λ float64) *l2 {
	p := l2(λ)
	return &p
}

// Ridge is a proxy for L2
func Ridge(λ float64) *l2 {
	return L2(λ)
}

func (p *l2) TypeString() string {
	return "l2-ridge"
}

func (p *l2) Cost(ws []float64) float64 {
	var sum float64
	for _, w := range ws {
		sum += w * w // faster than math.Pow
	}

	return 0.5 * float64(*p) * sum
}

func (p *l2) Deriv(w float64) float64 {
	return float64(*p) * w
}
