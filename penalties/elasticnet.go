package penalties

import (
	"math"
)

type elasticNet struct {
	α float64
	λ float64
}

// ElasticNet mixes L1 and L2 regularization: λ·Σ(α|w| + (1-α)/2·w²).
//
// λ is the overall strength, where λ ≥ 0; α controls the ratio between L1 and L2, where
// 0 ≤ α ≤ 1. α = 1 is functionally identical to L1 and α = 0 is equivalent to L2.
func ElasticNet(α, λ float64) *elasticNet {
	return &elasticNet{α, λ}
}

func (p *elasticNet) TypeString() string {
	return "elastic-net"
}

func (p *elasticNet) Cost(ws []float64) float64 {
	var abs, sq float64
	for _, w := range ws {
		abs += math.Abs(w)
		sq += w * w
	}

	return p.λ * (p.α*abs + 0.5*(1-p.α)*sq)
}

func (p *elasticNet) Deriv(w float64) float64 {
	d := (1 - p.α) * w
	if w != 0 {
		d += p.α * math.Copysign(1, w)
	}

	return p.λ * d
}
