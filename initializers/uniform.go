package initializers

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

type uniform struct {
	lower, upper float64
	rng          *rand.Rand
}

// Uniform returns a generator that draws from a uniform random sample within a range, which can
// be set by Range. The default range is [-ε, ε], where ε is "uniform-epsilon" (0.12 unless changed
// by SetDefault).
//
// Without a call to Seed, values are drawn from the global source in math/rand.
func Uniform() *uniform {
	ε := getDefault("uniform-epsilon")
	return &uniform{lower: -ε, upper: ε}
}

// Range sets the Range of a Uniform generator, returning the same generator
func (u *uniform) Range(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Seed makes the generator reproducible by giving it its own source. A seeded generator must not
// be used from multiple goroutines at once.
func (u *uniform) Seed(seed int64) *uniform {
	u.rng = rand.New(rand.NewSource(seed))
	return u
}

// Gen returns a single random value within the range.
func (u *uniform) Gen() float64 {
	var f float64
	if u.rng != nil {
		f = u.rng.Float64()
	} else {
		f = rand.Float64()
	}

	return f*(u.upper-u.lower) + u.lower
}

// Matrix returns a new r x c matrix filled with values from Gen.
func (u *uniform) Matrix(r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = u.Gen()
	}

	return mat.NewDense(r, c, data)
}
