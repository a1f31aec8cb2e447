package rng

import "math/rand/v2"

// Source yields uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// Func adapts a plain function to the Source interface.
type Func func() float64

// Float64 calls f.
func (f Func) Float64() float64 { return f() }

// Constant returns a Source that always yields v.
func Constant(v float64) Source {
	return Func(func() float64 { return v })
}

// Sequence returns a Source that replays values in order and then repeats the
// last one. An empty sequence yields zeros.
func Sequence(values ...float64) Source {
	i := 0
	return Func(func() float64 {
		if len(values) == 0 {
			return 0
		}
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	})
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}
