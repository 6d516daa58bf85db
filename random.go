package tessellate

import "math"

// LCG constants. These match the sequence every exported artwork was built
// with so they must never change.
const (
	lcgMul = 9301
	lcgInc = 49297
	lcgMod = 233280
)

// Random is a small deterministic pseudo random source.
//
// A Random is owned by exactly one generation pass; it is not safe for
// concurrent use.
type Random struct {
	seed int64
}

// NewRandom returns a Random starting from the given seed.
func NewRandom(seed int64) *Random {
	return &Random{seed: seed}
}

// Seed returns the current internal state.
func (r *Random) Seed() int64 {
	return r.seed
}

// Next advances the state & returns a float in [0,1).
//
// The state is reduced mod lcgMod before multiplying so any int64 seed is
// safe; negative states are wrapped back into [0,lcgMod).
func (r *Random) Next() float64 {
	r.seed = ((r.seed%lcgMod)*lcgMul + lcgInc) % lcgMod
	if r.seed < 0 {
		r.seed += lcgMod
	}
	return float64(r.seed) / lcgMod
}

// NextInt returns an int in [min,max] (inclusive).
func (r *Random) NextInt(min, max int) int {
	return int(math.Floor(r.Next()*float64(max-min+1))) + min
}

// NextFloat returns a float in [min,max).
func (r *Random) NextFloat(min, max float64) float64 {
	return r.Next()*(max-min) + min
}
