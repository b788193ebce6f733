package tinyrng

// LCG32 is a 32-bit linear congruential generator with the Numerical Recipes
// constants: s' = s*1664525 + 1013904223 (mod 2^32). The output is the new state.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
//
// The low bits of an LCG have short periods (bit k has period 2^(k+1)), so never
// reduce its raw output modulo a small power of two.
//
// Bounded sampling trades correctness for speed: Uint32N returns
// floor(raw * m / 2^32) with no rejection. For m not a power of two the result is
// slightly biased. This is accepted for this generator only.
type LCG32 struct {
	state uint32
	Round uint64 // for debugging purposes
}

// NewLCG32 returns a generator whose state is the low 32 bits of seed.
func NewLCG32(seed uint64) *LCG32 {
	g := &LCG32{}
	g.Seed(seed)
	return g
}

// Seed truncates seed to 32 bits; there is no mixing.
func (g *LCG32) Seed(seed uint64) {
	g.state = uint32(seed)
	g.Round = 0
}

// State returns the internal 32-bit state.
func (g *LCG32) State() uint32 {
	return g.state
}

// Uint32 advances the state and returns it.
func (g *LCG32) Uint32() uint32 {
	g.state = g.state*1664525 + 1013904223
	g.Round++
	return g.state
}

// Uint32N returns a number in [0, m) using one draw and no rejection (biased).
// It panics if m == 0.
func (g *LCG32) Uint32N(m uint32) uint32 {
	return multiplyHigh32(g, m)
}

// Uint64N returns a number in [0, m) using one 64-bit draw and no rejection
// (biased). It panics if m == 0.
func (g *LCG32) Uint64N(m uint64) uint64 {
	return multiplyHigh64(g, m)
}
