package tinyrng

import "math/bits"

const (
	pcgMultiplier uint64 = 6364136223846793005
	pcgIncrement  uint64 = 1442695040888963407 | 1 // must be odd
)

// PCG32 implements PCG-XSH-RR: a 64-bit linear congruential state with a 32-bit
// output permutation (xorshift high, random rotation).
// See https://www.pcg-random.org/ for details.
// This random number generator is deterministic in the sequence of numbers it generates
// and has a period of 2^64. Every state value, including zero, is valid.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
//
// Bounded sampling (Uint32N, Uint64N) uses remainder-threshold rejection: raw
// values below 2^W mod m are redrawn and the remainder modulo m is returned.
type PCG32 struct {
	state uint64
	Round uint64 // for debugging purposes
}

// NewPCG32 returns a generator seeded with seed. Any seed is valid.
func NewPCG32(seed uint64) *PCG32 {
	g := &PCG32{}
	g.Seed(seed)
	return g
}

// Seed runs the reference initialization: step from state 0, add seed, step
// again. The second step keeps small seeds from producing correlated streams.
func (g *PCG32) Seed(seed uint64) {
	g.state = 0
	g.step()
	g.state += seed
	g.step()
	g.Round = 0
}

// State returns the internal 64-bit state.
func (g *PCG32) State() uint64 {
	return g.state
}

func (g *PCG32) step() {
	g.state = g.state*pcgMultiplier + pcgIncrement
}

// Uint32 permutes the current state into the output, then advances it.
func (g *PCG32) Uint32() uint32 {
	old := g.state
	g.step()
	g.Round++
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Uint32N returns a uniformly distributed number in [0, m). It panics if m == 0.
func (g *PCG32) Uint32N(m uint32) uint32 {
	return thresholdReject32(g, m)
}

// Uint64N returns a uniformly distributed number in [0, m). It panics if m == 0.
// Each candidate consumes two 32-bit outputs.
func (g *PCG32) Uint64N(m uint64) uint64 {
	return thresholdReject64(g, m)
}
