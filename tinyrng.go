// Package tinyrng is a minimal pseudo-random number generator core.
//
// It provides three small bit generators (Xorshift128Plus, PCG32 and LCG32) behind
// the narrow Source interface, and a set of derived operations that work on any
// Source: bounded integers, ranges, floats in [0,1), choice, Fisher–Yates
// shuffle, byte filling and an infinite iterator adaptor.
//
// None of the generators in this package is cryptographically secure. Do not use
// them for keys, tokens, nonces or anything an adversary must not predict.
//
// A generator is a plain mutable value without internal synchronization. Each
// instance must be owned by one goroutine at a time; use one instance per
// goroutine or guard it externally.
//
//	rng := tinyrng.NewXorshift128Plus(0)
//	dice := tinyrng.Range32(rng, 1, 7)
//	color := tinyrng.Choice(rng, []string{"red", "green", "blue"})
//	a := []int{1, 2, 3, 4}
//	tinyrng.Shuffle(rng, a)
package tinyrng

import "errors"

// Source is the primitive every bit generator implements. Uint32 returns the next
// raw 32-bit output and advances the state. Seed reinitializes the state
// deterministically from a 64-bit seed; every seed value is valid.
type Source interface {
	Seed(seed uint64)
	Uint32() uint32
}

// Source64 is implemented by generators with a native 64-bit step. Uint64 uses it
// instead of concatenating two 32-bit draws.
type Source64 interface {
	Source
	Uint64() uint64
}

// Bounder is implemented by generators that fix their own bounded-sampling
// strategy. Sources without it are sampled with mask-and-reject.
// Implementations must panic with ErrZeroBound for m == 0.
type Bounder interface {
	Uint32N(m uint32) uint32
	Uint64N(m uint64) uint64
}

// Precondition violations. They are raised with panic, never returned: a zero
// modulus or an empty range is a bug at the call site.
var (
	ErrZeroBound  = errors.New("tinyrng: bound must be greater than zero")
	ErrEmptyRange = errors.New("tinyrng: empty range, a must be less than b")
	ErrEmptySlice = errors.New("tinyrng: choice from empty slice")
)
