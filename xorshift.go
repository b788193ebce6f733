package tinyrng

// Xorshift128Plus is a deterministic pseudo-random number generator based on the
// xorshift128+ algorithm with the shift triple a=23, b=17, c=26
// (see https://arxiv.org/abs/1404.0390 and https://en.wikipedia.org/wiki/Xorshift#xorshift+).
// This random number generator is deterministic in the sequence of numbers it generates.
// It has a period of 2^128-1 over all states except the all-zero state, which is never reached.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
// This random number generator has a very small memory footprint (24 bytes).
//
// Uint32 returns the high 32 bits of the 64-bit output; the low bits fail
// stricter statistical tests.
//
// Bounded sampling (Uint32N, Uint64N) uses mask-and-reject: the raw output is
// masked to the next power of two at or above m and redrawn while it is >= m.
type Xorshift128Plus struct {
	x, y  uint64
	Round uint64 // for debugging purposes
}

// NewXorshift128Plus returns a generator seeded with seed. Any seed is valid.
func NewXorshift128Plus(seed uint64) *Xorshift128Plus {
	g := &Xorshift128Plus{}
	g.Seed(seed)
	return g
}

// Seed resets the state to (seed ^ 0xf4dbdf2183dcefb7, seed ^ 0x1ad5be0d6dd28e9b).
// The two constants differ, so both words can never be zero at the same time.
func (g *Xorshift128Plus) Seed(seed uint64) {
	g.x = seed ^ 0xf4dbdf2183dcefb7 // crc32("0"), crc32("1")
	g.y = seed ^ 0x1ad5be0d6dd28e9b // crc32("2"), crc32("3")
	g.Round = 0
}

// State returns the internal state pair.
func (g *Xorshift128Plus) State() (x, y uint64) {
	return g.x, g.y
}

// Uint64 returns the next pseudo-random number in the sequence.
// It has a constant runtime and a high probability to be inlined by the compiler.
func (g *Xorshift128Plus) Uint64() uint64 {
	x, y := g.x, g.y
	g.x = y
	x ^= x << 23
	g.y = x ^ y ^ (x >> 17) ^ (y >> 26)
	g.Round++
	return g.y + y
}

// Uint32 returns the high 32 bits of the next 64-bit output.
func (g *Xorshift128Plus) Uint32() uint32 {
	return uint32(g.Uint64() >> 32)
}

// Uint32N returns a uniformly distributed number in [0, m). It panics if m == 0.
func (g *Xorshift128Plus) Uint32N(m uint32) uint32 {
	return maskReject32(g, m)
}

// Uint64N returns a uniformly distributed number in [0, m). It panics if m == 0.
func (g *Xorshift128Plus) Uint64N(m uint64) uint64 {
	return maskReject64(g, m)
}
