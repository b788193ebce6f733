package tinyrng

var (
	_ Source64 = (*Xorshift128Plus)(nil)
	_ Bounder  = (*Xorshift128Plus)(nil)
	_ Bounder  = (*PCG32)(nil)
	_ Bounder  = (*LCG32)(nil)
)

// Uint8 returns the low 8 bits of one 32-bit draw.
func Uint8(g Source) uint8 {
	return uint8(g.Uint32())
}

// Uint16 returns the low 16 bits of one 32-bit draw.
func Uint16(g Source) uint16 {
	return uint16(g.Uint32())
}

// Uint32 returns one raw 32-bit draw.
func Uint32(g Source) uint32 {
	return g.Uint32()
}

// Uint64 returns a uniformly distributed uint64. Sources implementing Source64
// produce it in one step. Otherwise two consecutive 32-bit draws are
// concatenated, the first one being the high word, so 32- and 64-bit draws from
// the same generator interleave on one stream.
func Uint64(g Source) uint64 {
	if g64, ok := g.(Source64); ok {
		return g64.Uint64()
	}
	hi := uint64(g.Uint32())
	return hi<<32 | uint64(g.Uint32())
}

// Int32 returns a uniformly distributed int32.
func Int32(g Source) int32 {
	return int32(g.Uint32())
}

// Int64 returns a uniformly distributed int64.
func Int64(g Source) int64 {
	return int64(Uint64(g))
}

// Bool returns the top bit of one 32-bit draw. The top bit is used because the
// low bits of LCG32 alternate.
func Bool(g Source) bool {
	return g.Uint32()>>31 == 1
}

// Uint32N returns a number in [0, m) using the generator's own bounded-sampling
// strategy (see Bounder), or mask-and-reject for sources without one.
// It panics with ErrZeroBound if m == 0.
func Uint32N(g Source, m uint32) uint32 {
	if b, ok := g.(Bounder); ok {
		return b.Uint32N(m)
	}
	return maskReject32(g, m)
}

// Uint64N returns a number in [0, m). See Uint32N.
func Uint64N(g Source, m uint64) uint64 {
	if b, ok := g.(Bounder); ok {
		return b.Uint64N(m)
	}
	return maskReject64(g, m)
}

// IntN returns a number in [0, n). Use this function for random indices.
// The draw always goes through Uint64N so that a seed selects the same indices
// on 32- and 64-bit platforms. It panics with ErrZeroBound if n <= 0.
func IntN(g Source, n int) int {
	if n <= 0 {
		panic(ErrZeroBound)
	}
	return int(Uint64N(g, uint64(n)))
}

// Range32 returns a number in [a, b). It panics with ErrEmptyRange if a >= b.
func Range32(g Source, a, b uint32) uint32 {
	if a >= b {
		panic(ErrEmptyRange)
	}
	return a + Uint32N(g, b-a)
}

// Range64 returns a number in [a, b). It panics with ErrEmptyRange if a >= b.
func Range64(g Source, a, b uint64) uint64 {
	if a >= b {
		panic(ErrEmptyRange)
	}
	return a + Uint64N(g, b-a)
}

// RangeInt32 returns a number in [a, b). The width b-a is computed with wrapping
// subtraction and reinterpreted as unsigned, so the full int32 span works.
// It panics with ErrEmptyRange if a >= b.
func RangeInt32(g Source, a, b int32) int32 {
	if a >= b {
		panic(ErrEmptyRange)
	}
	return a + int32(Uint32N(g, uint32(b-a)))
}

// RangeInt64 returns a number in [a, b). See RangeInt32.
func RangeInt64(g Source, a, b int64) int64 {
	if a >= b {
		panic(ErrEmptyRange)
	}
	return a + int64(Uint64N(g, uint64(b-a)))
}

// Float64 returns a uniformly distributed float64 in [0.0, 1.0).
// One 32-bit draw is multiplied by 2^-32; the product is exact, so the result
// is never 1.0. Only 32 bits of randomness reach the mantissa.
func Float64(g Source) float64 {
	return float64(g.Uint32()) * 2.3283064365386963e-10
}

// Float32 returns a uniformly distributed float32 in [0.0, 1.0).
// A float32 holds 24 significant bits, so converting a full 32-bit draw can round
// up to 2^32 and yield 1.0. The high 24 bits are scaled by 2^-24 instead.
func Float32(g Source) float32 {
	return float32(g.Uint32()>>8) * (1.0 / (1 << 24))
}
