package tinyrng

import "math/bits"

// maskReject32 draws raw values masked to the smallest covering power of two and
// rejects those >= m. For m a power of two the first draw is always accepted.
func maskReject32(g Source, m uint32) uint32 {
	if m == 0 {
		panic(ErrZeroBound)
	}
	// m == 1 gives a shift of 32, i.e. a zero mask
	mask := ^uint32(0) >> bits.LeadingZeros32(m-1)
	for {
		x := g.Uint32() & mask
		if x < m {
			return x
		}
	}
}

func maskReject64(g Source, m uint64) uint64 {
	if m == 0 {
		panic(ErrZeroBound)
	}
	mask := ^uint64(0) >> bits.LeadingZeros64(m-1)
	for {
		x := Uint64(g) & mask
		if x < m {
			return x
		}
	}
}

// thresholdReject32 rejects raw values below 2^32 mod m, so the accepted range is
// a whole multiple of m and the remainder is unbiased.
func thresholdReject32(g Source, m uint32) uint32 {
	if m == 0 {
		panic(ErrZeroBound)
	}
	threshold := -m % m
	for {
		r := g.Uint32()
		if r >= threshold {
			return r % m
		}
	}
}

func thresholdReject64(g Source, m uint64) uint64 {
	if m == 0 {
		panic(ErrZeroBound)
	}
	threshold := -m % m
	for {
		r := Uint64(g)
		if r >= threshold {
			return r % m
		}
	}
}

// multiplyHigh32 maps one raw draw onto [0, m) as floor(raw * m / 2^32).
// There is no rejection: for m not a power of two some results are more likely
// than others by at most one part in 2^32/m.
func multiplyHigh32(g Source, m uint32) uint32 {
	if m == 0 {
		panic(ErrZeroBound)
	}
	return uint32((uint64(g.Uint32()) * uint64(m)) >> 32)
}

func multiplyHigh64(g Source, m uint64) uint64 {
	if m == 0 {
		panic(ErrZeroBound)
	}
	hi, _ := bits.Mul64(Uint64(g), m)
	return hi
}
