package tinyrng

import "math"

// scripted replays a fixed list of raw outputs and counts the draws.
type scripted struct {
	vals  []uint32
	draws int
}

func (s *scripted) Seed(uint64) { s.draws = 0 }

func (s *scripted) Uint32() uint32 {
	v := s.vals[s.draws%len(s.vals)]
	s.draws++
	return v
}

// counted is a Source that reports how many state transitions it has made.
type counted interface {
	Source
	rounds() uint64
}

func (g *Xorshift128Plus) rounds() uint64 { return g.Round }
func (g *PCG32) rounds() uint64           { return g.Round }
func (g *LCG32) rounds() uint64           { return g.Round }

type variant struct {
	name      string
	new       func(seed uint64) counted
	rejecting bool // bounded sampling is unbiased
}

var variants = []variant{
	{"xorshift128+", func(seed uint64) counted { return NewXorshift128Plus(seed) }, true},
	{"pcg32", func(seed uint64) counted { return NewPCG32(seed) }, true},
	{"lcg32", func(seed uint64) counted { return NewLCG32(seed) }, false},
}

// chiSquarePValueEven computes the upper-tail p-value P(χ² ≥ x2) for an even
// number of degrees of freedom df = 2m with the closed-form series
//
//	P(χ² ≥ x2) = e^{-x2/2} * sum_{j=0}^{m-1} (x2/2)^j / j!
func chiSquarePValueEven(x2 float64, df int) float64 {
	m := df / 2
	t := math.Exp(-x2 / 2.0)
	sum := 1.0 // j = 0
	term := 1.0
	for j := 1; j < m; j++ {
		term *= x2 / (2.0 * float64(j))
		sum += term
	}
	return t * sum
}

func minMax[T ~int | ~int8 | ~int16 | ~int32 | ~int64 |
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
	~float32 | ~float64](vals ...T) (min, max T) {
	var zero T
	if len(vals) == 0 {
		return zero, zero
	}
	min, max = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
