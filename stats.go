package tinyrng

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Statistics returns mean, population variance and standard deviation of data.
// For empty data it returns (0, -1, -1).
func Statistics[T constraints.Integer | constraints.Float](data []T) (mean, variance, stddev float64) {
	if len(data) == 0 {
		return 0, -1, -1
	}

	var sum float64
	n := float64(len(data))

	for _, value := range data {
		sum += float64(value)
	}
	mean = sum / n

	for _, value := range data {
		d := float64(value) - mean
		variance += d * d
	}
	variance /= n
	stddev = math.Sqrt(variance)
	return
}

// Histogram draws samples values of Uint32N(g, m) and counts how often each of
// the m outcomes occurred.
func Histogram(g Source, m uint32, samples int) []uint64 {
	counts := make([]uint64, m)
	for range samples {
		counts[Uint32N(g, m)]++
	}
	return counts
}

// UniformityResult is the outcome of a Pearson chi-square test against the
// uniform distribution.
type UniformityResult struct {
	ChiSquare        float64
	DegreesOfFreedom int
	PValue           float64 // P(χ² >= ChiSquare) under uniformity
}

// Rejected reports whether uniformity is rejected at significance level alpha.
func (r UniformityResult) Rejected(alpha float64) bool {
	return r.PValue < alpha
}

// ChiSquareUniformity tests observed bucket counts against equal expected counts.
// With fewer than two buckets or no observations there is nothing to test and the
// p-value is 1.
func ChiSquareUniformity[T constraints.Integer](counts []T) UniformityResult {
	df := len(counts) - 1
	var total float64
	for _, c := range counts {
		total += float64(c)
	}
	if df <= 0 || total == 0 {
		return UniformityResult{DegreesOfFreedom: max(df, 0), PValue: 1}
	}

	obs := make([]float64, len(counts))
	exp := make([]float64, len(counts))
	expected := total / float64(len(counts))
	for i, c := range counts {
		obs[i] = float64(c)
		exp[i] = expected
	}

	x2 := stat.ChiSquare(obs, exp)
	p := distuv.ChiSquared{K: float64(df)}.Survival(x2)
	return UniformityResult{ChiSquare: x2, DegreesOfFreedom: df, PValue: p}
}
