package tinyrng

import "iter"

// Iter turns a sampling function into an infinite sequence. Every pull calls
// next(g) once; the sequence never ends on its own, so stop it with break.
// The sequence does not own g: it advances the same generator the caller holds,
// and ranging over it again continues where the last loop stopped.
//
//	rng := tinyrng.NewPCG32(0)
//	for x := range tinyrng.Iter(rng, tinyrng.Uint32) {
//		if x < 1000 {
//			break
//		}
//	}
func Iter[T any](g Source, next func(Source) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(next(g)) {
		}
	}
}

// Take collects the next n values of next(g). It pulls exactly n times.
func Take[T any](g Source, next func(Source) T, n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for v := range Iter(g, next) {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
