package tinyrng

// Choice returns a uniformly chosen element of s.
// It panics with ErrEmptySlice if s is empty; callers must guard.
func Choice[T any](g Source, s []T) T {
	if len(s) == 0 {
		panic(ErrEmptySlice)
	}
	return s[IntN(g, len(s))]
}

// Shuffle permutes s in place with the Fisher–Yates algorithm. Every permutation
// is equally likely (within the variant's bounded-sampling contract).
// Slices with fewer than two elements are left untouched and consume no draws.
//
// see https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
func Shuffle[T any](g Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := IntN(g, i+1)
		s[i], s[j] = s[j], s[i]
	}
}

// ShuffleFunc is Shuffle for collections that are not slices: n is the number of
// elements and swap exchanges the elements with indexes i and j.
// It draws exactly as Shuffle does for a slice of length n.
func ShuffleFunc(g Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, IntN(g, i+1))
	}
}
