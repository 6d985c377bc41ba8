package iterutil

import (
	"iter"
)

// Filter returns a new iterator that yields only the values for which keep
// returns true.
func Filter[V any](seq iter.Seq[V], keep func(V) bool) iter.Seq[V] {
	return iter.Seq[V](func(yield func(V) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	})
}

// UniqBy returns a new iterator that yields the first value for each distinct
// key produced by keyOf. The order of the output is the same as the input.
func UniqBy[V any, K comparable](seq iter.Seq[V], keyOf func(V) K) iter.Seq[V] {
	return iter.Seq[V](func(yield func(V) bool) {
		seen := map[K]struct{}{}
		for v := range seq {
			k := keyOf(v)
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				if !yield(v) {
					return
				}
			}
		}
	})
}
