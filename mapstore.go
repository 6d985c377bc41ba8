package memocache

import (
	"context"
)

// MapStore is a plain, unsynchronized map-backed store. The backing map is
// allocated lazily on the first Set, so a zero MapStore is ready to use and
// costs nothing until something is cached.
type MapStore[K comparable, V any] struct {
	m map[K]V
}

var _ Store[uint8, struct{}] = (*MapStore[uint8, struct{}])(nil)

// NewMapStore creates an empty MapStore.
func NewMapStore[K comparable, V any]() *MapStore[K, V] {
	return &MapStore[K, V]{}
}

// Get retrieves the value stored under key. It misses unconditionally while
// caching is disabled in ctx.
func (s *MapStore[K, V]) Get(ctx context.Context, key K) (V, bool) {
	if CachingDisabled(ctx) {
		var zero V
		return zero, false
	}
	v, ok := s.m[key]
	return v, ok
}

// Set stores a value under key.
func (s *MapStore[K, V]) Set(_ context.Context, key K, value V) {
	if s.m == nil {
		s.m = map[K]V{}
	}
	s.m[key] = value
}

// Delete removes the entry for key.
func (s *MapStore[K, V]) Delete(_ context.Context, key K) {
	delete(s.m, key)
}

// Clear empties the store.
func (s *MapStore[K, V]) Clear(_ context.Context) {
	clear(s.m)
}

// Len returns the number of stored entries.
func (s *MapStore[K, V]) Len() int {
	return len(s.m)
}
