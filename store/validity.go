package store

import (
	"context"

	memocache "github.com/mitba/memo-cache"
)

// ValidityStore is a map-backed store that tracks which keys are currently
// valid. A key present in the backing map but absent from the valid set is
// not a hit: that state means "explicitly invalidated but not yet
// overwritten", distinct from "never computed".
//
// The store is not synchronized; callers sharing one across goroutines must
// serialize access themselves.
type ValidityStore[K comparable, V any] struct {
	entries map[K]V
	valid   map[K]struct{}
	options options[K, V]
}

var (
	_ memocache.Store[uint8, struct{}] = (*ValidityStore[uint8, struct{}])(nil)
	_ memocache.Invalidator            = (*ValidityStore[uint8, struct{}])(nil)
)

// NewValidityStore creates an empty ValidityStore. Storage is allocated on
// the first Set.
func NewValidityStore[K comparable, V any](opts ...Option[K, V]) *ValidityStore[K, V] {
	options := defaultOptions[K, V]()
	for _, opt := range opts {
		opt.apply(&options)
	}
	return &ValidityStore[K, V]{options: options}
}

// Get retrieves the value stored under key. It misses while caching is
// disabled in ctx, when the key was never written, and when the key was
// invalidated and not rewritten since.
func (s *ValidityStore[K, V]) Get(ctx context.Context, key K) (V, bool) {
	var zero V
	if memocache.CachingDisabled(ctx) {
		return zero, false
	}
	if _, ok := s.valid[key]; !ok {
		if _, present := s.entries[key]; present {
			s.options.logger.Debug("cache entry is invalidated, awaiting rewrite")
		}
		return zero, false
	}
	v, ok := s.entries[key]
	if !ok {
		return zero, false
	}
	return s.options.cloner.CloneValue(v), true
}

// Set stores the value and marks the key valid.
func (s *ValidityStore[K, V]) Set(_ context.Context, key K, value V) {
	if s.entries == nil {
		s.entries = map[K]V{}
		s.valid = map[K]struct{}{}
	}
	s.entries[key] = s.options.cloner.CloneValue(value)
	s.valid[key] = struct{}{}
}

// Delete removes the entry for key, value and validity both.
func (s *ValidityStore[K, V]) Delete(_ context.Context, key K) {
	delete(s.entries, key)
	delete(s.valid, key)
}

// Clear discards all stored values.
func (s *ValidityStore[K, V]) Clear(_ context.Context) {
	clear(s.entries)
	clear(s.valid)
}

// Invalidate marks every key invalid without discarding stored values. Each
// value becomes visible again once Set rewrites its key.
func (s *ValidityStore[K, V]) Invalidate() {
	s.options.logger.Debug("invalidating all cache entries")
	clear(s.valid)
}

// Contains reports whether a value is physically present for key, valid or
// not.
func (s *ValidityStore[K, V]) Contains(key K) bool {
	_, ok := s.entries[key]
	return ok
}
