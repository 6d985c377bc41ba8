package store

import (
	"context"
	"time"

	memocache "github.com/mitba/memo-cache"
)

type timedEntry[V any] struct {
	value    V
	deadline time.Time
}

// TimedStore is a ValidityStore whose entries additionally expire a fixed
// interval after they are written. A read past the deadline behaves as
// absent; the entry stays in place until the next Set overwrites value and
// deadline together.
//
// The current time comes from the injected clock, never from the wall clock
// directly.
type TimedStore[K comparable, V any] struct {
	inner    *ValidityStore[K, timedEntry[V]]
	interval time.Duration
	options  options[K, V]
}

var (
	_ memocache.Store[uint8, struct{}] = (*TimedStore[uint8, struct{}])(nil)
	_ memocache.Invalidator            = (*TimedStore[uint8, struct{}])(nil)
)

// NewTimedStore creates a TimedStore whose entries expire interval after
// each write.
func NewTimedStore[K comparable, V any](interval time.Duration, opts ...Option[K, V]) *TimedStore[K, V] {
	options := defaultOptions[K, V]()
	for _, opt := range opts {
		opt.apply(&options)
	}
	inner := NewValidityStore(WithLogger[K, timedEntry[V]](options.logger))
	return &TimedStore[K, V]{inner: inner, interval: interval, options: options}
}

// Get applies the validity check, then the expiration policy.
func (s *TimedStore[K, V]) Get(ctx context.Context, key K) (V, bool) {
	var zero V
	e, ok := s.inner.Get(ctx, key)
	if !ok {
		return zero, false
	}
	if s.options.policy.Expired(s.options.clock.Now(), e.deadline) {
		return zero, false
	}
	return s.options.cloner.CloneValue(e.value), true
}

// Set stores the value with a deadline of now plus the store's interval and
// marks the key valid.
func (s *TimedStore[K, V]) Set(ctx context.Context, key K, value V) {
	s.inner.Set(ctx, key, timedEntry[V]{
		value:    s.options.cloner.CloneValue(value),
		deadline: s.options.clock.Now().Add(s.interval),
	})
}

// Delete removes the entry for key.
func (s *TimedStore[K, V]) Delete(ctx context.Context, key K) {
	s.inner.Delete(ctx, key)
}

// Clear discards all stored values.
func (s *TimedStore[K, V]) Clear(ctx context.Context) {
	s.inner.Clear(ctx)
}

// Invalidate marks every key invalid without discarding stored values.
func (s *TimedStore[K, V]) Invalidate() {
	s.inner.Invalidate()
}

// Contains reports whether a value is physically present for key, even when
// invalid or expired.
func (s *TimedStore[K, V]) Contains(key K) bool {
	return s.inner.Contains(key)
}
