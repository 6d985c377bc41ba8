package memocache

import (
	"context"
	"fmt"
	"iter"
	"maps"
)

// LazyMap holds a fixed set of keys whose values are expensive to produce.
// The fill function runs on the first Get of each key and the result is kept
// for subsequent reads. The key set never changes after construction.
//
// A LazyMap is not synchronized.
type LazyMap[K comparable, V any] struct {
	fill   func(context.Context, K) (V, error)
	values map[K]*V
}

// NewLazyMap creates a LazyMap over the given keys. fill is invoked at most
// once per key, on its first Get.
func NewLazyMap[K comparable, V any](keys []K, fill func(context.Context, K) (V, error)) *LazyMap[K, V] {
	values := make(map[K]*V, len(keys))
	for _, k := range keys {
		values[k] = nil
	}
	return &LazyMap[K, V]{fill: fill, values: values}
}

// Get returns the value for key, producing it on first access. A key outside
// the fixed key set yields ErrUnknownKey. A failed fill stores nothing, so
// the next Get retries.
func (l *LazyMap[K, V]) Get(ctx context.Context, key K) (V, error) {
	var zero V
	v, ok := l.values[key]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	if v != nil {
		return *v, nil
	}
	value, err := l.fill(ctx, key)
	if err != nil {
		return zero, err
	}
	l.values[key] = &value
	return value, nil
}

// Contains reports whether key is part of the fixed key set.
func (l *LazyMap[K, V]) Contains(key K) bool {
	_, ok := l.values[key]
	return ok
}

// Len returns the size of the key set.
func (l *LazyMap[K, V]) Len() int {
	return len(l.values)
}

// Keys iterates over the fixed key set in unspecified order.
func (l *LazyMap[K, V]) Keys() iter.Seq[K] {
	return maps.Keys(l.values)
}
