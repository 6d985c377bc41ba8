package memocache

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/mitba/memo-cache/internal/panicutil"
	"github.com/mitba/memo-cache/memokey"
)

// FunctionFunc is the shape of a memoized free computation.
type FunctionFunc[T any] func(ctx context.Context, args ...any) (T, error)

// FunctionOption configures a Function.
type FunctionOption interface {
	apply(*functionConfig)
}

type functionOptionFunc func(*functionConfig)

func (f functionOptionFunc) apply(c *functionConfig) {
	f(c)
}

type functionConfig struct {
	coalesce bool
}

// WithCoalescing makes concurrent callers with equal arguments share a
// single evaluation instead of racing to compute the same value. A panic
// inside a coalesced computation is recovered and surfaces to every waiter
// as a *panics.ErrRecovered error.
func WithCoalescing() FunctionOption {
	return functionOptionFunc(func(c *functionConfig) {
		c.coalesce = true
	})
}

// Function memoizes a free computation. The store is owned by the function
// itself, not by any call-site object, so every caller in the process shares
// one cache keyed purely by arguments (the call scheme of package memokey).
//
// Unlike the per-owner stores, a Function serializes access to its store
// internally: being process-shared, it cannot push that burden onto callers.
type Function[T any] struct {
	name  string
	fn    FunctionFunc[T]
	mu    sync.Mutex
	store MapStore[memokey.Key, T]
	group *singleflight.Group
}

// NewFunction wraps a free computation in a shared cache. The name appears
// only in diagnostics.
func NewFunction[T any](name string, fn FunctionFunc[T], opts ...FunctionOption) *Function[T] {
	var cfg functionConfig
	for _, o := range opts {
		o.apply(&cfg)
	}
	f := &Function[T]{name: name, fn: fn}
	if cfg.coalesce {
		f.group = &singleflight.Group{}
	}
	return f
}

// Call returns the cached result for the given arguments, computing and
// storing it on a miss. Non-cacheable arguments run the computation
// directly, uncached, with a debug diagnostic. A failed computation stores
// nothing and its error propagates unmodified.
func (f *Function[T]) Call(ctx context.Context, args ...any) (T, error) {
	key, err := memokey.ForCall(args)
	if err != nil {
		logger.WithField("function", f.name).Debug("arguments cannot form a cache key, computing without caching")
		return f.fn(ctx, args...)
	}
	if v, ok := f.lookup(ctx, key); ok {
		return v, nil
	}
	if f.group != nil {
		return f.callShared(ctx, key, args)
	}
	v, err := f.fn(ctx, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	f.put(ctx, key, v)
	return v, nil
}

// Clear empties the shared store.
func (f *Function[T]) Clear(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store.Clear(ctx)
}

// Evict removes the entry for exactly these arguments, leaving entries for
// other argument sets intact. It silently does nothing when the arguments
// are not cacheable or no such entry exists.
func (f *Function[T]) Evict(ctx context.Context, args ...any) {
	key, err := memokey.ForCall(args)
	if err != nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store.Delete(ctx, key)
}

func (f *Function[T]) lookup(ctx context.Context, key memokey.Key) (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store.Get(ctx, key)
}

func (f *Function[T]) put(ctx context.Context, key memokey.Key, v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store.Set(ctx, key, v)
}

func (f *Function[T]) callShared(ctx context.Context, key memokey.Key, args []any) (T, error) {
	v, err, _ := f.group.Do(strconv.FormatUint(uint64(key), 16), func() (any, error) {
		var out T
		err := panicutil.Invoke(func() (err error) {
			out, err = f.fn(ctx, args...)
			return
		})
		if err != nil {
			return nil, err
		}
		f.put(ctx, key, out)
		return out, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
