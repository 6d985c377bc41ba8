package memocache

import (
	"context"

	"github.com/mitba/memo-cache/memokey"
)

// MethodFunc is the raw shape of a memoized method computation. Arguments
// arrive exactly as the caller passed them: positional values and Named
// keyword values, in order. Use Adapt1 or Adapt2 to wrap a typed method
// instead of handling the argument list by hand.
type MethodFunc[O Owner, T any] func(ctx context.Context, owner O, args ...any) (T, error)

// MethodOption configures a Method.
type MethodOption interface {
	apply(*methodConfig)
}

type methodOptionFunc func(*methodConfig)

func (f methodOptionFunc) apply(c *methodConfig) {
	f(c)
}

type methodConfig struct {
	container func() Container
}

// WithContainer makes the method keep its entries in a dedicated container
// inside the owner's slot, looked up by member name and created by factory
// on the first write. This is how a validity or TTL policy applies to a
// single method rather than to the owner's whole cache:
//
//	memocache.WithContainer(func() memocache.Container {
//		return store.NewTimedStore[memokey.Key, any](10 * time.Second)
//	})
func WithContainer(factory func() Container) MethodOption {
	return methodOptionFunc(func(c *methodConfig) {
		c.container = factory
	})
}

// Method memoizes an instance method taking arbitrary positional and keyword
// arguments. Results are cached per owner, keyed by the member scheme of
// package memokey: equal effective arguments hit the same entry.
type Method[O Owner, T any] struct {
	name      string
	id        uint64
	fn        MethodFunc[O, T]
	container func() Container
}

// NewMethod binds a memoized method to the owner type O and registers it for
// cache sweeps. The name must be unique among O's memoized members.
func NewMethod[O Owner, T any](name string, fn MethodFunc[O, T], opts ...MethodOption) *Method[O, T] {
	var cfg methodConfig
	for _, o := range opts {
		o.apply(&cfg)
	}
	t := ownerTypeOf[O]()
	m := &Method[O, T]{name: name, id: memberID(t, name), fn: fn, container: cfg.container}
	registerMember(t, m)
	return m
}

var _ member = (*Method[Owner, struct{}])(nil)

// Name returns the method name given at definition time.
func (m *Method[O, T]) Name() string {
	return m.name
}

// GetOrCompute returns the cached result for the given arguments, computing
// and storing it on a miss.
//
// When the arguments cannot form a cache key the computation runs directly,
// nothing is cached, and a debug diagnostic is emitted; the caller still
// gets the result. A failed computation stores nothing and its error
// propagates unmodified.
func (m *Method[O, T]) GetOrCompute(ctx context.Context, owner O, args ...any) (T, error) {
	key, err := memokey.ForMember(m.id, args)
	if err != nil {
		logger.WithField("method", m.name).Debug("arguments cannot form a cache key, computing without caching")
		return m.fn(ctx, owner, args...)
	}
	slot := owner.CacheSlot()
	if v, ok := m.lookup(ctx, slot, key); ok {
		return v.(T), nil
	}
	v, err := m.fn(ctx, owner, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	m.put(ctx, slot, key, v)
	return v, nil
}

// Evict removes the entry for exactly these arguments, leaving entries for
// other argument sets intact. It silently does nothing when the arguments
// are not cacheable or no such entry exists.
func (m *Method[O, T]) Evict(ctx context.Context, owner O, args ...any) {
	key, err := memokey.ForMember(m.id, args)
	if err != nil {
		return
	}
	slot := owner.CacheSlot()
	if m.container == nil {
		slot.flatStore().Delete(ctx, key)
		return
	}
	if c, ok := slot.Container(m.name); ok {
		c.Delete(ctx, key)
	}
}

func (m *Method[O, T]) lookup(ctx context.Context, slot *Slot, key memokey.Key) (any, bool) {
	if m.container == nil {
		return slot.flatStore().Get(ctx, key)
	}
	if c, ok := slot.Container(m.name); ok {
		return c.Get(ctx, key)
	}
	return nil, false
}

func (m *Method[O, T]) put(ctx context.Context, slot *Slot, key memokey.Key, v T) {
	if m.container == nil {
		slot.flatStore().Set(ctx, key, v)
		return
	}
	slot.container(m.name, m.container).Set(ctx, key, v)
}

func (m *Method[O, T]) warm(ctx context.Context, owner any) error {
	o, ok := owner.(O)
	if !ok {
		return nil
	}
	_, err := m.GetOrCompute(ctx, o)
	return err
}
