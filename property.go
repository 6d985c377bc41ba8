package memocache

import (
	"context"

	"github.com/mitba/memo-cache/memokey"
)

// Property memoizes a read-only computed attribute of an owner type. The
// accessor runs at most once per owner; the result lives in the owner's
// cache slot until evicted or cleared.
//
// Define properties once, at package initialization:
//
//	var serialNumber = memocache.NewProperty("serial_number",
//		func(ctx context.Context, d *Device) (string, error) {
//			return d.probeSerial(ctx)
//		})
type Property[O Owner, T any] struct {
	name string
	id   uint64
	fget func(context.Context, O) (T, error)
}

// NewProperty binds a memoized property to the owner type O and registers it
// for cache sweeps. The name must be unique among O's memoized members.
func NewProperty[O Owner, T any](name string, fget func(context.Context, O) (T, error)) *Property[O, T] {
	t := ownerTypeOf[O]()
	p := &Property[O, T]{name: name, id: memberID(t, name), fget: fget}
	registerMember(t, p)
	return p
}

var _ member = (*Property[Owner, struct{}])(nil)

// Name returns the property name given at definition time.
func (p *Property[O, T]) Name() string {
	return p.name
}

// Get returns the cached value, computing and storing it on first access.
// A failed computation stores nothing and its error propagates unmodified.
func (p *Property[O, T]) Get(ctx context.Context, owner O) (T, error) {
	st := owner.CacheSlot().flatStore()
	key := memokey.Key(p.id)
	if v, ok := st.Get(ctx, key); ok {
		return v.(T), nil
	}
	v, err := p.fget(ctx, owner)
	if err != nil {
		var zero T
		return zero, err
	}
	st.Set(ctx, key, v)
	return v, nil
}

// Evict drops the cached value for one owner; the next Get recomputes.
// Evicting an absent entry is a no-op.
func (p *Property[O, T]) Evict(ctx context.Context, owner O) {
	owner.CacheSlot().flatStore().Delete(ctx, memokey.Key(p.id))
}

func (p *Property[O, T]) warm(ctx context.Context, owner any) error {
	o, ok := owner.(O)
	if !ok {
		return nil
	}
	_, err := p.Get(ctx, o)
	return err
}
