package store

import (
	"github.com/apex/log"

	memocache "github.com/mitba/memo-cache"
	"github.com/mitba/memo-cache/expiry"
)

// Option is the interface for store configuration options.
type Option[K comparable, V any] interface {
	apply(*options[K, V])
}

type optionFunc[K comparable, V any] func(*options[K, V])

func (f optionFunc[K, V]) apply(o *options[K, V]) {
	f(o)
}

// WithLogger sets the logger that receives invalidation diagnostics.
func WithLogger[K comparable, V any](logger log.Interface) Option[K, V] {
	return optionFunc[K, V](func(o *options[K, V]) {
		o.logger = logger
	})
}

// WithCloner sets a cloner applied to values on reads and writes, for
// defensive copies. The default shares values by reference.
func WithCloner[K comparable, V any](cloner memocache.ValueCloner[V]) Option[K, V] {
	return optionFunc[K, V](func(o *options[K, V]) {
		o.cloner = cloner
	})
}

// WithClock sets the clock a TimedStore stamps and checks deadlines with.
// It has no effect on a plain ValidityStore.
func WithClock[K comparable, V any](clock memocache.Clock) Option[K, V] {
	return optionFunc[K, V](func(o *options[K, V]) {
		o.clock = clock
	})
}

// WithPolicy sets the expiration policy of a TimedStore.
// It has no effect on a plain ValidityStore.
func WithPolicy[K comparable, V any](policy expiry.Policy) Option[K, V] {
	return optionFunc[K, V](func(o *options[K, V]) {
		o.policy = policy
	})
}

type options[K comparable, V any] struct {
	logger log.Interface
	cloner memocache.ValueCloner[V]
	clock  memocache.Clock
	policy expiry.Policy
}

func defaultOptions[K comparable, V any]() options[K, V] {
	return options[K, V]{
		logger: log.Log,
		cloner: memocache.NopValueCloner[V]{},
		clock:  memocache.SystemClock,
		policy: expiry.AfterDeadline{},
	}
}
