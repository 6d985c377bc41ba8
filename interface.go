package memocache

import (
	"context"

	"github.com/mitba/memo-cache/memokey"
)

// Store is the interface for a cache container mapping keys to values.
// A miss is the false return; no error is involved in signaling absence.
//
// Stores consult the caching scope of ctx on every read and behave as an
// unconditional miss while caching is disabled. Writes ignore the scope.
//
// Implementations are not required to be safe for concurrent use; callers
// sharing a store across goroutines must serialize access themselves.
type Store[K comparable, V any] interface {
	// Get retrieves the value stored under key, or reports a miss.
	Get(ctx context.Context, key K) (V, bool)

	// Set stores a value under key, overwriting any existing value.
	Set(ctx context.Context, key K, value V)

	// Delete removes the entry for key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key K)

	// Clear empties the store without destroying it.
	Clear(ctx context.Context)
}

// Container is the store shape a Slot holds for a memoized member.
type Container interface {
	Store[memokey.Key, any]
}

// Invalidator is implemented by stores that can bulk-invalidate: stop
// serving every entry without discarding the stored values.
type Invalidator interface {
	Invalidate()
}

// Owner is any value that can carry a cache slot.
// Embedding Slot in a struct satisfies it.
type Owner interface {
	CacheSlot() *Slot
}
