package memocache

import (
	"context"

	"github.com/mitba/memo-cache/memokey"
)

// Slot is the per-owner cache arena. Owner types embed it to carry the
// cached values of their memoized properties and methods:
//
//	type Server struct {
//		memocache.Slot
//		// ...
//	}
//
// The zero value is ready to use; storage is allocated on the first write.
// Most members share the flat key-to-value map. Methods configured with a
// custom container get a dedicated, named container instead, so a validity
// or TTL policy can apply per method.
//
// A Slot is not synchronized. Concurrent access to one owner's slot must be
// serialized by the caller.
type Slot struct {
	flat  MapStore[memokey.Key, any]
	named map[string]Container
}

// CacheSlot returns the slot itself, satisfying Owner for embedders.
func (s *Slot) CacheSlot() *Slot {
	return s
}

// flatStore returns the shared flat container.
func (s *Slot) flatStore() Container {
	return &s.flat
}

// container returns the named container for a member, creating it with
// factory on first use.
func (s *Slot) container(name string, factory func() Container) Container {
	if c, ok := s.named[name]; ok {
		return c
	}
	if s.named == nil {
		s.named = map[string]Container{}
	}
	c := factory()
	s.named[name] = c
	return c
}

// Container returns the named container created for a memoized member, if
// one exists yet. It is the handle for explicit invalidation when a method
// uses a validity-tracked or timed container.
func (s *Slot) Container(name string) (Container, bool) {
	c, ok := s.named[name]
	return c, ok
}

// Clear empties every container in the slot without destroying them.
func (s *Slot) Clear(ctx context.Context) {
	s.flat.Clear(ctx)
	for _, c := range s.named {
		c.Clear(ctx)
	}
}

// ClearCache empties the owner's entire cache slot. Calling it on an owner
// that never cached anything is a no-op.
func ClearCache(ctx context.Context, owner Owner) {
	if owner == nil {
		return
	}
	owner.CacheSlot().Clear(ctx)
}
