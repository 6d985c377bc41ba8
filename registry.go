package memocache

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/goccy/go-reflect"
)

// member is the registry's view of a memoized member: enough to enumerate it
// during a cache sweep and force its evaluation.
type member interface {
	// Name returns the member name given at definition time.
	Name() string

	// warm evaluates the member against the owner with no extra arguments.
	warm(ctx context.Context, owner any) error
}

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type][]member{}
)

// registerMember records a memoized member of an owner type. Members
// self-register at definition time so that sweeps can enumerate them without
// runtime introspection of the owner.
func registerMember(t reflect.Type, m member) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[t] = append(registry[t], m)
}

// membersOf returns the members registered for exactly the given owner type.
func membersOf(t reflect.Type) []member {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ms := registry[t]
	out := make([]member, len(ms))
	copy(out, ms)
	return out
}

// ownerTypeOf resolves the concrete owner type of a binding.
func ownerTypeOf[O Owner]() reflect.Type {
	return reflect.TypeOf((*O)(nil)).Elem()
}

// memberID derives the stable identity of a member from its definition site.
// The identity distinguishes member A from member B inside one owner's flat
// container, and is shared across all instances of the owner type.
func memberID(t reflect.Type, name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(t.String()))
	_, _ = h.Write([]byte{'.'})
	_, _ = h.Write([]byte(name))
	return h.Sum64()
}
