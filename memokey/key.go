package memokey

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mitba/memo-cache/internal/arghash"
)

// Key is an opaque, comparable cache key.
type Key uint64

// Named is a keyword argument: a value passed by parameter name rather than
// by position.
type Named struct {
	Name  string
	Value any
}

// ErrNotCacheable is reported when an argument set cannot form a cache key.
// It is a soft condition: callers must skip caching for the invocation and
// run the computation directly.
var ErrNotCacheable = errors.New("memokey: arguments cannot form a cache key")

// Split separates a mixed argument list into positional values and named
// arguments, preserving order within each group.
func Split(args []any) (positional []any, named []Named) {
	for _, a := range args {
		if n, ok := a.(Named); ok {
			named = append(named, n)
		} else {
			positional = append(positional, a)
		}
	}
	return
}

// ForMember derives a key for a property or instance method identified by id.
//
// With no arguments the key degenerates to the identity alone. Otherwise the
// digest covers the identity, the positional values in order, and the keyword
// values in name-sorted order. Keyword names are dropped from the digest, so
// a value passed positionally and the same value passed by name key
// identically.
func ForMember(id uint64, args []any) (Key, error) {
	if len(args) == 0 {
		return Key(id), nil
	}

	positional, named := Split(args)
	sort.SliceStable(named, func(i, j int) bool { return named[i].Name < named[j].Name })

	h := arghash.Acquire()
	defer arghash.Release(h)

	h.WriteUint64(id)
	for _, v := range positional {
		if err := h.WriteValue(v); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrNotCacheable, err)
		}
	}
	for _, n := range named {
		if err := h.WriteValue(n.Value); err != nil {
			return 0, fmt.Errorf("%w: argument %q: %w", ErrNotCacheable, n.Name, err)
		}
	}
	return Key(h.Sum()), nil
}

// ForCall derives a key for a free function call. The function identity is
// implicit: the store consulted is itself per-function.
//
// Positional values hash in order. Each keyword pair hashes independently,
// name included, and the pair digests combine order-independently, so keyword
// ordering differences are tolerated trivially.
func ForCall(args []any) (Key, error) {
	positional, named := Split(args)

	h := arghash.Acquire()
	defer arghash.Release(h)

	for _, v := range positional {
		if err := h.WriteValue(v); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrNotCacheable, err)
		}
	}

	var set uint64
	for _, n := range named {
		p := arghash.Acquire()
		p.WriteUint64(uint64(len(n.Name)))
		_ = p.WriteValue(n.Name)
		err := p.WriteValue(n.Value)
		d := p.Sum()
		arghash.Release(p)
		if err != nil {
			return 0, fmt.Errorf("%w: argument %q: %w", ErrNotCacheable, n.Name, err)
		}
		set ^= d
	}
	return Key(h.Sum() ^ set), nil
}
