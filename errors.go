package memocache

import (
	"errors"

	"github.com/mitba/memo-cache/memokey"
)

var (
	// ErrNotCacheable reports that an argument set cannot form a cache key.
	// It never surfaces to a caller as a failure: the computation runs
	// uncached instead.
	ErrNotCacheable = memokey.ErrNotCacheable

	// ErrMissingArguments reports that a memoized member was invoked without
	// a required argument. PopulateCache logs and skips members returning it.
	ErrMissingArguments = errors.New("memocache: cached member requires arguments")

	// ErrArgumentMismatch reports arguments that do not fit the member's
	// declared signature: too many positionals, an unknown or duplicated
	// name, or a value of the wrong type.
	ErrArgumentMismatch = errors.New("memocache: arguments do not match the member signature")

	// ErrUnknownKey reports a key outside a LazyMap's fixed key set.
	ErrUnknownKey = errors.New("memocache: key is not part of the lazy map")
)
