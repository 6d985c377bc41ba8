package memocache

import (
	"context"
)

type scopeKeyType struct{}

var scopeKey scopeKeyType

// WithCachingDisabled returns a context in which every cache read behaves as
// a miss, without discarding stored values. Writes still occur and become
// visible again wherever caching is enabled.
//
// The flag travels with the context, so it is local to one execution context
// and is restored simply by letting the derived context go out of scope.
// Nested scopes compose: re-enabling inside a disabled scope affects only
// the contexts derived from the re-enabled one.
func WithCachingDisabled(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeKey, true)
}

// WithCachingEnabled returns a context in which cache reads behave normally,
// even when a surrounding scope disabled caching.
func WithCachingEnabled(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeKey, false)
}

// CachingDisabled reports whether cache reads are suppressed in ctx.
func CachingDisabled(ctx context.Context) bool {
	disabled, _ := ctx.Value(scopeKey).(bool)
	return disabled
}
