package store_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	memocache "github.com/mitba/memo-cache"
	"github.com/mitba/memo-cache/store"
)

func TestValidityStore_GetSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewValidityStore[string, int]()

	if _, ok := s.Get(ctx, "k"); ok {
		t.Error("never-written key must miss")
	}

	s.Set(ctx, "k", 10)
	if v, ok := s.Get(ctx, "k"); !ok || v != 10 {
		t.Errorf("expected hit with 10, got (%d, %t)", v, ok)
	}
}

func TestValidityStore_Invalidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewValidityStore[string, int]()
	s.Set(ctx, "k", 10)
	s.Set(ctx, "other", 20)

	s.Invalidate()

	if _, ok := s.Get(ctx, "k"); ok {
		t.Error("invalidated key must miss")
	}
	if !s.Contains("k") {
		t.Error("invalidation must not discard the stored value")
	}

	s.Set(ctx, "k", 11)
	if v, ok := s.Get(ctx, "k"); !ok || v != 11 {
		t.Errorf("rewritten key must hit with the new value, got (%d, %t)", v, ok)
	}
	if _, ok := s.Get(ctx, "other"); ok {
		t.Error("keys not rewritten since invalidation must still miss")
	}
}

func TestValidityStore_ScopeDisabled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewValidityStore[string, int]()
	s.Set(ctx, "k", 10)

	disabled := memocache.WithCachingDisabled(ctx)
	if _, ok := s.Get(disabled, "k"); ok {
		t.Error("reads in a caching-disabled scope must miss")
	}
	if v, ok := s.Get(ctx, "k"); !ok || v != 10 {
		t.Errorf("the value must still be served outside the scope, got (%d, %t)", v, ok)
	}
}

func TestValidityStore_DeleteAndClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewValidityStore[string, int]()
	s.Set(ctx, "a", 1)
	s.Set(ctx, "b", 2)

	s.Delete(ctx, "a")
	if s.Contains("a") {
		t.Error("deleted key must not remain present")
	}
	if _, ok := s.Get(ctx, "b"); !ok {
		t.Error("deleting one key must not affect others")
	}

	s.Clear(ctx)
	if _, ok := s.Get(ctx, "b"); ok {
		t.Error("cleared store must miss")
	}

	// Clear and Delete on an empty store are no-ops, never errors.
	empty := store.NewValidityStore[string, int]()
	empty.Clear(ctx)
	empty.Delete(ctx, "a")
}

func TestValidityStore_Cloner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewValidityStore(store.WithCloner[string](memocache.ValueClonerFunc[[]int](func(v []int) []int {
		out := make([]int, len(v))
		copy(out, v)
		return out
	})))

	original := []int{1, 2, 3}
	s.Set(ctx, "k", original)
	original[0] = 99

	got, ok := s.Get(ctx, "k")
	if !ok {
		t.Fatal("expected hit")
	}
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("stored value must be isolated from the caller's slice (-want +got):\n%s", diff)
	}

	got[1] = 99
	again, _ := s.Get(ctx, "k")
	if diff := cmp.Diff([]int{1, 2, 3}, again); diff != "" {
		t.Errorf("served value must be isolated from previous reads (-want +got):\n%s", diff)
	}
}
