package store_test

import (
	"context"
	"testing"
	"time"

	memocache "github.com/mitba/memo-cache"
	"github.com/mitba/memo-cache/expiry"
	"github.com/mitba/memo-cache/store"
)

// manualClock advances only when the test says so.
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func TestTimedStore_ExpiresAfterInterval(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newManualClock()
	s := store.NewTimedStore(10*time.Second, store.WithClock[string, int](clock))

	s.Set(ctx, "k", 10)

	clock.advance(5 * time.Second)
	if v, ok := s.Get(ctx, "k"); !ok || v != 10 {
		t.Errorf("a read inside the interval must hit, got (%d, %t)", v, ok)
	}

	clock.advance(5 * time.Second)
	if _, ok := s.Get(ctx, "k"); !ok {
		t.Error("a read at exactly the deadline must still hit")
	}

	clock.advance(5 * time.Second)
	if _, ok := s.Get(ctx, "k"); ok {
		t.Error("a read past the deadline must miss")
	}
	if !s.Contains("k") {
		t.Error("the expired entry must stay in place")
	}
}

func TestTimedStore_SetRefreshesDeadline(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newManualClock()
	s := store.NewTimedStore(10*time.Second, store.WithClock[string, int](clock))

	s.Set(ctx, "k", 1)
	clock.advance(15 * time.Second)
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatal("entry should have expired")
	}

	s.Set(ctx, "k", 2)
	clock.advance(5 * time.Second)
	if v, ok := s.Get(ctx, "k"); !ok || v != 2 {
		t.Errorf("overwriting must refresh value and deadline together, got (%d, %t)", v, ok)
	}
}

func TestTimedStore_Invalidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newManualClock()
	s := store.NewTimedStore(10*time.Second, store.WithClock[string, int](clock))

	s.Set(ctx, "k", 1)
	s.Invalidate()

	clock.advance(time.Second)
	if _, ok := s.Get(ctx, "k"); ok {
		t.Error("invalidated entry must miss even before its deadline")
	}
	if !s.Contains("k") {
		t.Error("invalidation must not discard the stored value")
	}
}

func TestTimedStore_ScopeDisabled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newManualClock()
	s := store.NewTimedStore(10*time.Second, store.WithClock[string, int](clock))

	s.Set(ctx, "k", 1)
	if _, ok := s.Get(memocache.WithCachingDisabled(ctx), "k"); ok {
		t.Error("reads in a caching-disabled scope must miss")
	}
	if _, ok := s.Get(ctx, "k"); !ok {
		t.Error("the value must still be served outside the scope")
	}
}

func TestTimedStore_NeverPolicy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newManualClock()
	s := store.NewTimedStore(10*time.Second,
		store.WithClock[string, int](clock),
		store.WithPolicy[string, int](expiry.Never{}))

	s.Set(ctx, "k", 1)
	clock.advance(24 * time.Hour)
	if _, ok := s.Get(ctx, "k"); !ok {
		t.Error("entries must not expire under the Never policy")
	}
}
