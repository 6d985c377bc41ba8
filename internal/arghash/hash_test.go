package arghash_test

import (
	"errors"
	"testing"

	"github.com/mitba/memo-cache/internal/arghash"
)

func TestValue_NumericWidening(t *testing.T) {
	t.Parallel()

	a, err := arghash.Value(int8(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := arghash.Value(int(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("int8(7) and int(7) should hash equally, got %d and %d", a, b)
	}

	f, err := arghash.Value(float32(1.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, err := arghash.Value(float64(1.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != g {
		t.Errorf("float32(1.5) and float64(1.5) should hash equally, got %d and %d", f, g)
	}
}

func TestValue_KindsDoNotCollide(t *testing.T) {
	t.Parallel()

	a, err := arghash.Value(int64(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := arghash.Value(uint64(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Error("signed and unsigned values with equal bits must not collide")
	}
}

func TestValue_NilAndBool(t *testing.T) {
	t.Parallel()

	for _, v := range []any{nil, true, false} {
		if _, err := arghash.Value(v); err != nil {
			t.Errorf("Value(%v) returned error: %v", v, err)
		}
	}
}

func TestValue_ComparableStruct(t *testing.T) {
	t.Parallel()

	type Point struct {
		X, Y int
	}

	a, err := arghash.Value(Point{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := arghash.Value(Point{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("equal struct values should hash equally, got %d and %d", a, b)
	}

	c, err := arghash.Value(Point{2, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == c {
		t.Error("different struct values should hash differently")
	}
}

func TestValue_NotHashable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{name: "slice", value: []int{1}},
		{name: "map", value: map[int]int{1: 2}},
		{name: "func", value: func() {}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := arghash.Value(tt.value); !errors.Is(err, arghash.ErrNotHashable) {
				t.Errorf("expected ErrNotHashable, got %v", err)
			}
		})
	}
}

func TestHasher_StringBoundaries(t *testing.T) {
	t.Parallel()

	sum := func(values ...any) uint64 {
		h := arghash.Acquire()
		defer arghash.Release(h)
		for _, v := range values {
			if err := h.WriteValue(v); err != nil {
				t.Fatalf("WriteValue(%v): %v", v, err)
			}
		}
		return h.Sum()
	}

	if sum("ab", "c") == sum("a", "bc") {
		t.Error("length-prefixed strings must not collide across boundaries")
	}
}
