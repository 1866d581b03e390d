package xuma

import (
	"errors"
	"testing"
)

// chain builds a matcher nested n levels deep: chain(0) is a leaf with
// depth 0, chain(n) wraps chain(n-1) so its own depth is n.
func chain(t *testing.T, n int) *Matcher[stringCtx, string] {
	t.Helper()
	if n == 0 {
		return mustMatcher[stringCtx, string](t, nil, nil)
	}
	inner := chain(t, n-1)
	m, err := NewMatcher[stringCtx, string](
		[]FieldMatcher[stringCtx, string]{
			{Predicate: always[stringCtx](true), OnMatch: OnNested[stringCtx, string](inner)},
		},
		nil,
	)
	if err != nil {
		t.Fatalf("chain(%d): %v", n, err)
	}
	return m
}

func TestDepthAtMaxSucceeds(t *testing.T) {
	m := chain(t, MaxDepth)
	if m.depth != MaxDepth {
		t.Fatalf("depth = %d, want %d", m.depth, MaxDepth)
	}
}

func TestDepthOverMaxFails(t *testing.T) {
	inner := chain(t, MaxDepth) // depth == MaxDepth already
	_, err := NewMatcher[stringCtx, string](
		[]FieldMatcher[stringCtx, string]{
			{Predicate: always[stringCtx](true), OnMatch: OnNested[stringCtx, string](inner)},
		},
		nil,
	)
	if err == nil {
		t.Fatal("expected an error: nesting one level past MaxDepth")
	}
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("got %v, want errors.Is(err, ErrDepthExceeded)", err)
	}
}
