package xuma

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

// A *Matcher is immutable after construction and safe to evaluate
// concurrently from many goroutines against independent contexts.
func TestConcurrentEvaluate(t *testing.T) {
	m := mustMatcher(t, []FieldMatcher[stringCtx, string]{
		{Predicate: Single[stringCtx](fieldInput(), equals("a"), ""), OnMatch: OnAction[stringCtx, string]("A")},
		{Predicate: Single[stringCtx](fieldInput(), equals("b"), ""), OnMatch: OnAction[stringCtx, string]("B")},
	}, nil)

	var g errgroup.Group
	for i := range 200 {
		g.Go(func() error {
			v := "a"
			want := "A"
			if i%2 == 1 {
				v, want = "b", "B"
			}
			got, ok := m.Evaluate(stringCtx{v: v})
			if !ok || got != want {
				t.Errorf("Evaluate(%q) = (%q, %v), want (%q, true)", v, got, ok, want)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
