package xuma

import "testing"

func always[Ctx any](ok bool) Predicate[Ctx] {
	return ValueMatcherFuncPredicate[Ctx](func(Ctx) bool { return ok })
}

func TestNewMatcherDepthZero(t *testing.T) {
	m, err := NewMatcher[stringCtx, string](
		[]FieldMatcher[stringCtx, string]{
			{Predicate: always[stringCtx](true), OnMatch: OnAction[stringCtx, string]("A")},
		},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	if m.depth != 0 {
		t.Errorf("depth = %d, want 0", m.depth)
	}
}

func TestNewMatcherDepthCountsNestedRulesAndFallback(t *testing.T) {
	leaf, err := NewMatcher[stringCtx, string](nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	onNoMatch := OnNested[stringCtx, string](leaf)
	mid, err := NewMatcher[stringCtx, string](
		[]FieldMatcher[stringCtx, string]{
			{Predicate: always[stringCtx](true), OnMatch: OnNested[stringCtx, string](leaf)},
		},
		&onNoMatch,
	)
	if err != nil {
		t.Fatal(err)
	}
	if mid.depth != 1 {
		t.Errorf("depth = %d, want 1", mid.depth)
	}
}
