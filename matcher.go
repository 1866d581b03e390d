package xuma

// MaxDepth is the maximum nesting depth of a [Matcher] tree, per
// spec.md §4.5: a tree whose deepest on_match/on_no_match chain of nested
// matchers exceeds this is rejected at construction, never at evaluation.
const MaxDepth = 32

// FieldMatcher pairs a predicate with what to do when it's satisfied.
// Rules are evaluated in declaration order; the first whose Predicate
// reports true wins (first-match-wins, spec.md §4.3 step 1).
type FieldMatcher[Ctx, A any] struct {
	Predicate Predicate[Ctx]
	OnMatch   OnMatch[Ctx, A]
}

// Matcher is a single node of the matcher tree: an ordered list of rules,
// and a fallback for when none of them match.
//
// A *Matcher is immutable after [NewMatcher] returns and safe for
// concurrent use by any number of goroutines — nothing in Evaluate or
// Trace mutates it or any input field captured at construction.
type Matcher[Ctx, A any] struct {
	rules     []FieldMatcher[Ctx, A]
	onNoMatch *OnMatch[Ctx, A]
	depth     int
}

// NewMatcher builds a Matcher from its rules and optional fallback.
// onNoMatch may be nil, meaning "no match" resolves to (zero, false).
//
// NewMatcher computes the tree's nesting depth bottom-up and rejects a
// tree deeper than [MaxDepth] with an *[Error] of kind
// [ErrDepthExceeded], so no Matcher that would overflow a bounded
// evaluation stack can ever be constructed.
func NewMatcher[Ctx, A any](rules []FieldMatcher[Ctx, A], onNoMatch *OnMatch[Ctx, A]) (*Matcher[Ctx, A], error) {
	depth := 0
	for _, r := range rules {
		if d := r.OnMatch.depth(); d > depth {
			depth = d
		}
	}
	if onNoMatch != nil {
		if d := onNoMatch.depth(); d > depth {
			depth = d
		}
	}
	if depth > MaxDepth {
		return nil, &Error{
			Op:      "NewMatcher",
			Kind:    ErrDepthExceeded,
			Message: "matcher nesting exceeds maximum depth",
		}
	}
	return &Matcher[Ctx, A]{rules: rules, onNoMatch: onNoMatch, depth: depth}, nil
}
