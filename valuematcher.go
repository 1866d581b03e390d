package xuma

// ValueMatcher is a context-agnostic predicate on an erased [Value].
//
// Implementations own their parameters (a literal, a pattern, a case-fold
// flag) and must be stateless and immutable after construction, so a
// single instance may be shared by predicates targeting unrelated context
// types. Every built-in implementation (package valuematch) reports false
// against [Absent] and against [KindCustom] — the absent-is-false
// invariant spec.md §3 requires, generalized to "built-ins don't
// understand Custom, so they decline it the same way."
type ValueMatcher interface {
	Matches(v Value) bool
}

// ValueMatcherFunc adapts a plain function to a [ValueMatcher].
type ValueMatcherFunc func(v Value) bool

// Matches implements [ValueMatcher].
func (f ValueMatcherFunc) Matches(v Value) bool { return f(v) }
