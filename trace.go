package xuma

// TraceStep records one decision made while evaluating a single [Matcher]
// node: either a rule's predicate test (RuleIndex >= 0) or the final
// on_no_match consultation (RuleIndex == -1).
type TraceStep struct {
	RuleIndex int
	Predicate string
	Matched   bool
	// Nested is set when this step's OnMatch (or on_no_match) descended
	// into another Matcher, and holds that matcher's own trace.
	Nested *Trace
}

// Trace is the ordered record of decisions made evaluating one Matcher
// node, produced by [Matcher.Trace].
type Trace struct {
	Steps []TraceStep
}

// Trace evaluates ctx exactly as [Matcher.Evaluate] does, additionally
// recording the path taken. The returned action and ok are always
// identical to what Evaluate would return for the same ctx.
//
// Trace recurses through nested matchers rather than using an explicit
// stack: [NewMatcher] already bounds tree depth to [MaxDepth], so the
// host call stack never grows large enough to matter. Evaluate keeps an
// explicit stack so its own depth never depends on host recursion; Trace
// relies on the construction-time depth bound instead.
func (m *Matcher[Ctx, A]) Trace(ctx Ctx) (A, bool, Trace) {
	var zero A
	var tr Trace

	for i, r := range m.rules {
		matched := r.Predicate.Eval(ctx)
		step := TraceStep{RuleIndex: i, Predicate: r.Predicate.text(), Matched: matched}
		if !matched {
			tr.Steps = append(tr.Steps, step)
			continue
		}
		if r.OnMatch.isNested {
			v, ok, sub := r.OnMatch.nested.Trace(ctx)
			step.Nested = &sub
			tr.Steps = append(tr.Steps, step)
			if ok {
				return v, true, tr
			}
			// Nested matcher didn't resolve: this rule is not retried,
			// and the parent's fallback is not consulted on its behalf.
			// Scanning resumes at the next sibling rule.
			continue
		}
		tr.Steps = append(tr.Steps, step)
		return r.OnMatch.action, true, tr
	}

	step := TraceStep{RuleIndex: -1}
	switch {
	case m.onNoMatch == nil:
		tr.Steps = append(tr.Steps, step)
		return zero, false, tr
	case m.onNoMatch.isNested:
		v, ok, sub := m.onNoMatch.nested.Trace(ctx)
		step.Matched = ok
		step.Nested = &sub
		tr.Steps = append(tr.Steps, step)
		return v, ok, tr
	default:
		step.Matched = true
		tr.Steps = append(tr.Steps, step)
		return m.onNoMatch.action, true, tr
	}
}
