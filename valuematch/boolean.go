package valuematch

import "github.com/quay/xuma"

// Bool matches a [xuma.Value] of kind Bool equal to Literal.
type Bool struct {
	Literal bool
}

// Matches implements [xuma.ValueMatcher].
func (m Bool) Matches(v xuma.Value) bool {
	b, ok := v.AsBool()
	if !ok {
		return false
	}
	return b == m.Literal
}
