package valuematch

import (
	"fmt"

	"github.com/coregx/coregex"

	"github.com/quay/xuma"
)

// Regex matches a [xuma.Value] of kind Str against a compiled pattern.
//
// Matching is full-string: the pattern is anchored at construction time
// as "^(?:pattern)$" so "abc" never matches pattern "b". coregex compiles
// to a Thompson NFA/PikeVM rather than backtracking, so match time is
// linear in input length regardless of pattern — there is no pattern
// that can make Matches take exponential time, unlike backtracking
// engines such as regexp/syntax's backtracker or PCRE.
type Regex struct {
	re *coregex.Regex
}

// NewRegex compiles pattern. The caller supplies an unanchored pattern
// (e.g. "[a-z]+"); NewRegex anchors it for full-string matching.
func NewRegex(pattern string) (*Regex, error) {
	re, err := coregex.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, &xuma.Error{
			Op:      "NewRegex",
			Kind:    xuma.ErrInvalidRegex,
			Message: fmt.Sprintf("compiling pattern %q", pattern),
			Inner:   err,
		}
	}
	return &Regex{re: re}, nil
}

// Matches implements [xuma.ValueMatcher].
func (m *Regex) Matches(v xuma.Value) bool {
	s, ok := v.AsStr()
	if !ok {
		return false
	}
	return m.re.MatchString(s)
}
