package valuematch

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/quay/xuma"
)

// fold is the Unicode-correct case folder used when IgnoreCase is true.
// A single caser is enough: it's stateless beyond its config and safe
// for concurrent use.
var fold = cases.Fold()

func foldTo(ignoreCase bool, s string) string {
	if !ignoreCase {
		return s
	}
	return fold.String(s)
}

// Exact matches a [xuma.Value] of kind Str equal to literal.
//
// IgnoreCase defaults to false (the zero value), giving a strict,
// case-sensitive comparison; set it true for Unicode case-insensitive
// comparison via golang.org/x/text/cases rather than
// strings.EqualFold, which is ASCII/simple-case-only.
type Exact struct {
	Literal    string
	IgnoreCase bool
}

// Matches implements [xuma.ValueMatcher].
func (m Exact) Matches(v xuma.Value) bool {
	s, ok := v.AsStr()
	if !ok {
		return false
	}
	if !m.IgnoreCase {
		return s == m.Literal
	}
	return foldTo(true, s) == foldTo(true, m.Literal)
}

// Prefix matches a [xuma.Value] of kind Str starting with Literal.
type Prefix struct {
	Literal    string
	IgnoreCase bool
}

// Matches implements [xuma.ValueMatcher].
func (m Prefix) Matches(v xuma.Value) bool {
	s, ok := v.AsStr()
	if !ok {
		return false
	}
	if !m.IgnoreCase {
		return strings.HasPrefix(s, m.Literal)
	}
	return strings.HasPrefix(foldTo(true, s), foldTo(true, m.Literal))
}

// Suffix matches a [xuma.Value] of kind Str ending with Literal.
type Suffix struct {
	Literal    string
	IgnoreCase bool
}

// Matches implements [xuma.ValueMatcher].
func (m Suffix) Matches(v xuma.Value) bool {
	s, ok := v.AsStr()
	if !ok {
		return false
	}
	if !m.IgnoreCase {
		return strings.HasSuffix(s, m.Literal)
	}
	return strings.HasSuffix(foldTo(true, s), foldTo(true, m.Literal))
}

// Contains matches a [xuma.Value] of kind Str containing Literal as a
// substring.
type Contains struct {
	Literal    string
	IgnoreCase bool
}

// Matches implements [xuma.ValueMatcher].
func (m Contains) Matches(v xuma.Value) bool {
	s, ok := v.AsStr()
	if !ok {
		return false
	}
	if !m.IgnoreCase {
		return strings.Contains(s, m.Literal)
	}
	return strings.Contains(foldTo(true, s), foldTo(true, m.Literal))
}
