// Package valuematch provides the built-in [xuma.ValueMatcher]
// implementations: exact/prefix/suffix/contains string comparisons,
// boolean comparison, and RE2-class regex.
//
// Every matcher in this package reports false against [xuma.Absent] and
// against a [xuma.Value] of kind Custom — they only ever compare values
// of the kind they were built for. Extension matchers over Custom values
// live in package versionmatch.
package valuematch
