// Package xuma implements a cross-language matcher engine modeled on the
// xDS Unified Matcher API.
//
// Given a [Matcher] built once (either directly, with [NewMatcher], or by
// compiling a configuration document via [github.com/quay/xuma/registry])
// and evaluated many times against a caller-supplied context, the engine
// returns either an action of a caller-defined type, or a no-match signal.
// Evaluation is a pure, synchronous, allocation-light function: it never
// blocks, never performs I/O, and never mutates state visible to the
// caller.
//
// The type-erased data plane ([Value], [DataInput]) lets a single,
// non-generic pool of value matchers (see package
// [github.com/quay/xuma/valuematch]) operate across arbitrary context
// types. Everything above the data plane — predicates, on-match, matcher
// trees — is generic over the context type Ctx and the action type A.
package xuma
