package xuma

// DataInput extracts one erased [Value] from a context.
//
// Implementations own the parameters needed to locate their datum (e.g. a
// header name) and must be stateless after construction — the same
// DataInput value is evaluated concurrently, many times, against
// different contexts. A DataInput that can't find its field in ctx must
// return [Absent], never coerce to an empty string or zero value.
//
// DataInput is generic over the context type; a given instance is pinned
// to one Ctx. Value matchers (see package valuematch) are not — that
// asymmetry is the point of the type-erased data plane (see the package
// docs).
type DataInput[Ctx any] interface {
	Extract(ctx Ctx) Value
}

// InputFunc adapts a plain function to a [DataInput].
type InputFunc[Ctx any] func(ctx Ctx) Value

// Extract implements [DataInput].
func (f InputFunc[Ctx]) Extract(ctx Ctx) Value { return f(ctx) }
