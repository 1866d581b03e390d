package xuma

import (
	"errors"
	"strings"
)

// Error is this module's error domain type.
//
// Errors coming from construction or the registry loader can be inspected
// as ([errors.As]) an *Error at some point in the error chain. Evaluation
// ([Matcher.Evaluate], [Matcher.Trace]) never produces one: it has no
// error return at all, which is the infallibility spec.md §7 requires.
//
// Intermediate layers should prefer [fmt.Errorf] with a "%w" verb over
// wrapping in another Error, except to add [ErrorKind] information at a
// boundary (construction, loading).
type Error struct {
	Inner   error
	Kind    ErrorKind
	Message string
	// Op names the operation that raised the error, e.g. "registry.Load"
	// or "NewMatcher".
	Op string
}

// Assert this implements all the cool features.
var (
	_ error                       = (*Error)(nil)
	_ interface{ Is(error) bool } = (*Error)(nil)
	_ interface{ Unwrap() error } = (*Error)(nil)
)

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(" ")
	}
	b.WriteString("[")
	switch e.Kind {
	case ErrUnknownTypeUrl,
		ErrInvalidConfig,
		ErrInvalidRegex,
		ErrDepthExceeded,
		ErrContextMismatch,
		ErrRegistryFrozen,
		ErrDuplicateTypeUrl:
		b.WriteString(string(e.Kind))
	default:
		b.WriteString("???")
	}
	b.WriteString("]: ")
	if e.Message != "" {
		b.WriteString(e.Message)
	}
	if e.Message != "" && e.Inner != nil {
		b.WriteString(": ")
	}
	if e.Op == "" && e.Message == "" {
		b.Reset()
	}
	if e.Inner != nil {
		b.WriteString(e.Inner.Error())
	}
	return b.String()
}

// Is enables [errors.Is] against an [ErrorKind].
//
// Callers should compare against a declared [ErrorKind], not a specific
// *Error value.
func (e *Error) Is(kind error) bool {
	return errors.Is(e.Kind, kind)
}

// Unwrap enables [errors.Unwrap].
func (e *Error) Unwrap() error {
	return e.Inner
}

// ErrorKind represents classes of construction/loading error, per
// spec.md §7. Evaluation never raises one of these: every condition that
// could throw is resolved at load time (depth, unknown type URLs, invalid
// regex) or made explicit in value-matcher semantics ([Value] Absent
// always compares false).
type ErrorKind string

// The seven error kinds from spec.md §7.
var (
	// ErrUnknownTypeUrl: a TypedConfig.type_url is not registered.
	ErrUnknownTypeUrl = ErrorKind("unknown_type_url")
	// ErrInvalidConfig: a configuration object fails structural validation.
	ErrInvalidConfig = ErrorKind("invalid_config")
	// ErrInvalidRegex: a regex pattern fails to compile.
	ErrInvalidRegex = ErrorKind("invalid_regex")
	// ErrDepthExceeded: matcher nesting depth exceeds [MaxDepth].
	ErrDepthExceeded = ErrorKind("depth_exceeded")
	// ErrContextMismatch: a registered input is incompatible with the
	// registry's context type.
	ErrContextMismatch = ErrorKind("context_mismatch")
	// ErrRegistryFrozen: a registration attempt targeted an already-built
	// registry.
	ErrRegistryFrozen = ErrorKind("registry_frozen")
	// ErrDuplicateTypeUrl: the same type URL was registered twice in one
	// builder.
	ErrDuplicateTypeUrl = ErrorKind("duplicate_type_url")
)

// Error implements error, so an ErrorKind can be used as the target of
// [errors.Is].
func (k ErrorKind) Error() string {
	return string(k)
}
