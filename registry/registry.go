// Package registry maps type URLs appearing in configuration documents to
// the constructors ([xuma.DataInput] and [xuma.ValueMatcher] factories)
// that build the live objects they describe.
//
// A [Builder] accumulates registrations; [Builder.Build] freezes it into
// a [Registry] that [Load] consults. This mirrors the
// register-then-freeze lifecycle of matchers/registry in the example
// pack, generalized from a panic-on-duplicate global to an
// error-returning, per-instance registry — construction-time
// configuration mistakes are something a caller of this library should
// be able to recover from, not something that crashes the process.
//
// Registration and loading are the only places in the library packages
// that log (the cmd/xuma CLI also logs at its own boundary): both accept
// a context so callers can attach request-scoped attributes
// (via [github.com/quay/xuma/xlog.With]) that flow into the structured,
// leveled diagnostics emitted here.
package registry

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/quay/xuma"
)

// InputFactory builds a [xuma.DataInput] from a raw configuration
// payload.
type InputFactory[Ctx any] func(raw json.RawMessage) (xuma.DataInput[Ctx], error)

// ValueFactory builds a [xuma.ValueMatcher] from a raw configuration
// payload. Value matchers are never parameterized by context, so one
// ValueFactory can be shared across registries built for different
// context types.
type ValueFactory func(raw json.RawMessage) (xuma.ValueMatcher, error)

// Builder accumulates type-URL registrations for one context type. The
// zero value is ready to use.
type Builder[Ctx any] struct {
	mu     sync.RWMutex
	inputs map[string]InputFactory[Ctx]
	values map[string]ValueFactory
	built  bool
}

// RegisterInput registers the factory for a data-input type URL.
//
// It reports [xuma.ErrRegistryFrozen] if called after [Builder.Build],
// and [xuma.ErrDuplicateTypeUrl] if typeURL was already registered on
// this builder.
func (b *Builder[Ctx]) RegisterInput(ctx context.Context, typeURL string, f InputFactory[Ctx]) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.built {
		slog.ErrorContext(ctx, "register input: registry already frozen", "type_url", typeURL)
		return &xuma.Error{Op: "Builder.RegisterInput", Kind: xuma.ErrRegistryFrozen, Message: typeURL}
	}
	if b.inputs == nil {
		b.inputs = make(map[string]InputFactory[Ctx])
	}
	if _, exists := b.inputs[typeURL]; exists {
		slog.ErrorContext(ctx, "register input: duplicate type URL", "type_url", typeURL)
		return &xuma.Error{Op: "Builder.RegisterInput", Kind: xuma.ErrDuplicateTypeUrl, Message: typeURL}
	}
	b.inputs[typeURL] = f
	slog.DebugContext(ctx, "registered data input", "type_url", typeURL)
	return nil
}

// RegisterValueMatcher registers the factory for a value-matcher type
// URL. Same error conditions as [Builder.RegisterInput].
func (b *Builder[Ctx]) RegisterValueMatcher(ctx context.Context, typeURL string, f ValueFactory) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.built {
		slog.ErrorContext(ctx, "register value matcher: registry already frozen", "type_url", typeURL)
		return &xuma.Error{Op: "Builder.RegisterValueMatcher", Kind: xuma.ErrRegistryFrozen, Message: typeURL}
	}
	if b.values == nil {
		b.values = make(map[string]ValueFactory)
	}
	if _, exists := b.values[typeURL]; exists {
		slog.ErrorContext(ctx, "register value matcher: duplicate type URL", "type_url", typeURL)
		return &xuma.Error{Op: "Builder.RegisterValueMatcher", Kind: xuma.ErrDuplicateTypeUrl, Message: typeURL}
	}
	b.values[typeURL] = f
	slog.DebugContext(ctx, "registered value matcher", "type_url", typeURL)
	return nil
}

// Build freezes the builder and returns the resulting [Registry].
// Further registrations on b report [xuma.ErrRegistryFrozen]; the
// returned Registry is immutable and safe for concurrent use.
func (b *Builder[Ctx]) Build(ctx context.Context) *Registry[Ctx] {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.built = true
	r := &Registry[Ctx]{
		inputs: make(map[string]InputFactory[Ctx], len(b.inputs)),
		values: make(map[string]ValueFactory, len(b.values)),
	}
	for k, v := range b.inputs {
		r.inputs[k] = v
	}
	for k, v := range b.values {
		r.values[k] = v
	}
	slog.InfoContext(ctx, "registry frozen", "inputs", len(r.inputs), "value_matchers", len(r.values))
	return r
}

// Registry is a frozen, read-only set of type-URL factories produced by
// [Builder.Build].
type Registry[Ctx any] struct {
	inputs map[string]InputFactory[Ctx]
	values map[string]ValueFactory
}

// Input looks up the input factory for typeURL. The bool return reports
// whether typeURL is registered.
func (r *Registry[Ctx]) Input(typeURL string) (InputFactory[Ctx], bool) {
	f, ok := r.inputs[typeURL]
	return f, ok
}

// ValueMatcher looks up the value-matcher factory for typeURL. The bool
// return reports whether typeURL is registered.
func (r *Registry[Ctx]) ValueMatcher(typeURL string) (ValueFactory, bool) {
	f, ok := r.values[typeURL]
	return f, ok
}
