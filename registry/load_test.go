package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/quay/xuma"
)

type testCtx struct {
	field string
}

const fieldTypeURL = "xuma.test.v1.Field"

func newTestRegistry(t *testing.T) *Registry[testCtx] {
	t.Helper()
	var b Builder[testCtx]
	err := b.RegisterInput(context.Background(), fieldTypeURL, func(json.RawMessage) (xuma.DataInput[testCtx], error) {
		return xuma.InputFunc[testCtx](func(c testCtx) xuma.Value {
			if c.field == "" {
				return xuma.Absent
			}
			return xuma.Str(c.field)
		}), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return b.Build(context.Background())
}

func TestLoadRoundTrip(t *testing.T) {
	r := newTestRegistry(t)
	doc := fmt.Sprintf(`{
		"matchers": [
			{
				"predicate": {"single": {"input": {"type_url": %q}, "value_match": {"exact": {"literal": "a"}}}},
				"on_match": {"action": "matched-a"}
			}
		],
		"on_no_match": {"action": "fallback"}
	}`, fieldTypeURL)

	m, err := Load[testCtx, string](context.Background(), r, []byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := m.Evaluate(testCtx{field: "a"}); !ok || got != "matched-a" {
		t.Errorf("Evaluate(a) = (%q, %v), want (\"matched-a\", true)", got, ok)
	}
	if got, ok := m.Evaluate(testCtx{field: "b"}); !ok || got != "fallback" {
		t.Errorf("Evaluate(b) = (%q, %v), want (\"fallback\", true)", got, ok)
	}
}

func TestLoadUnknownTypeURL(t *testing.T) {
	r := newTestRegistry(t)
	doc := `{
		"matchers": [
			{
				"predicate": {"single": {"input": {"type_url": "xuma.test.v1.Nope"}, "value_match": {"exact": {"literal": "a"}}}},
				"on_match": {"action": "x"}
			}
		]
	}`
	_, err := Load[testCtx, string](context.Background(), r, []byte(doc))
	if !errors.Is(err, xuma.ErrUnknownTypeUrl) {
		t.Errorf("got %v, want errors.Is(err, ErrUnknownTypeUrl)", err)
	}
}

func TestLoadDepthRejection(t *testing.T) {
	r := newTestRegistry(t)

	// Build a document nested one level past MaxDepth.
	inner := `{"action": "leaf"}`
	for range xuma.MaxDepth + 1 {
		inner = fmt.Sprintf(`{"matcher": {"matchers": [{"predicate": {"single": {"input": {"type_url": %q}, "value_match": {"exact": {"literal": "a"}}}}, "on_match": %s}]}}`, fieldTypeURL, inner)
	}
	doc := fmt.Sprintf(`{"matchers": [], "on_no_match": %s}`, inner)

	_, err := Load[testCtx, string](context.Background(), r, []byte(doc))
	if !errors.Is(err, xuma.ErrDepthExceeded) {
		t.Errorf("got %v, want errors.Is(err, ErrDepthExceeded)", err)
	}
}

func TestBuilderFrozenAfterBuild(t *testing.T) {
	var b Builder[testCtx]
	b.Build(context.Background())
	err := b.RegisterInput(context.Background(), fieldTypeURL, func(json.RawMessage) (xuma.DataInput[testCtx], error) {
		return nil, nil
	})
	if !errors.Is(err, xuma.ErrRegistryFrozen) {
		t.Errorf("got %v, want errors.Is(err, ErrRegistryFrozen)", err)
	}
}

func TestBuilderDuplicateTypeURL(t *testing.T) {
	var b Builder[testCtx]
	f := func(json.RawMessage) (xuma.DataInput[testCtx], error) { return nil, nil }
	if err := b.RegisterInput(context.Background(), fieldTypeURL, f); err != nil {
		t.Fatal(err)
	}
	err := b.RegisterInput(context.Background(), fieldTypeURL, f)
	if !errors.Is(err, xuma.ErrDuplicateTypeUrl) {
		t.Errorf("got %v, want errors.Is(err, ErrDuplicateTypeUrl)", err)
	}
}
