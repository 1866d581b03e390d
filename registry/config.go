package registry

import (
	"encoding/json"
	"fmt"

	"github.com/quay/xuma"
)

// TypedConfig names a registered type URL and carries its
// type-URL-specific configuration payload, e.g.:
//
//	{"type_url": "xuma.http.v1.HeaderInput", "config": {"name": "X-Env"}}
type TypedConfig struct {
	TypeURL string          `json:"type_url"`
	Config  json.RawMessage `json:"config"`
}

// ValueMatchConfig is a discriminated union: exactly one field may be
// set. UnmarshalJSON enforces that.
type ValueMatchConfig struct {
	Exact    *LiteralMatch `json:"exact,omitempty"`
	Prefix   *LiteralMatch `json:"prefix,omitempty"`
	Suffix   *LiteralMatch `json:"suffix,omitempty"`
	Contains *LiteralMatch `json:"contains,omitempty"`
	Regex    *string       `json:"regex,omitempty"`
	Bool     *bool         `json:"bool,omitempty"`
	Custom   *TypedConfig  `json:"custom,omitempty"`
}

// LiteralMatch is the payload for exact/prefix/suffix/contains.
type LiteralMatch struct {
	Literal       string `json:"literal"`
	CaseSensitive *bool  `json:"case_sensitive,omitempty"` // nil means true
}

// UnmarshalJSON enforces that exactly one of ValueMatchConfig's fields is
// present in the document.
func (c *ValueMatchConfig) UnmarshalJSON(data []byte) error {
	type plain ValueMatchConfig
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return &xuma.Error{Op: "ValueMatchConfig.UnmarshalJSON", Kind: xuma.ErrInvalidConfig, Inner: err}
	}
	n := 0
	for _, set := range []bool{p.Exact != nil, p.Prefix != nil, p.Suffix != nil, p.Contains != nil, p.Regex != nil, p.Bool != nil, p.Custom != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return &xuma.Error{
			Op:      "ValueMatchConfig.UnmarshalJSON",
			Kind:    xuma.ErrInvalidConfig,
			Message: fmt.Sprintf("exactly one of exact/prefix/suffix/contains/regex/bool/custom must be set, got %d", n),
		}
	}
	*c = ValueMatchConfig(p)
	return nil
}

// PredicateConfig is a discriminated union mirroring [xuma.Predicate]'s
// four shapes: exactly one of Single/And/Or/Not is set.
type PredicateConfig struct {
	Single *SinglePredicateConfig `json:"single,omitempty"`
	And    []PredicateConfig      `json:"and,omitempty"`
	Or     []PredicateConfig      `json:"or,omitempty"`
	Not    *PredicateConfig       `json:"not,omitempty"`
}

// SinglePredicateConfig is the payload for a PredicateConfig.Single.
type SinglePredicateConfig struct {
	Input      TypedConfig      `json:"input"`
	ValueMatch ValueMatchConfig `json:"value_match"`
	Label      string           `json:"label,omitempty"`
}

// UnmarshalJSON enforces that exactly one of PredicateConfig's fields is
// present. And/Or are considered "set" even as an empty list, since
// spec.md assigns an empty And/Or a defined meaning (true/false) rather
// than treating it as absent.
func (c *PredicateConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &xuma.Error{Op: "PredicateConfig.UnmarshalJSON", Kind: xuma.ErrInvalidConfig, Inner: err}
	}
	if len(raw) != 1 {
		return &xuma.Error{
			Op:      "PredicateConfig.UnmarshalJSON",
			Kind:    xuma.ErrInvalidConfig,
			Message: fmt.Sprintf("exactly one of single/and/or/not must be set, got %d keys", len(raw)),
		}
	}
	for k := range raw {
		switch k {
		case "single", "and", "or", "not":
		default:
			return &xuma.Error{
				Op:      "PredicateConfig.UnmarshalJSON",
				Kind:    xuma.ErrInvalidConfig,
				Message: fmt.Sprintf("unknown predicate key %q, want one of single/and/or/not", k),
			}
		}
	}
	type plain PredicateConfig
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return &xuma.Error{Op: "PredicateConfig.UnmarshalJSON", Kind: xuma.ErrInvalidConfig, Inner: err}
	}
	*c = PredicateConfig(p)
	return nil
}

// OnMatchConfig[A] is a discriminated union mirroring [xuma.OnMatch]:
// exactly one of Action/Matcher is set.
type OnMatchConfig[A any] struct {
	Action  *A                `json:"action,omitempty"`
	Matcher *MatcherConfig[A] `json:"matcher,omitempty"`
}

// UnmarshalJSON enforces that exactly one of Action/Matcher is present.
func (c *OnMatchConfig[A]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &xuma.Error{Op: "OnMatchConfig.UnmarshalJSON", Kind: xuma.ErrInvalidConfig, Inner: err}
	}
	_, hasAction := raw["action"]
	_, hasMatcher := raw["matcher"]
	if hasAction == hasMatcher {
		return &xuma.Error{
			Op:      "OnMatchConfig.UnmarshalJSON",
			Kind:    xuma.ErrInvalidConfig,
			Message: "exactly one of action/matcher must be set",
		}
	}
	type plain OnMatchConfig[A]
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return &xuma.Error{Op: "OnMatchConfig.UnmarshalJSON", Kind: xuma.ErrInvalidConfig, Inner: err}
	}
	*c = OnMatchConfig[A](p)
	return nil
}

// FieldMatcherConfig is one rule: a predicate and what to do when it
// matches.
type FieldMatcherConfig[A any] struct {
	Predicate PredicateConfig  `json:"predicate"`
	OnMatch   OnMatchConfig[A] `json:"on_match"`
}

// MatcherConfig is the JSON document shape of one matcher-tree node, per
// spec.md §4.6: an ordered list of rules plus an optional fallback.
type MatcherConfig[A any] struct {
	Matchers  []FieldMatcherConfig[A] `json:"matchers"`
	OnNoMatch *OnMatchConfig[A]       `json:"on_no_match,omitempty"`
}
