package registry

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/quay/xuma"
)

// Load parses a JSON matcher-tree document and builds a *[xuma.Matcher]
// against the factories known to r.
//
// Load validates the tree's nesting depth against [xuma.MaxDepth] before
// constructing anything — per spec.md §4.5, a too-deep document is
// rejected without compiling a single regex or instantiating a single
// input, not partway through.
//
// Load logs the document size and computed nesting depth through
// log/slog using ctx; pass a ctx carrying xlog-attached attributes
// (such as a document path or request ID) to have them appear on every
// line Load emits.
func Load[Ctx, A any](ctx context.Context, r *Registry[Ctx], data []byte) (*xuma.Matcher[Ctx, A], error) {
	slog.DebugContext(ctx, "loading matcher document", "bytes", len(data))
	var cfg MatcherConfig[A]
	if err := json.Unmarshal(data, &cfg); err != nil {
		slog.ErrorContext(ctx, "load: invalid document", "error", err)
		return nil, &xuma.Error{Op: "registry.Load", Kind: xuma.ErrInvalidConfig, Inner: err}
	}
	depth := configDepth(&cfg)
	slog.DebugContext(ctx, "computed matcher nesting depth", "depth", depth, "max_depth", xuma.MaxDepth)
	if depth > xuma.MaxDepth {
		slog.ErrorContext(ctx, "load: nesting depth exceeded", "depth", depth, "max_depth", xuma.MaxDepth)
		return nil, &xuma.Error{Op: "registry.Load", Kind: xuma.ErrDepthExceeded, Message: "matcher nesting exceeds maximum depth"}
	}
	m, err := buildMatcher[Ctx, A](r, &cfg)
	if err != nil {
		slog.ErrorContext(ctx, "load: building matcher failed", "error", err)
		return nil, err
	}
	slog.InfoContext(ctx, "matcher document loaded", "rules", len(cfg.Matchers))
	return m, nil
}

func configDepth[A any](cfg *MatcherConfig[A]) int {
	depth := 0
	for _, fm := range cfg.Matchers {
		if d := onMatchDepth(&fm.OnMatch); d > depth {
			depth = d
		}
	}
	if cfg.OnNoMatch != nil {
		if d := onMatchDepth(cfg.OnNoMatch); d > depth {
			depth = d
		}
	}
	return depth
}

func onMatchDepth[A any](o *OnMatchConfig[A]) int {
	if o.Matcher == nil {
		return 0
	}
	return 1 + configDepth(o.Matcher)
}

func buildMatcher[Ctx, A any](r *Registry[Ctx], cfg *MatcherConfig[A]) (*xuma.Matcher[Ctx, A], error) {
	rules := make([]xuma.FieldMatcher[Ctx, A], 0, len(cfg.Matchers))
	for _, fm := range cfg.Matchers {
		pred, err := buildPredicate[Ctx](r, &fm.Predicate)
		if err != nil {
			return nil, err
		}
		onMatch, err := buildOnMatch[Ctx, A](r, &fm.OnMatch)
		if err != nil {
			return nil, err
		}
		rules = append(rules, xuma.FieldMatcher[Ctx, A]{Predicate: pred, OnMatch: onMatch})
	}
	var onNoMatch *xuma.OnMatch[Ctx, A]
	if cfg.OnNoMatch != nil {
		o, err := buildOnMatch[Ctx, A](r, cfg.OnNoMatch)
		if err != nil {
			return nil, err
		}
		onNoMatch = &o
	}
	return xuma.NewMatcher(rules, onNoMatch)
}

func buildOnMatch[Ctx, A any](r *Registry[Ctx], cfg *OnMatchConfig[A]) (xuma.OnMatch[Ctx, A], error) {
	if cfg.Matcher != nil {
		m, err := buildMatcher[Ctx, A](r, cfg.Matcher)
		if err != nil {
			return xuma.OnMatch[Ctx, A]{}, err
		}
		return xuma.OnNested[Ctx, A](m), nil
	}
	return xuma.OnAction[Ctx, A](*cfg.Action), nil
}

func buildPredicate[Ctx any](r *Registry[Ctx], cfg *PredicateConfig) (xuma.Predicate[Ctx], error) {
	switch {
	case cfg.Single != nil:
		return buildSingle[Ctx](r, cfg.Single)
	case cfg.Not != nil:
		child, err := buildPredicate[Ctx](r, cfg.Not)
		if err != nil {
			return nil, err
		}
		return xuma.Not[Ctx](child), nil
	case cfg.And != nil:
		children, err := buildPredicates[Ctx](r, cfg.And)
		if err != nil {
			return nil, err
		}
		return xuma.And[Ctx](children...), nil
	default:
		children, err := buildPredicates[Ctx](r, cfg.Or)
		if err != nil {
			return nil, err
		}
		return xuma.Or[Ctx](children...), nil
	}
}

func buildPredicates[Ctx any](r *Registry[Ctx], cfgs []PredicateConfig) ([]xuma.Predicate[Ctx], error) {
	out := make([]xuma.Predicate[Ctx], 0, len(cfgs))
	for i := range cfgs {
		p, err := buildPredicate[Ctx](r, &cfgs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func buildSingle[Ctx any](r *Registry[Ctx], cfg *SinglePredicateConfig) (xuma.Predicate[Ctx], error) {
	inputFactory, ok := r.Input(cfg.Input.TypeURL)
	if !ok {
		return nil, &xuma.Error{Op: "registry.Load", Kind: xuma.ErrUnknownTypeUrl, Message: cfg.Input.TypeURL}
	}
	input, err := inputFactory(cfg.Input.Config)
	if err != nil {
		return nil, &xuma.Error{Op: "registry.Load", Kind: xuma.ErrInvalidConfig, Message: cfg.Input.TypeURL, Inner: err}
	}
	matcher, err := buildValueMatcher(r, &cfg.ValueMatch)
	if err != nil {
		return nil, err
	}
	return xuma.Single[Ctx](input, matcher, cfg.Label), nil
}
