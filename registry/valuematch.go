package registry

import (
	"github.com/quay/xuma"
	"github.com/quay/xuma/valuematch"
)

func buildValueMatcher[Ctx any](r *Registry[Ctx], cfg *ValueMatchConfig) (xuma.ValueMatcher, error) {
	switch {
	case cfg.Exact != nil:
		return valuematch.Exact{Literal: cfg.Exact.Literal, IgnoreCase: ignoreCase(cfg.Exact)}, nil
	case cfg.Prefix != nil:
		return valuematch.Prefix{Literal: cfg.Prefix.Literal, IgnoreCase: ignoreCase(cfg.Prefix)}, nil
	case cfg.Suffix != nil:
		return valuematch.Suffix{Literal: cfg.Suffix.Literal, IgnoreCase: ignoreCase(cfg.Suffix)}, nil
	case cfg.Contains != nil:
		return valuematch.Contains{Literal: cfg.Contains.Literal, IgnoreCase: ignoreCase(cfg.Contains)}, nil
	case cfg.Regex != nil:
		re, err := valuematch.NewRegex(*cfg.Regex)
		if err != nil {
			return nil, err
		}
		return re, nil
	case cfg.Bool != nil:
		return valuematch.Bool{Literal: *cfg.Bool}, nil
	default:
		f, ok := r.ValueMatcher(cfg.Custom.TypeURL)
		if !ok {
			return nil, &xuma.Error{Op: "registry.Load", Kind: xuma.ErrUnknownTypeUrl, Message: cfg.Custom.TypeURL}
		}
		m, err := f(cfg.Custom.Config)
		if err != nil {
			return nil, &xuma.Error{Op: "registry.Load", Kind: xuma.ErrInvalidConfig, Message: cfg.Custom.TypeURL, Inner: err}
		}
		return m, nil
	}
}

// ignoreCase defaults to false when unset: CaseSensitive==nil means
// "use the literal, case-sensitive comparison most users expect."
func ignoreCase(m *LiteralMatch) bool {
	return m.CaseSensitive != nil && !*m.CaseSensitive
}
