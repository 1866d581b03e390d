package registry

import (
	"context"
	"encoding/json"

	"github.com/quay/xuma"
	"github.com/quay/xuma/versionmatch"
)

// The type URLs for the built-in Custom-value extensions registered by
// [RegisterVersionExtensions].
const (
	SemverRangeTypeURL = "xuma.ext.v1.SemverRange"
	ApkVersionTypeURL  = "xuma.ext.v1.ApkVersionRange"
	DebVersionTypeURL  = "xuma.ext.v1.DebVersionRange"
	RpmVersionTypeURL  = "xuma.ext.v1.RpmVersionRange"
	PurlTypeTypeURL    = "xuma.ext.v1.PurlType"
)

type rangeConfig struct {
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

type semverConfig struct {
	Range string `json:"range"`
}

type purlTypeConfig struct {
	Type string `json:"type"`
}

// RegisterVersionExtensions registers the package's Custom-value
// extension matchers (package versionmatch) under their well-known type
// URLs. Callers assemble their own input registrations separately;
// version-range and purl-type matching don't depend on the context type,
// so this helper works for any Builder[Ctx].
func RegisterVersionExtensions[Ctx any](ctx context.Context, b *Builder[Ctx]) error {
	registrations := []struct {
		typeURL string
		factory ValueFactory
	}{
		{SemverRangeTypeURL, func(raw json.RawMessage) (xuma.ValueMatcher, error) {
			var cfg semverConfig
			if err := json.Unmarshal(raw, &cfg); err != nil {
				return nil, &xuma.Error{Op: "RegisterVersionExtensions", Kind: xuma.ErrInvalidConfig, Inner: err}
			}
			return versionmatch.NewSemverRange(cfg.Range)
		}},
		{ApkVersionTypeURL, func(raw json.RawMessage) (xuma.ValueMatcher, error) {
			var cfg rangeConfig
			if err := json.Unmarshal(raw, &cfg); err != nil {
				return nil, &xuma.Error{Op: "RegisterVersionExtensions", Kind: xuma.ErrInvalidConfig, Inner: err}
			}
			return versionmatch.ApkVersionRange{Min: cfg.Min, Max: cfg.Max}, nil
		}},
		{DebVersionTypeURL, func(raw json.RawMessage) (xuma.ValueMatcher, error) {
			var cfg rangeConfig
			if err := json.Unmarshal(raw, &cfg); err != nil {
				return nil, &xuma.Error{Op: "RegisterVersionExtensions", Kind: xuma.ErrInvalidConfig, Inner: err}
			}
			return versionmatch.DebVersionRange{Min: cfg.Min, Max: cfg.Max}, nil
		}},
		{RpmVersionTypeURL, func(raw json.RawMessage) (xuma.ValueMatcher, error) {
			var cfg rangeConfig
			if err := json.Unmarshal(raw, &cfg); err != nil {
				return nil, &xuma.Error{Op: "RegisterVersionExtensions", Kind: xuma.ErrInvalidConfig, Inner: err}
			}
			return versionmatch.RpmVersionRange{Min: cfg.Min, Max: cfg.Max}, nil
		}},
		{PurlTypeTypeURL, func(raw json.RawMessage) (xuma.ValueMatcher, error) {
			var cfg purlTypeConfig
			if err := json.Unmarshal(raw, &cfg); err != nil {
				return nil, &xuma.Error{Op: "RegisterVersionExtensions", Kind: xuma.ErrInvalidConfig, Inner: err}
			}
			return versionmatch.PurlType{Type: cfg.Type}, nil
		}},
	}
	for _, r := range registrations {
		if err := b.RegisterValueMatcher(ctx, r.typeURL, r.factory); err != nil {
			return err
		}
	}
	return nil
}
