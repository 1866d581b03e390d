package main

import (
	"context"
	"encoding/json"

	"github.com/quay/xuma"
	"github.com/quay/xuma/httpmatch"
	"github.com/quay/xuma/registry"
)

const (
	pathTypeURL   = "xuma.http.v1.PathInput"
	methodTypeURL = "xuma.http.v1.MethodInput"
	headerTypeURL = "xuma.http.v1.HeaderInput"
	queryTypeURL  = "xuma.http.v1.QueryInput"
)

// buildRegistry assembles the registry the eval/trace commands load
// configuration documents against: the built-in HTTP domain inputs, plus
// every Custom-value extension this module ships.
func buildRegistry(ctx context.Context) (*registry.Registry[httpmatch.Context], error) {
	var b registry.Builder[httpmatch.Context]

	if err := b.RegisterInput(ctx, pathTypeURL, func(json.RawMessage) (xuma.DataInput[httpmatch.Context], error) {
		return httpmatch.PathInput{}, nil
	}); err != nil {
		return nil, err
	}
	if err := b.RegisterInput(ctx, methodTypeURL, func(json.RawMessage) (xuma.DataInput[httpmatch.Context], error) {
		return httpmatch.MethodInput{}, nil
	}); err != nil {
		return nil, err
	}
	if err := b.RegisterInput(ctx, headerTypeURL, func(raw json.RawMessage) (xuma.DataInput[httpmatch.Context], error) {
		var cfg struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, &xuma.Error{Op: "buildRegistry", Kind: xuma.ErrInvalidConfig, Inner: err}
		}
		return httpmatch.HeaderInput{Name: cfg.Name}, nil
	}); err != nil {
		return nil, err
	}
	if err := b.RegisterInput(ctx, queryTypeURL, func(raw json.RawMessage) (xuma.DataInput[httpmatch.Context], error) {
		var cfg struct {
			Key string `json:"key"`
		}
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, &xuma.Error{Op: "buildRegistry", Kind: xuma.ErrInvalidConfig, Inner: err}
		}
		return httpmatch.QueryInput{Key: cfg.Key}, nil
	}); err != nil {
		return nil, err
	}

	if err := registry.RegisterVersionExtensions(ctx, &b); err != nil {
		return nil, err
	}

	return b.Build(ctx), nil
}
