package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quay/xuma/httpmatch"
)

func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("method", "GET", "HTTP method of the simulated request")
	cmd.Flags().String("path", "/", "HTTP path of the simulated request")
	cmd.Flags().StringSlice("header", nil, "request header as name=value, repeatable")
	cmd.Flags().StringSlice("query", nil, "query parameter as key=value, repeatable")
}

func buildContext(cmd *cobra.Command) (httpmatch.Context, error) {
	method, err := cmd.Flags().GetString("method")
	if err != nil {
		return httpmatch.Context{}, err
	}
	path, err := cmd.Flags().GetString("path")
	if err != nil {
		return httpmatch.Context{}, err
	}
	headers, err := cmd.Flags().GetStringSlice("header")
	if err != nil {
		return httpmatch.Context{}, err
	}
	queries, err := cmd.Flags().GetStringSlice("query")
	if err != nil {
		return httpmatch.Context{}, err
	}

	hdr := http.Header{}
	for _, h := range headers {
		name, value, ok := strings.Cut(h, "=")
		if !ok {
			return httpmatch.Context{}, fmt.Errorf("malformed --header %q, want name=value", h)
		}
		hdr.Add(name, value)
	}

	q := url.Values{}
	for _, kv := range queries {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return httpmatch.Context{}, fmt.Errorf("malformed --query %q, want key=value", kv)
		}
		q.Add(key, value)
	}

	return httpmatch.Context{
		Method:   method,
		Path:     path,
		RawQuery: q.Encode(),
		Header:   hdr,
	}, nil
}
