// Package httpmatch is a domain adapter binding [xuma] to incoming HTTP
// requests: a [Context] and the [xuma.DataInput] implementations that
// extract method, path, header, and query values from it.
package httpmatch

import (
	"net/http"
	"net/url"

	"github.com/quay/xuma"
)

// Context is the minimal view of an HTTP request the built-in inputs
// extract from. Callers populate it from *http.Request however suits
// their server (this package doesn't import the rest of net/http's
// request machinery to stay easy to construct in tests).
type Context struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
}

// MethodInput extracts the request method, e.g. "GET".
type MethodInput struct{}

// Extract implements [xuma.DataInput].
func (MethodInput) Extract(c Context) xuma.Value {
	if c.Method == "" {
		return xuma.Absent
	}
	return xuma.Str(c.Method)
}

// PathInput extracts the request path.
type PathInput struct{}

// Extract implements [xuma.DataInput].
func (PathInput) Extract(c Context) xuma.Value {
	if c.Path == "" {
		return xuma.Absent
	}
	return xuma.Str(c.Path)
}

// HeaderInput extracts a single header value by name. A request with no
// such header extracts [xuma.Absent], never the empty string.
type HeaderInput struct {
	Name string
}

// Extract implements [xuma.DataInput].
func (h HeaderInput) Extract(c Context) xuma.Value {
	if c.Header == nil {
		return xuma.Absent
	}
	v := c.Header.Get(h.Name)
	if v == "" {
		return xuma.Absent
	}
	return xuma.Str(v)
}

// QueryInput extracts a single query parameter by key from RawQuery. A
// missing key, or an unparsable query string, extracts [xuma.Absent].
type QueryInput struct {
	Key string
}

// Extract implements [xuma.DataInput].
func (q QueryInput) Extract(c Context) xuma.Value {
	vals, err := url.ParseQuery(c.RawQuery)
	if err != nil {
		return xuma.Absent
	}
	v := vals.Get(q.Key)
	if v == "" {
		return xuma.Absent
	}
	return xuma.Str(v)
}
