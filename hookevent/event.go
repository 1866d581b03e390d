// Package hookevent is a domain adapter binding [xuma] to tool-hook
// events: an arbitrary-record [Event] and the [xuma.DataInput]
// implementations that extract tool name, phase, and argument values
// from it.
package hookevent

import "github.com/quay/xuma"

// Event is one tool invocation hook: which tool, which lifecycle phase
// (e.g. "pre", "post"), and its arguments.
type Event struct {
	Tool  string
	Phase string
	Args  map[string]any
}

// ToolInput extracts the tool name.
type ToolInput struct{}

// Extract implements [xuma.DataInput].
func (ToolInput) Extract(e Event) xuma.Value {
	if e.Tool == "" {
		return xuma.Absent
	}
	return xuma.Str(e.Tool)
}

// PhaseInput extracts the lifecycle phase.
type PhaseInput struct{}

// Extract implements [xuma.DataInput].
func (PhaseInput) Extract(e Event) xuma.Value {
	if e.Phase == "" {
		return xuma.Absent
	}
	return xuma.Str(e.Phase)
}

// ArgInput extracts a single argument by key, converting it to the
// nearest [xuma.Value] kind. A missing key, or a value of a type none of
// Str/Int/Bool/Bytes fits, extracts [xuma.Absent] — it never panics.
type ArgInput struct {
	Key string
}

// Extract implements [xuma.DataInput].
func (a ArgInput) Extract(e Event) xuma.Value {
	v, ok := e.Args[a.Key]
	if !ok {
		return xuma.Absent
	}
	switch x := v.(type) {
	case string:
		return xuma.Str(x)
	case bool:
		return xuma.Bool(x)
	case int:
		return xuma.Int(int64(x))
	case int64:
		return xuma.Int(x)
	case float64:
		// Args typically arrive from decoded JSON, where every number
		// is a float64; accept integral ones rather than forcing every
		// caller to write json.Number configuration.
		if x == float64(int64(x)) {
			return xuma.Int(int64(x))
		}
		return xuma.Absent
	case []byte:
		return xuma.Bytes(x)
	default:
		return xuma.Absent
	}
}
