package xuma

// ValueKind discriminates the variants of [Value].
type ValueKind int

// The variants of [Value].
const (
	// KindAbsent means the field the [DataInput] looked for wasn't present
	// in the context. Every built-in value matcher reports false against it.
	KindAbsent ValueKind = iota
	KindStr
	KindInt
	KindBool
	KindBytes
	// KindCustom carries an opaque tag plus an arbitrary payload for
	// extension value matchers that understand that tag. See [Custom]
	// for the contract.
	KindCustom
)

// Value is the erased data type: the sole currency of value matchers.
//
// A Value is an immutable tagged union. The zero Value is [KindAbsent].
// Construct one with [Str], [Int], [Bool], [Bytes], or [Custom]; inspect
// it with [Value.Kind] and the typed accessors.
type Value struct {
	kind    ValueKind
	str     string
	i       int64
	b       bool
	bytes   []byte
	tag     string
	payload any
}

// Absent is the zero Value: no field was present.
var Absent = Value{}

// Str constructs a string Value.
func Str(s string) Value { return Value{kind: KindStr, str: s} }

// Int constructs an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Bytes constructs a byte-sequence Value. The slice is retained, not
// copied; callers must not mutate it afterward.
func Bytes(b []byte) Value { return Value{kind: KindBytes, bytes: b} }

// Custom constructs the open escape-hatch variant: an opaque tag plus an
// arbitrary payload. Built-in value matchers always report false against
// a Custom value; extension value matchers that recognize tag may match.
func Custom(tag string, payload any) Value {
	return Value{kind: KindCustom, tag: tag, payload: payload}
}

// Kind reports which variant v holds.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether v is the [KindAbsent] variant.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// AsStr returns the string payload and whether v is [KindStr].
func (v Value) AsStr() (string, bool) {
	if v.kind != KindStr {
		return "", false
	}
	return v.str, true
}

// AsInt returns the integer payload and whether v is [KindInt].
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// AsBool returns the boolean payload and whether v is [KindBool].
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsBytes returns the byte-sequence payload and whether v is [KindBytes].
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return v.bytes, true
}

// AsCustom returns the tag and payload and whether v is [KindCustom].
func (v Value) AsCustom() (tag string, payload any, ok bool) {
	if v.kind != KindCustom {
		return "", nil, false
	}
	return v.tag, v.payload, true
}

// Equal reports whether v and other hold the same kind and payload. Bytes
// are compared by content; Custom values are compared by tag only (payload
// equality is left to whichever extension matcher understands the tag).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindAbsent:
		return true
	case KindStr:
		return v.str == other.str
	case KindInt:
		return v.i == other.i
	case KindBool:
		return v.b == other.b
	case KindBytes:
		return string(v.bytes) == string(other.bytes)
	case KindCustom:
		return v.tag == other.tag
	default:
		return false
	}
}
