// SPDX-License-Identifier: MIT

package props

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for property operations.
var (
	// ErrPropertyNotFound indicates Get found no value for the key on that subject.
	ErrPropertyNotFound = errors.New("props: property not found")

	// ErrUnsupportedValue indicates FromAny received a Go value outside the closed variant.
	ErrUnsupportedValue = errors.New("props: unsupported value type")

	// ErrKindMismatch indicates a typed accessor was used on a Value of another kind.
	ErrKindMismatch = errors.New("props: value kind mismatch")
)

// Kind enumerates the variants a Value can hold.
type Kind uint8

// Value kinds.
const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is an immutable tagged property value. The zero Value is KindInvalid.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

// String wraps s.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int wraps i.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps f.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool wraps b.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// FromAny converts a plain Go value into a Value.
// Accepted: string, bool, every signed/unsigned integer type that fits int64, float32, float64.
// Returns ErrUnsupportedValue otherwise.
func FromAny(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		return v, nil
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint:
		if uint64(v) > 1<<63-1 {
			return Value{}, fmt.Errorf("FromAny(%d): overflows int64: %w", v, ErrUnsupportedValue)
		}
		return Int(int64(v)), nil
	case uint64:
		if v > 1<<63-1 {
			return Value{}, fmt.Errorf("FromAny(%d): overflows int64: %w", v, ErrUnsupportedValue)
		}
		return Int(int64(v)), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	default:
		return Value{}, fmt.Errorf("FromAny(%T): %w", x, ErrUnsupportedValue)
	}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Interface returns the payload as a plain Go value (string, int64, float64, bool),
// or nil for an invalid Value.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// AsString returns the string payload or ErrKindMismatch.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("AsString on %s: %w", v.kind, ErrKindMismatch)
	}
	return v.s, nil
}

// AsInt returns the integer payload or ErrKindMismatch.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("AsInt on %s: %w", v.kind, ErrKindMismatch)
	}
	return v.i, nil
}

// AsFloat returns the float payload, widening integers; other kinds yield ErrKindMismatch.
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	default:
		return 0, fmt.Errorf("AsFloat on %s: %w", v.kind, ErrKindMismatch)
	}
}

// AsBool returns the boolean payload or ErrKindMismatch.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("AsBool on %s: %w", v.kind, ErrKindMismatch)
	}
	return v.b, nil
}

// Equal reports whether v and w hold the same kind and payload.
func (v Value) Equal(w Value) bool { return v == w }

// String renders the payload for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.s)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}

// Properties is a set of named values for one subject.
type Properties map[string]Value

// Clone returns an independent copy; a nil receiver yields an empty map.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}
