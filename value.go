package oserr

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// ValueKind identifies which variant a Value holds.
type ValueKind uint8

const (
	// ValueNull is the empty value.
	ValueNull ValueKind = iota

	// ValueBool holds a bool.
	ValueBool

	// ValueI64 holds a signed 64-bit integer.
	ValueI64

	// ValueU64 holds an unsigned 64-bit integer.
	ValueU64

	// ValueF64 holds a 64-bit float.
	ValueF64

	// ValueString holds a string.
	ValueString
)

var valueKindNames = [...]string{
	ValueNull:   "null",
	ValueBool:   "bool",
	ValueI64:    "i64",
	ValueU64:    "u64",
	ValueF64:    "f64",
	ValueString: "string",
}

// String returns the lowercase name of the variant.
func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "ValueKind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single scalar datum stored as an extension field on an Error.
//
// Value is immutable and comparable: two Values are equal with == when they hold
// the same variant and the same payload. There is no numeric coercion, so
// Int64Value(1) != Uint64Value(1).
//
// The zero Value is Null.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
}

// NullValue returns the Null value.
func NullValue() Value { return Value{} }

// BoolValue returns a Bool value.
func BoolValue(b bool) Value { return Value{kind: ValueBool, b: b} }

// Int64Value returns an I64 value.
func Int64Value(i int64) Value { return Value{kind: ValueI64, i: i} }

// Uint64Value returns a U64 value.
func Uint64Value(u uint64) Value { return Value{kind: ValueU64, u: u} }

// Float64Value returns an F64 value.
func Float64Value(f float64) Value { return Value{kind: ValueF64, f: f} }

// StringValue returns a String value.
func StringValue(s string) Value { return Value{kind: ValueString, s: s} }

// ValueOf converts a Go builtin scalar into a Value.
//
// Signed integers of any width become I64, unsigned integers become U64, float32 and
// float64 become F64, and nil becomes Null. A Value is returned unchanged. The second
// result is false for any other type.
//
// Example:
//
//	v, ok := oserr.ValueOf(42) // Int64Value(42), true
func ValueOf(x any) (Value, bool) {
	switch t := x.(type) {
	case nil:
		return NullValue(), true
	case Value:
		return t, true
	case bool:
		return BoolValue(t), true
	case string:
		return StringValue(t), true
	case float32:
		return Float64Value(float64(t)), true
	case float64:
		return Float64Value(t), true
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int64Value(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint64Value(rv.Uint()), true
	default:
		return Value{}, false
	}
}

// Kind returns the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == ValueNull }

// AsBool returns the bool held by v. ok is false for any other variant.
func (v Value) AsBool() (b bool, ok bool) { return v.b, v.kind == ValueBool }

// AsInt64 returns the int64 held by v. ok is false for any other variant, including U64.
func (v Value) AsInt64() (i int64, ok bool) { return v.i, v.kind == ValueI64 }

// AsUint64 returns the uint64 held by v. ok is false for any other variant, including I64.
func (v Value) AsUint64() (u uint64, ok bool) { return v.u, v.kind == ValueU64 }

// AsFloat64 returns the float64 held by v. ok is false for any other variant.
func (v Value) AsFloat64() (f float64, ok bool) { return v.f, v.kind == ValueF64 }

// AsString returns the string held by v. ok is false for any other variant.
func (v Value) AsString() (s string, ok bool) { return v.s, v.kind == ValueString }

// Interface returns the payload as a Go value: nil, bool, int64, uint64, float64 or string.
func (v Value) Interface() any {
	switch v.kind {
	case ValueBool:
		return v.b
	case ValueI64:
		return v.i
	case ValueU64:
		return v.u
	case ValueF64:
		return v.f
	case ValueString:
		return v.s
	default:
		return nil
	}
}

// String renders v the same way it appears on the wire.
func (v Value) String() string {
	b, _ := v.MarshalJSON()
	return string(b)
}

// MarshalJSON implements json.Marshaler.
//
// Floats always carry a fraction or an exponent so they decode back as F64.
// NaN and infinities have no JSON form and encode as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueBool:
		return strconv.AppendBool(nil, v.b), nil
	case ValueI64:
		return strconv.AppendInt(nil, v.i, 10), nil
	case ValueU64:
		return strconv.AppendUint(nil, v.u, 10), nil
	case ValueF64:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return []byte("null"), nil
		}
		return []byte(formatFloat(v.f)), nil
	case ValueString:
		var buf bytes.Buffer
		if err := writeJSONString(&buf, v.s); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return []byte("null"), nil
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'e', 'E', 'n', 'N', 'I':
			return s
		}
	}
	return s + ".0"
}

// parseNumber converts a JSON number literal into I64, U64 or F64.
// Integers that fit in int64 decode as I64, larger non-negative integers that fit
// in uint64 as U64 and anything bigger as F64.
func parseNumber(lit string) (Value, error) {
	for i := 0; i < len(lit); i++ {
		switch lit[i] {
		case '.', 'e', 'E':
			f, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return Value{}, fmt.Errorf("invalid number %q: %w", lit, err)
			}
			return Float64Value(f), nil
		}
	}

	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return Int64Value(i), nil
	}
	if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
		return Uint64Value(u), nil
	}

	// Integers beyond the 64-bit range degrade to F64.
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q: %w", lit, err)
	}
	return Float64Value(f), nil
}
