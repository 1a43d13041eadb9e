package oserr

import (
	"fmt"
	"iter"
	"syscall"
)

// Error is a serializable error value combining a Kind, an optional Errno and an
// ordered set of scalar extension fields.
//
// The string kind and the numeric code are kept in the field map under the
// reserved names "error" and "os". After construction only extension fields may
// change; the kind never does.
//
// Error is plain owned data. It is safe to read from several goroutines, but
// SetField and SetMessage must not race with other access to the same value.
type Error struct {
	kind   Kind
	fields fieldMap
}

var _ error = (*Error)(nil)

// Kind returns the category of e.
func (e *Error) Kind() Kind {
	if e == nil {
		return KindOther
	}
	return e.kind
}

// Errno returns the errno of e.
//
// A stored code wins; otherwise the errno is derived from the Kind, which yields
// EOTHER for kinds without a representative errno.
func (e *Error) Errno() Errno {
	if e == nil {
		return EOTHER
	}
	if code, ok := e.osCode(); ok {
		return ErrnoFromCode(code)
	}
	return e.kind.Errno()
}

// StrKind returns the most descriptive identifier for e: the custom kind string
// if one was given, else the errno identifier if a code is stored, else the
// Kind name.
//
// Example:
//
//	oserr.FromCode(14).StrKind()                 // "EFAULT"
//	oserr.New("CustomMsg").StrKind()             // "CustomMsg"
//	oserr.FromKind(oserr.KindNotFound).StrKind() // "NotFound"
func (e *Error) StrKind() string {
	if e == nil {
		return KindOther.String()
	}
	if s, ok := e.fields.get(fieldError); ok {
		if str, ok := s.AsString(); ok {
			return str
		}
	}
	if code, ok := e.osCode(); ok {
		return ErrnoFromCode(code).String()
	}
	return e.kind.String()
}

// wireKind is the value written under the "error" key. A stored code takes
// precedence over a leftover custom string unless the code is unrecognized.
func (e *Error) wireKind() string {
	custom, hasCustom := "", false
	if v, ok := e.fields.get(fieldError); ok {
		custom, hasCustom = v.AsString()
	}

	if code, ok := e.osCode(); ok {
		errno := ErrnoFromCode(code)
		if errno == EOTHER && hasCustom {
			return custom
		}
		return errno.String()
	}
	if e.kind == KindOther && hasCustom {
		return custom
	}
	return e.kind.String()
}

func (e *Error) osCode() (int, bool) {
	v, ok := e.fields.get(fieldOS)
	if !ok {
		return 0, false
	}
	return valueCode(v)
}

// valueCode extracts an errno number from an I64 or U64 value.
func valueCode(v Value) (int, bool) {
	if i, ok := v.AsInt64(); ok {
		return int(i), true
	}
	if u, ok := v.AsUint64(); ok && u <= uint64(^uint32(0)>>1) {
		return int(u), true
	}
	return 0, false
}

// Field returns the extension field called name.
// The structural "error" and "os" entries are not visible through Field; use
// StrKind and Errno instead.
func (e *Error) Field(name string) (Value, bool) {
	if e == nil || isStructural(name) {
		return Value{}, false
	}
	return e.fields.get(name)
}

// StringField returns the field called name if it holds a string.
func (e *Error) StringField(name string) (string, bool) {
	v, ok := e.Field(name)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Int64Field returns the field called name if it holds an I64.
func (e *Error) Int64Field(name string) (int64, bool) {
	v, ok := e.Field(name)
	if !ok {
		return 0, false
	}
	return v.AsInt64()
}

// Uint64Field returns the field called name if it holds a U64.
func (e *Error) Uint64Field(name string) (uint64, bool) {
	v, ok := e.Field(name)
	if !ok {
		return 0, false
	}
	return v.AsUint64()
}

// Float64Field returns the field called name if it holds an F64.
func (e *Error) Float64Field(name string) (float64, bool) {
	v, ok := e.Field(name)
	if !ok {
		return 0, false
	}
	return v.AsFloat64()
}

// BoolField returns the field called name if it holds a Bool.
func (e *Error) BoolField(name string) (bool, bool) {
	v, ok := e.Field(name)
	if !ok {
		return false, false
	}
	return v.AsBool()
}

// Message returns the human-readable message attached to e, if any.
func (e *Error) Message() (string, bool) {
	return e.StringField(fieldMessage)
}

// SetField inserts or overwrites an extension field and returns e for chaining.
// Existing fields keep their position; new fields are appended.
//
// SetField panics if name is one of the reserved names "error", "os", "source",
// "backtrace" or "message". Writing them is a programming error, not a runtime
// condition.
//
// Example:
//
//	err := oserr.FromKind(oserr.KindNotFound).
//	    SetField("path", oserr.StringValue("/etc/app.yaml")).
//	    SetField("attempt", oserr.Int64Value(3))
func (e *Error) SetField(name string, v Value) *Error {
	if isReserved(name) {
		panic(fmt.Sprintf("oserr: field name %q is reserved", name))
	}
	e.fields.set(name, v)
	return e
}

// SetMessage sets the conventional "message" field and returns e for chaining.
func (e *Error) SetMessage(msg string) *Error {
	e.fields.set(fieldMessage, StringValue(msg))
	return e
}

// All iterates over the extension fields of e in insertion order.
func (e *Error) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if e == nil {
			return
		}
		for _, f := range e.fields.entries {
			if isStructural(f.name) {
				continue
			}
			if !yield(f.name, f.value) {
				return
			}
		}
	}
}

// Len returns the number of extension fields on e.
func (e *Error) Len() int {
	if e == nil {
		return 0
	}
	return e.fields.extensionLen()
}

// Clone returns a deep copy of e. Changes to the copy never affect e.
func (e *Error) Clone() *Error {
	if e == nil {
		return nil
	}
	return &Error{kind: e.kind, fields: e.fields.clone()}
}

// Equal reports whether e and o have the same StrKind and the same extension
// fields. The Kind is derived from the StrKind and is not compared separately.
// Field order does not matter.
func (e *Error) Equal(o *Error) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.StrKind() != o.StrKind() {
		return false
	}
	return e.fields.equalExtensions(&o.fields)
}

// Is supports errors.Is.
//
// An Error matches another *Error with the same StrKind, a syscall.Errno that
// translates to the same Errno, and the standard library sentinels for its Kind
// (fs.ErrNotExist for KindNotFound, context.DeadlineExceeded for KindTimedOut, ...).
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch t := target.(type) {
	case *Error:
		return t != nil && e.StrKind() == t.StrKind()
	case syscall.Errno:
		errno := e.Errno()
		return errno != EOTHER && errno == HostErrno(t)
	}
	return matchesSentinel(e.kind, target)
}
