package oserr

import (
	"errors"
	"fmt"
	"syscall"
)

// FromKind creates an Error of the given Kind with no code and no fields.
// Values outside the enumeration are treated as KindOther.
//
// Example:
//
//	err := oserr.FromKind(oserr.KindNotFound)
//	fmt.Println(err) // {"error":"NotFound"}
func FromKind(k Kind) *Error {
	if int(k) >= len(kindNames) {
		k = KindOther
	}
	return &Error{kind: k}
}

// FromErrno creates an Error for an errno.
//
// The code is only stored when the errno has no specific Kind; otherwise the Kind
// alone recovers it and storing it would be redundant.
//
// Example:
//
//	oserr.FromErrno(oserr.ECONNRESET) // {"error":"ConnectionReset"}
//	oserr.FromErrno(oserr.EFAULT)     // {"error":"EFAULT"}
func FromErrno(e Errno) *Error {
	e = e.info().errno
	err := &Error{kind: e.Kind()}
	if err.kind == KindOther && e != EOTHER {
		err.fields.set(fieldOS, Int64Value(int64(e)))
	}
	return err
}

// FromCode creates an Error from a raw error number. Aliased codes are normalized
// and unknown codes produce a generic Error.
func FromCode(code int) *Error {
	return FromErrno(ErrnoFromCode(code))
}

// New creates an Error from a kind string.
//
// The string is resolved first as a Kind name ("NotFound"), then as an errno
// identifier ("EFAULT"). Anything else becomes a custom kind of KindOther that
// is reported verbatim by StrKind.
//
// Example:
//
//	const ErrFoo = "FOO"
//	err := oserr.New(ErrFoo)
//	if err.StrKind() == ErrFoo {
//	    // handle
//	}
func New(kind string) *Error {
	k, errno := resolve(kind)
	switch {
	case errno != EOTHER:
		return FromErrno(errno)
	case k != KindOther:
		return FromKind(k)
	case isOtherName(kind):
		return FromKind(KindOther)
	}

	e := &Error{kind: KindOther}
	e.fields.set(fieldError, StringValue(kind))
	return e
}

// NewWithMessage creates an Error from a kind string, as New does, and attaches a
// human-readable message.
func NewWithMessage(kind, message string) *Error {
	return New(kind).SetMessage(message)
}

// Newf creates an Error from a kind string with a formatted message.
//
// Example:
//
//	err := oserr.Newf("InvalidInput", "name too long: %d characters (max %d)", n, maxLen)
func Newf(kind, format string, args ...any) *Error {
	return NewWithMessage(kind, fmt.Sprintf(format, args...))
}

// FromError converts any error into an *Error.
//
// Behavior:
//   - nil input => nil output
//   - an *Error anywhere in the chain is returned as is (same pointer)
//   - a recognized syscall.Errno in the chain is converted with FromErrno
//   - otherwise the Kind is derived from well-known standard library errors and
//     the text of err is kept in the "message" field
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) && e != nil {
		return e
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if code := HostErrno(errno); code != EOTHER {
			return FromErrno(code)
		}
	}

	e = FromKind(classify(err))
	e.fields.set(fieldMessage, StringValue(err.Error()))
	return e
}

// invalidData builds the error returned for malformed wire input.
func invalidData(format string, args ...any) *Error {
	return FromKind(KindInvalidData).SetMessage(fmt.Sprintf(format, args...))
}
