package oserr

import "errors"

// KindOf extracts the Kind from an error chain.
// Returns KindOther if err is nil or nothing in the chain is recognized.
//
// An *Error in the chain wins; otherwise a syscall.Errno or one of the standard
// library sentinels (fs.ErrNotExist, context.DeadlineExceeded, ...) decides.
//
// Example:
//
//	if oserr.KindOf(err) == oserr.KindNotFound {
//	    // Handle not found
//	}
func KindOf(err error) Kind {
	return classify(err)
}

// ErrnoOf extracts the Errno from an error chain.
// Returns EOTHER if err is nil or carries no recognizable error number.
func ErrnoOf(err error) Errno {
	if err == nil {
		return EOTHER
	}
	return FromError(err).Errno()
}

// StrKindOf extracts the string kind from an error chain.
// Returns "Other" if err is nil or not an *Error.
//
// Example:
//
//	switch oserr.StrKindOf(err) {
//	case "EFAULT":
//	    // Handle bad address
//	case ErrQuotaExceeded:
//	    // Handle custom kind
//	}
func StrKindOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.StrKind()
	}
	return KindOther.String()
}
