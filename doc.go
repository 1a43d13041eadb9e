// Package oserr provides a portable, serializable error value.
//
// An *Error combines a canonical category (Kind), an optional POSIX error number
// (Errno) and an ordered set of scalar metadata fields. It travels across process
// and language boundaries as a flat JSON object with a mandatory "error" key and
// comes back equal to what was sent.
//
// # Features
//
//   - Total mappings between raw error numbers, Errno values, "EXXXX" identifiers
//     and Kind, including alias normalization (EACCES, EAGAIN, EDEADLOCK)
//   - Custom string kinds for application-specific conditions
//   - Ordered scalar extension fields (null, bool, int64, uint64, float64, string)
//   - JSON and YAML wire encodings with the same rules in both directions
//   - Conversion of arbitrary Go errors (syscall.Errno, fs.ErrNotExist,
//     context.DeadlineExceeded, ...) via FromError
//   - Structured logging through zapcore.ObjectMarshaler
//   - gRPC status conversion in the grpcerr subpackage
//
// # Quick Start
//
// Creating errors:
//
//	// From a category
//	err := oserr.FromKind(oserr.KindNotFound)
//
//	// From a raw error number
//	err := oserr.FromCode(14) // {"error":"EFAULT"}
//
//	// From a string: kind name, errno identifier or custom kind
//	err := oserr.New("ConnectionReset")
//	err := oserr.New("EFAULT")
//	err := oserr.NewWithMessage("QuotaExceeded", "tenant over limit")
//
//	// From any Go error
//	f, ferr := os.Open(path)
//	if ferr != nil {
//	    return oserr.FromError(ferr)
//	}
//
// Adding fields:
//
//	err := oserr.New("ConnectionReset").
//	    SetField("peer", oserr.StringValue("10.0.0.7:443")).
//	    SetField("attempt", oserr.Int64Value(3))
//
// Wire form:
//
//	s := err.Error()
//	// {"error":"ConnectionReset","peer":"10.0.0.7:443","attempt":3}
//
//	back, perr := oserr.Parse(s)
//	if perr != nil {
//	    return perr
//	}
//	back.Equal(err) // true
//
// # Kinds and Error Numbers
//
// Sixteen Kinds have a representative Errno (KindNotFound and ENOENT,
// KindPermissionDenied and EPERM, ...). Every other Errno belongs to KindOther and
// is carried as its numeric code, so FromCode(14).Kind() is KindOther while
// FromCode(14).Errno() is still EFAULT. StrKind returns the most descriptive
// identifier: the custom string, the errno identifier or the Kind name.
//
// Aliased numbers collapse to one canonical value: FromCode(13) reports EPERM
// and FromCode(41) reports EWOULDBLOCK. The numbering follows Linux; on other
// platforms HostErrno translates syscall.Errno values by name.
//
// # Reserved Fields
//
// The names "error", "os", "source", "backtrace" and "message" are reserved.
// SetField panics when given one of them. Use SetMessage for the message.
//
// # Decoding Errors
//
// Parse, UnmarshalJSON and UnmarshalYAML report malformed input as an *Error of
// KindInvalidData whose message explains the problem:
//
//	_, err := oserr.Parse(`{"message":"hi"}`)
//	oserr.KindOf(err) // KindInvalidData
//
// # Standard Library Compatibility
//
// *Error implements error and supports errors.Is against other *Error values,
// syscall.Errno values and the standard library sentinels of its Kind:
//
//	if errors.Is(oserr.FromCode(2), fs.ErrNotExist) {
//	    // Handle not found
//	}
package oserr
