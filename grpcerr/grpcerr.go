// Package grpcerr converts between oserr errors and gRPC statuses.
//
// ToStatus picks a gRPC code from the error's Kind and Errno and attaches the
// wire fields as a google.protobuf.Struct detail. FromStatus reads that detail
// back, so an error survives a round trip through a gRPC boundary:
//
//	// server
//	if err != nil {
//	    return nil, grpcerr.Err(oserr.FromError(err))
//	}
//
//	// client
//	resp, err := client.Get(ctx, req)
//	if e := grpcerr.FromError(err); e != nil && e.Kind() == oserr.KindNotFound {
//	    // Handle not found
//	}
//
// Numbers travel as protobuf doubles. Integral values within the int64 range come
// back as I64; other numbers come back as F64.
package grpcerr

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jmgilman/go/oserr"
)

// fieldCode records the gRPC code of a status that carried no error detail.
const fieldCode = "grpc_code"

var kindCodes = map[oserr.Kind]codes.Code{
	oserr.KindNotFound:          codes.NotFound,
	oserr.KindPermissionDenied:  codes.PermissionDenied,
	oserr.KindAlreadyExists:     codes.AlreadyExists,
	oserr.KindInvalidInput:      codes.InvalidArgument,
	oserr.KindInvalidData:       codes.InvalidArgument,
	oserr.KindTimedOut:          codes.DeadlineExceeded,
	oserr.KindInterrupted:       codes.Canceled,
	oserr.KindUnsupported:       codes.Unimplemented,
	oserr.KindOutOfMemory:       codes.ResourceExhausted,
	oserr.KindConnectionRefused: codes.Unavailable,
	oserr.KindConnectionReset:   codes.Unavailable,
	oserr.KindConnectionAborted: codes.Unavailable,
	oserr.KindNotConnected:      codes.Unavailable,
	oserr.KindAddrInUse:         codes.Unavailable,
	oserr.KindAddrNotAvailable:  codes.Unavailable,
	oserr.KindBrokenPipe:        codes.Unavailable,
	oserr.KindWouldBlock:        codes.Unavailable,
}

// errnoCodes refines errnos that have no specific Kind.
var errnoCodes = map[oserr.Errno]codes.Code{
	oserr.ENOSPC:       codes.ResourceExhausted,
	oserr.EMFILE:       codes.ResourceExhausted,
	oserr.ENFILE:       codes.ResourceExhausted,
	oserr.ENOBUFS:      codes.ResourceExhausted,
	oserr.EFBIG:        codes.ResourceExhausted,
	oserr.ENOTEMPTY:    codes.FailedPrecondition,
	oserr.EBUSY:        codes.FailedPrecondition,
	oserr.ENOTDIR:      codes.FailedPrecondition,
	oserr.EISDIR:       codes.FailedPrecondition,
	oserr.EROFS:        codes.FailedPrecondition,
	oserr.EXDEV:        codes.FailedPrecondition,
	oserr.ERANGE:       codes.OutOfRange,
	oserr.EOVERFLOW:    codes.OutOfRange,
	oserr.ESPIPE:       codes.OutOfRange,
	oserr.ENAMETOOLONG: codes.InvalidArgument,
	oserr.E2BIG:        codes.InvalidArgument,
	oserr.EOPNOTSUPP:   codes.Unimplemented,
	oserr.ENETDOWN:     codes.Unavailable,
	oserr.ENETUNREACH:  codes.Unavailable,
	oserr.EHOSTDOWN:    codes.Unavailable,
	oserr.EHOSTUNREACH: codes.Unavailable,
}

var codeKinds = map[codes.Code]oserr.Kind{
	codes.NotFound:          oserr.KindNotFound,
	codes.PermissionDenied:  oserr.KindPermissionDenied,
	codes.Unauthenticated:   oserr.KindPermissionDenied,
	codes.AlreadyExists:     oserr.KindAlreadyExists,
	codes.InvalidArgument:   oserr.KindInvalidInput,
	codes.DeadlineExceeded:  oserr.KindTimedOut,
	codes.Canceled:          oserr.KindInterrupted,
	codes.Unimplemented:     oserr.KindUnsupported,
	codes.ResourceExhausted: oserr.KindOutOfMemory,
	codes.Unavailable:       oserr.KindNotConnected,
}

// Code returns the gRPC code for e. Returns codes.OK for a nil error and
// codes.Unknown when nothing more specific applies.
func Code(e *oserr.Error) codes.Code {
	if e == nil {
		return codes.OK
	}
	if c, ok := kindCodes[e.Kind()]; ok {
		return c
	}
	if c, ok := errnoCodes[e.Errno()]; ok {
		return c
	}
	return codes.Unknown
}

// ToStatus converts e into a gRPC status carrying its wire fields as a
// structpb.Struct detail. The status message is the "message" field when set,
// otherwise the string kind. Returns nil for a nil error.
func ToStatus(e *oserr.Error) *status.Status {
	if e == nil {
		return nil
	}

	msg, ok := e.Message()
	if !ok {
		msg = e.StrKind()
	}
	st := status.New(Code(e), msg)

	detail := &structpb.Struct{}
	if err := protojson.Unmarshal([]byte(e.Error()), detail); err != nil {
		return st
	}
	withDetail, err := st.WithDetails(protoadapt.MessageV1Of(detail))
	if err != nil {
		return st
	}
	return withDetail
}

// Err is ToStatus(e).Err(). Returns nil for a nil error.
func Err(e *oserr.Error) error {
	if e == nil {
		return nil
	}
	return ToStatus(e).Err()
}

// FromStatus converts a gRPC status into an *oserr.Error.
//
// Behavior:
//   - nil or OK status => nil
//   - a structpb.Struct detail is decoded with the usual wire rules
//   - otherwise the Kind is derived from the status code, the status message is
//     kept in the "message" field and the code name in "grpc_code"
func FromStatus(st *status.Status) *oserr.Error {
	if st == nil || st.Code() == codes.OK {
		return nil
	}

	for _, d := range st.Details() {
		detail, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		if e, err := decodeDetail(detail); err == nil {
			return e
		}
	}

	kind, ok := codeKinds[st.Code()]
	if !ok {
		kind = oserr.KindOther
	}
	return oserr.FromKind(kind).
		SetMessage(st.Message()).
		SetField(fieldCode, oserr.StringValue(st.Code().String()))
}

// FromError converts an error returned by a gRPC call into an *oserr.Error.
// An *oserr.Error already in the chain is returned as is; errors that carry no
// gRPC status fall back to oserr.FromError.
func FromError(err error) *oserr.Error {
	if err == nil {
		return nil
	}

	var e *oserr.Error
	if errors.As(err, &e) && e != nil {
		return e
	}

	if st, ok := status.FromError(err); ok {
		return FromStatus(st)
	}
	return oserr.FromError(err)
}

func decodeDetail(detail *structpb.Struct) (*oserr.Error, error) {
	b, err := protojson.Marshal(detail)
	if err != nil {
		return nil, err
	}
	return oserr.Parse(string(b))
}
