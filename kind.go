package oserr

import "strconv"

// Kind is a coarse category of failure.
//
// Kind is the generic classification every Error carries. Only a small number of
// Errno values map onto a specific Kind; everything else is KindOther, the zero value.
type Kind uint8

const (
	// KindOther is the generic, unclassified category.
	KindOther Kind = iota

	// KindNotFound indicates an entity was not found.
	KindNotFound

	// KindPermissionDenied indicates the operation lacked the necessary privileges.
	KindPermissionDenied

	// KindConnectionRefused indicates the remote peer refused the connection.
	KindConnectionRefused

	// KindConnectionReset indicates the remote peer reset the connection.
	KindConnectionReset

	// KindConnectionAborted indicates the connection was aborted by the remote peer.
	KindConnectionAborted

	// KindNotConnected indicates the operation failed because there is no connection.
	KindNotConnected

	// KindAddrInUse indicates a socket address is already in use.
	KindAddrInUse

	// KindAddrNotAvailable indicates a nonexistent or non-local address was requested.
	KindAddrNotAvailable

	// KindBrokenPipe indicates the other end of a pipe was closed.
	KindBrokenPipe

	// KindAlreadyExists indicates an entity already exists.
	KindAlreadyExists

	// KindWouldBlock indicates the operation needs to block to complete.
	KindWouldBlock

	// KindInvalidInput indicates a parameter was incorrect.
	KindInvalidInput

	// KindInvalidData indicates data was not valid for the operation.
	KindInvalidData

	// KindTimedOut indicates an operation ran out of time.
	KindTimedOut

	// KindWriteZero indicates a write returned zero bytes written.
	KindWriteZero

	// KindInterrupted indicates the operation was interrupted.
	KindInterrupted

	// KindUnexpectedEOF indicates the input ended before it was complete.
	KindUnexpectedEOF

	// KindUnsupported indicates the operation is not supported on this platform.
	KindUnsupported

	// KindOutOfMemory indicates a memory allocation failed.
	KindOutOfMemory
)

var kindNames = [...]string{
	KindOther:             "Other",
	KindNotFound:          "NotFound",
	KindPermissionDenied:  "PermissionDenied",
	KindConnectionRefused: "ConnectionRefused",
	KindConnectionReset:   "ConnectionReset",
	KindConnectionAborted: "ConnectionAborted",
	KindNotConnected:      "NotConnected",
	KindAddrInUse:         "AddrInUse",
	KindAddrNotAvailable:  "AddrNotAvailable",
	KindBrokenPipe:        "BrokenPipe",
	KindAlreadyExists:     "AlreadyExists",
	KindWouldBlock:        "WouldBlock",
	KindInvalidInput:      "InvalidInput",
	KindInvalidData:       "InvalidData",
	KindTimedOut:          "TimedOut",
	KindWriteZero:         "WriteZero",
	KindInterrupted:       "Interrupted",
	KindUnexpectedEOF:     "UnexpectedEof",
	KindUnsupported:       "Unsupported",
	KindOutOfMemory:       "OutOfMemory",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// KindFromString parses a canonical kind name such as "NotFound".
// Unrecognized names yield KindOther.
func KindFromString(s string) Kind {
	return kindByName[s]
}

// Kinds returns every Kind, KindOther first.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// String returns the canonical name of k. Values outside the enumeration render as
// "Kind(n)".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode as KindOther.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = KindFromString(string(text))
	return nil
}
