package oserr

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net"
	"os"
	"syscall"
)

// errnoKinds maps the errno values that have a specific Kind.
// Every Errno not listed here belongs to KindOther.
var errnoKinds = map[Errno]Kind{
	EADDRINUSE:    KindAddrInUse,
	EADDRNOTAVAIL: KindAddrNotAvailable,
	ECONNABORTED:  KindConnectionAborted,
	ECONNREFUSED:  KindConnectionRefused,
	ECONNRESET:    KindConnectionReset,
	EPERM:         KindPermissionDenied,
	EEXIST:        KindAlreadyExists,
	EINTR:         KindInterrupted,
	EINVAL:        KindInvalidInput,
	ENOENT:        KindNotFound,
	ENOMEM:        KindOutOfMemory,
	ENOSYS:        KindUnsupported,
	ENOTCONN:      KindNotConnected,
	EPIPE:         KindBrokenPipe,
	EWOULDBLOCK:   KindWouldBlock,
	ETIMEDOUT:     KindTimedOut,
}

// kindErrnos is the inverse of errnoKinds.
var kindErrnos = func() map[Kind]Errno {
	m := make(map[Kind]Errno, len(errnoKinds))
	for e, k := range errnoKinds {
		m[k] = e
	}
	return m
}()

// Kind returns the category e belongs to. Most values are KindOther.
func (e Errno) Kind() Kind {
	if k, ok := errnoKinds[e]; ok {
		return k
	}
	return KindOther
}

// Errno returns the representative Errno for k, or EOTHER when k has none
// (KindOther, KindInvalidData, KindWriteZero, KindUnexpectedEOF).
func (k Kind) Errno() Errno {
	if e, ok := kindErrnos[k]; ok {
		return e
	}
	return EOTHER
}

// isOtherName reports whether s is one of the placeholder names for the
// unclassified condition.
func isOtherName(s string) bool {
	return s == kindNames[KindOther] || s == otherInfo.name
}

// resolve interprets s first as a kind name and then as an errno identifier.
// An EOTHER result means s names no errno.
func resolve(s string) (Kind, Errno) {
	if k := KindFromString(s); k != KindOther {
		return k, EOTHER
	}
	return KindOther, ErrnoFromString(s)
}

// sentinelKinds lists the standard library errors recognized by classify, in the
// order they are tested.
var sentinelKinds = []struct {
	err  error
	kind Kind
}{
	{fs.ErrNotExist, KindNotFound},
	{fs.ErrPermission, KindPermissionDenied},
	{fs.ErrExist, KindAlreadyExists},
	{fs.ErrInvalid, KindInvalidInput},
	{os.ErrDeadlineExceeded, KindTimedOut},
	{context.DeadlineExceeded, KindTimedOut},
	{context.Canceled, KindInterrupted},
	{io.ErrUnexpectedEOF, KindUnexpectedEOF},
	{io.ErrShortWrite, KindWriteZero},
	{errors.ErrUnsupported, KindUnsupported},
	{net.ErrClosed, KindNotConnected},
}

// classify derives a Kind from an arbitrary error chain.
// Returns KindOther when nothing in the chain is recognized (safe default).
func classify(err error) Kind {
	if err == nil {
		return KindOther
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if e := HostErrno(errno); e != EOTHER {
			return e.Kind()
		}
	}

	for _, s := range sentinelKinds {
		if errors.Is(err, s.err) {
			return s.kind
		}
	}
	return KindOther
}

// matchesSentinel reports whether target is a standard library error that
// classify maps to k.
func matchesSentinel(k Kind, target error) bool {
	for _, s := range sentinelKinds {
		if s.kind == k && s.err == target {
			return true
		}
	}
	return false
}
