package oserr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_StringRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range Kinds() {
		s := k.String()
		require.False(t, seen[s], "duplicate kind name %q", s)
		seen[s] = true
		require.Equal(t, k, KindFromString(s))
	}
	require.Len(t, Kinds(), 20)
}

func TestKind_Names(t *testing.T) {
	require.Equal(t, "Other", KindOther.String())
	require.Equal(t, "UnexpectedEof", KindUnexpectedEOF.String())
	require.Equal(t, "Unsupported", KindUnsupported.String())
	require.Equal(t, "OutOfMemory", KindOutOfMemory.String())
	require.Equal(t, "Kind(200)", Kind(200).String())

	require.Equal(t, KindOther, KindFromString("notfound"))
	require.Equal(t, KindOther, KindFromString(""))
}

func TestKind_Text(t *testing.T) {
	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("BrokenPipe")))
	require.Equal(t, KindBrokenPipe, k)

	b, err := KindTimedOut.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "TimedOut", string(b))
}

func TestBridge_ErrnoKind(t *testing.T) {
	tests := []struct {
		errno Errno
		kind  Kind
	}{
		{EADDRINUSE, KindAddrInUse},
		{EADDRNOTAVAIL, KindAddrNotAvailable},
		{ECONNABORTED, KindConnectionAborted},
		{ECONNREFUSED, KindConnectionRefused},
		{ECONNRESET, KindConnectionReset},
		{EPERM, KindPermissionDenied},
		{EEXIST, KindAlreadyExists},
		{EINTR, KindInterrupted},
		{EINVAL, KindInvalidInput},
		{ENOENT, KindNotFound},
		{ENOMEM, KindOutOfMemory},
		{ENOSYS, KindUnsupported},
		{ENOTCONN, KindNotConnected},
		{EPIPE, KindBrokenPipe},
		{EWOULDBLOCK, KindWouldBlock},
		{ETIMEDOUT, KindTimedOut},
	}

	for _, tt := range tests {
		t.Run(tt.errno.String(), func(t *testing.T) {
			require.Equal(t, tt.kind, tt.errno.Kind())
			require.Equal(t, tt.errno, tt.kind.Errno())
		})
	}
}

func TestBridge_OtherKinds(t *testing.T) {
	for _, k := range []Kind{KindOther, KindInvalidData, KindWriteZero, KindUnexpectedEOF} {
		require.Equal(t, EOTHER, k.Errno(), "kind %s", k)
	}
	require.Equal(t, KindOther, EFAULT.Kind())
	require.Equal(t, KindOther, EIO.Kind())
	require.Equal(t, KindOther, EOTHER.Kind())
}

func TestBridge_KindErrnoRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		e := k.Errno()
		if e == EOTHER {
			continue
		}
		require.Equal(t, k, e.Kind())
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		in    string
		kind  Kind
		errno Errno
	}{
		{"NotFound", KindNotFound, EOTHER},
		{"ENOENT", KindOther, ENOENT},
		{"EFAULT", KindOther, EFAULT},
		{"Other", KindOther, EOTHER},
		{"EOTHER", KindOther, EOTHER},
		{"CustomMsg", KindOther, EOTHER},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			k, e := resolve(tt.in)
			require.Equal(t, tt.kind, k)
			require.Equal(t, tt.errno, e)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindOther},
		{"plain", errors.New("boom"), KindOther},
		{"not exist", fs.ErrNotExist, KindNotFound},
		{"wrapped not exist", fmt.Errorf("open: %w", os.ErrNotExist), KindNotFound},
		{"permission", os.ErrPermission, KindPermissionDenied},
		{"exist", fs.ErrExist, KindAlreadyExists},
		{"invalid", fs.ErrInvalid, KindInvalidInput},
		{"deadline", context.DeadlineExceeded, KindTimedOut},
		{"os deadline", os.ErrDeadlineExceeded, KindTimedOut},
		{"canceled", context.Canceled, KindInterrupted},
		{"unexpected eof", io.ErrUnexpectedEOF, KindUnexpectedEOF},
		{"short write", io.ErrShortWrite, KindWriteZero},
		{"unsupported", errors.ErrUnsupported, KindUnsupported},
		{"closed", net.ErrClosed, KindNotConnected},
		{"error value", FromKind(KindBrokenPipe), KindBrokenPipe},
		{"wrapped error value", fmt.Errorf("ctx: %w", FromCode(111)), KindConnectionRefused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestMatchesSentinel(t *testing.T) {
	require.True(t, matchesSentinel(KindNotFound, fs.ErrNotExist))
	require.True(t, matchesSentinel(KindTimedOut, context.DeadlineExceeded))
	require.False(t, matchesSentinel(KindNotFound, fs.ErrExist))
	require.False(t, matchesSentinel(KindOther, errors.New("x")))
}
