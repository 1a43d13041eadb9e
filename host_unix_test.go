//go:build unix

package oserr

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHostErrno(t *testing.T) {
	tests := []struct {
		name string
		host syscall.Errno
		want Errno
	}{
		{"ENOENT", syscall.ENOENT, ENOENT},
		{"EACCES", syscall.EACCES, EPERM},
		{"EAGAIN", syscall.EAGAIN, EWOULDBLOCK},
		{"ECONNRESET", syscall.ECONNRESET, ECONNRESET},
		{"ETIMEDOUT", syscall.ETIMEDOUT, ETIMEDOUT},
		{"EFAULT", syscall.EFAULT, EFAULT},
		{"zero", 0, EOTHER},
		{"unknown", syscall.Errno(4000), EOTHER},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HostErrno(tt.host))
		})
	}
}

func TestErrno_Syscall(t *testing.T) {
	host, ok := ECONNREFUSED.Syscall()
	require.True(t, ok)
	require.Equal(t, syscall.ECONNREFUSED, host)

	host, ok = EPERM.Syscall()
	require.True(t, ok)
	require.Equal(t, syscall.EPERM, host)

	_, ok = EOTHER.Syscall()
	require.False(t, ok)
}

func TestErrno_SyscallRoundTrip(t *testing.T) {
	for _, e := range Errnos() {
		host, ok := e.Syscall()
		if !ok {
			continue
		}
		require.Equal(t, e, HostErrno(host), "errno %s", e)
	}
}

func TestIs_Syscall(t *testing.T) {
	require.True(t, errors.Is(FromKind(KindNotFound), syscall.ENOENT))
	require.True(t, errors.Is(FromCode(14), syscall.EFAULT))
	require.True(t, errors.Is(FromCode(13), syscall.EACCES))
	require.False(t, errors.Is(FromCode(14), syscall.EIO))
	require.False(t, errors.Is(FromKind(KindOther), syscall.Errno(4000)))
}

func TestFromError_Errno(t *testing.T) {
	e := FromError(fmt.Errorf("write: %w", syscall.EPIPE))
	require.Equal(t, KindBrokenPipe, e.Kind())
	require.Equal(t, EPIPE, e.Errno())
	require.Equal(t, 0, e.Len())

	generic := FromError(syscall.EFAULT)
	require.Equal(t, KindOther, generic.Kind())
	require.Equal(t, "EFAULT", generic.StrKind())
}
