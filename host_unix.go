//go:build unix

package oserr

import (
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// maxHostErrno bounds the scan used to build the reverse index. No supported
// platform assigns errno values this large.
const maxHostErrno = 4096

// HostErrno translates an errno reported by the running OS into the canonical
// table. The translation goes through the platform's symbolic name, so it is
// correct even where the OS numbers a condition differently than Linux does.
// Zero and unknown values yield EOTHER.
func HostErrno(e syscall.Errno) Errno {
	if e == 0 {
		return EOTHER
	}
	return ErrnoFromString(unix.ErrnoName(e))
}

// hostErrnos maps canonical values to the number the running OS uses for them.
var hostErrnos = sync.OnceValue(func() map[Errno]syscall.Errno {
	m := make(map[Errno]syscall.Errno)
	for n := syscall.Errno(1); n < maxHostErrno; n++ {
		name := unix.ErrnoName(n)
		if name == "" {
			continue
		}
		e := ErrnoFromString(name)
		if e == EOTHER {
			continue
		}
		// Prefer the number registered under the canonical name over an alias.
		if _, seen := m[e]; !seen || name == e.String() {
			m[e] = n
		}
	}
	return m
})

// Syscall returns the errno the running OS uses for e. ok is false for EOTHER and
// for conditions the OS does not define.
func (e Errno) Syscall() (errno syscall.Errno, ok bool) {
	errno, ok = hostErrnos()[e]
	return errno, ok
}
