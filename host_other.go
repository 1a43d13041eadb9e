//go:build !unix && !windows

package oserr

import (
	"sync"
	"syscall"
)

// errnoByText indexes the table by description. The syscall tables on these
// platforms reuse the Linux error strings, so the text identifies the condition
// even where the numbering differs.
var errnoByText = sync.OnceValue(func() map[string]Errno {
	m := make(map[string]Errno, len(errnoTable))
	for _, info := range errnoTable {
		m[info.desc] = info.errno
	}
	return m
})

// HostErrno translates an errno reported by the running OS into the canonical
// table by matching its error text. Unknown values yield EOTHER.
func HostErrno(e syscall.Errno) Errno {
	if e == 0 {
		return EOTHER
	}
	if errno, ok := errnoByText()[e.Error()]; ok {
		return errno
	}
	return EOTHER
}

// hostErrnos maps canonical values to the number the running OS uses for them.
var hostErrnos = sync.OnceValue(func() map[Errno]syscall.Errno {
	m := make(map[Errno]syscall.Errno)
	for n := syscall.Errno(1); n < 4096; n++ {
		if e := HostErrno(n); e != EOTHER {
			if _, seen := m[e]; !seen {
				m[e] = n
			}
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
