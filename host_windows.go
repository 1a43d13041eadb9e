//go:build windows

package oserr

import (
	"sync"
	"syscall"

	"golang.org/x/sys/windows"
)

// windowsErrnos lists the Win32 and Winsock codes with a POSIX counterpart.
// When several codes share an Errno, the first one is used by Syscall.
var windowsErrnos = []struct {
	host  syscall.Errno
	errno Errno
}{
	{windows.ERROR_FILE_NOT_FOUND, ENOENT},
	{windows.ERROR_PATH_NOT_FOUND, ENOENT},
	{windows.ERROR_ACCESS_DENIED, EPERM},
	{windows.ERROR_FILE_EXISTS, EEXIST},
	{windows.ERROR_ALREADY_EXISTS, EEXIST},
	{windows.ERROR_INVALID_PARAMETER, EINVAL},
	{windows.ERROR_INVALID_HANDLE, EBADF},
	{windows.ERROR_NOT_ENOUGH_MEMORY, ENOMEM},
	{windows.ERROR_OUTOFMEMORY, ENOMEM},
	{windows.ERROR_NOT_SUPPORTED, EOPNOTSUPP},
	{windows.ERROR_CALL_NOT_IMPLEMENTED, ENOSYS},
	{windows.ERROR_BROKEN_PIPE, EPIPE},
	{windows.ERROR_NO_DATA, EPIPE},
	{windows.ERROR_DIR_NOT_EMPTY, ENOTEMPTY},
	{windows.ERROR_DISK_FULL, ENOSPC},
	{windows.ERROR_HANDLE_DISK_FULL, ENOSPC},
	{windows.ERROR_TOO_MANY_OPEN_FILES, EMFILE},
	{windows.ERROR_SHARING_VIOLATION, EBUSY},
	{windows.ERROR_NOT_SAME_DEVICE, EXDEV},
	{windows.ERROR_FILENAME_EXCED_RANGE, ENAMETOOLONG},
	{windows.ERROR_DIRECTORY, ENOTDIR},
	{windows.ERROR_WRITE_PROTECT, EROFS},
	{windows.ERROR_OPERATION_ABORTED, EINTR},
	{windows.WSAEINTR, EINTR},
	{windows.WSAEACCES, EPERM},
	{windows.WSAEINVAL, EINVAL},
	{windows.WSAEMFILE, EMFILE},
	{windows.WSAEWOULDBLOCK, EWOULDBLOCK},
	{windows.WSAEMSGSIZE, EMSGSIZE},
	{windows.WSAEADDRINUSE, EADDRINUSE},
	{windows.WSAEADDRNOTAVAIL, EADDRNOTAVAIL},
	{windows.WSAENETDOWN, ENETDOWN},
	{windows.WSAENETUNREACH, ENETUNREACH},
	{windows.WSAECONNABORTED, ECONNABORTED},
	{windows.WSAECONNRESET, ECONNRESET},
	{windows.WSAENOBUFS, ENOBUFS},
	{windows.WSAENOTCONN, ENOTCONN},
	{windows.WSAETIMEDOUT, ETIMEDOUT},
	{windows.WSAECONNREFUSED, ECONNREFUSED},
	{windows.WSAEHOSTUNREACH, EHOSTUNREACH},
}

var windowsIndex = sync.OnceValues(func() (map[syscall.Errno]Errno, map[Errno]syscall.Errno) {
	fwd := make(map[syscall.Errno]Errno, len(windowsErrnos))
	rev := make(map[Errno]syscall.Errno, len(windowsErrnos))
	for _, m := range windowsErrnos {
		fwd[m.host] = m.errno
		if _, ok := rev[m.errno]; !ok {
			rev[m.errno] = m.host
		}
	}
	return fwd, rev
})

// HostErrno translates a Win32 or Winsock error code into the canonical table.
// Codes without a POSIX counterpart yield EOTHER.
func HostErrno(e syscall.Errno) Errno {
	fwd, _ := windowsIndex()
	if errno, ok := fwd[e]; ok {
		return errno
	}
	return EOTHER
}

// Syscall returns the Win32 or Winsock code for e. ok is false when Windows has
// no equivalent.
func (e Errno) Syscall() (errno syscall.Errno, ok bool) {
	_, rev := windowsIndex()
	errno, ok = rev[e]
	return errno, ok
}
