package oserr

import "strconv"

// Errno is a platform error number normalized to a closed set of named values.
//
// The numeric value of an Errno is its canonical code. Conditions that platforms
// report under several codes (EACCES/EPERM, EAGAIN/EWOULDBLOCK, EDEADLOCK/EDEADLK)
// collapse onto one value, so converting a raw code to an Errno and back may
// return a different, canonical code. Unknown codes map to EOTHER.
type Errno int32

var (
	errnoByCode = indexErrnoByCode()
	errnoByName = indexErrnoByName()
)

func indexErrnoByCode() map[Errno]*errnoInfo {
	m := make(map[Errno]*errnoInfo, len(errnoTable))
	for i := range errnoTable {
		m[errnoTable[i].errno] = &errnoTable[i]
	}
	return m
}

func indexErrnoByName() map[string]Errno {
	m := make(map[string]Errno, len(errnoTable)+len(nameAliases))
	for _, info := range errnoTable {
		m[info.name] = info.errno
	}
	for name, e := range nameAliases {
		m[name] = e
	}
	return m
}

// ErrnoFromCode maps a raw error number to its Errno.
// It never fails: codes outside the table yield EOTHER.
//
// Example:
//
//	oserr.ErrnoFromCode(13) // EPERM, the canonical form of EACCES
func ErrnoFromCode(code int) Errno {
	if code < 0 || code > int(^uint32(0)>>1) {
		return EOTHER
	}
	if _, ok := errnoByCode[Errno(code)]; ok {
		return Errno(code)
	}
	if e, ok := codeAliases[code]; ok {
		return e
	}
	return EOTHER
}

// ErrnoFromString maps a canonical identifier such as "EFAULT" back to its Errno.
// The alias names EAGAIN, EACCES, EDEADLOCK and ENOTSUP are accepted as well.
// Any other string yields EOTHER.
func ErrnoFromString(s string) Errno {
	if e, ok := errnoByName[s]; ok {
		return e
	}
	return EOTHER
}

// Errnos returns every named Errno in ascending code order. EOTHER is not included.
func Errnos() []Errno {
	out := make([]Errno, len(errnoTable))
	for i, info := range errnoTable {
		out[i] = info.errno
	}
	return out
}

func (e Errno) info() *errnoInfo {
	if info, ok := errnoByCode[e]; ok {
		return info
	}
	return &otherInfo
}

// Code returns the canonical raw value of e. EOTHER returns -1.
func (e Errno) Code() int {
	return int(e.info().errno)
}

// String returns the canonical identifier, e.g. "ECONNRESET", or "EOTHER".
func (e Errno) String() string {
	return e.info().name
}

// Description returns fixed human-readable text for e.
func (e Errno) Description() string {
	return e.info().desc
}

// GoString implements fmt.GoStringer.
func (e Errno) GoString() string {
	return "oserr." + e.String() + "(" + strconv.Itoa(e.Code()) + ")"
}

// MarshalText implements encoding.TextMarshaler using the canonical identifier.
func (e Errno) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown identifiers decode as EOTHER.
func (e *Errno) UnmarshalText(text []byte) error {
	*e = ErrnoFromString(string(text))
	return nil
}
