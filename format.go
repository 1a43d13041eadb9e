package oserr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Error implements the error interface. The text is the compact JSON wire form,
// so Parse(e.Error()) recovers a value Equal to e.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	b, err := e.MarshalJSON()
	if err != nil {
		return `{"error":"Other"}`
	}
	return string(b)
}

// Format implements fmt.Formatter.
//
//	%v, %s  compact JSON
//	%+v     JSON indented with two spaces
//	%q      compact JSON as a quoted Go string
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			_, _ = f.Write([]byte(e.indented()))
			return
		}
		_, _ = f.Write([]byte(e.Error()))
	case 's':
		_, _ = f.Write([]byte(e.Error()))
	case 'q':
		_, _ = f.Write([]byte(strconv.Quote(e.Error())))
	default:
		fmt.Fprintf(f, "%%!%c(*oserr.Error=%s)", verb, e.Error())
	}
}

func (e *Error) indented() string {
	compact := e.Error()
	if e == nil {
		return compact
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(compact), "", "  "); err != nil {
		return compact
	}
	return buf.String()
}
