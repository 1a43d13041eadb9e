package oserr

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// MarshalJSON implements json.Marshaler.
//
// The output is a single object whose first key is "error", followed by every
// extension field in insertion order:
//
//	{"error":"NotFound","message":"config file missing","attempt":3}
//
// The stored code is never emitted separately. For errnos with a specific Kind the
// Kind name is written; for the rest the errno identifier ("EFAULT") carries it.
func (e *Error) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteString(`{"error":`)
	if err := writeJSONString(&buf, e.wireKind()); err != nil {
		return nil, err
	}

	for _, f := range e.fields.entries {
		if isStructural(f.name) {
			continue
		}
		buf.WriteByte(',')
		if err := writeJSONString(&buf, f.name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		b, err := f.value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
// On failure the returned error is an *Error of KindInvalidData.
func (e *Error) UnmarshalJSON(data []byte) error {
	pairs, err := readJSONObject(data)
	if err != nil {
		return invalidData("%s", err.Error())
	}

	decoded, derr := decodeWire(pairs)
	if derr != nil {
		return derr
	}
	*e = *decoded
	return nil
}

// Parse decodes the textual form produced by Error.Error.
//
// The input must be a JSON object with a string "error" key and scalar values.
// Failures are reported as an *Error of KindInvalidData whose message describes
// the problem.
//
// Example:
//
//	err, perr := oserr.Parse(`{"error":"NotFound","message":"a message"}`)
//	if perr != nil {
//	    return perr
//	}
//	msg, _ := err.Message() // "a message"
func Parse(s string) (*Error, error) {
	e := new(Error)
	if err := e.UnmarshalJSON([]byte(s)); err != nil {
		return nil, err
	}
	return e, nil
}

// decodeWire rebuilds an Error from decoded key/value pairs in wire order.
func decodeWire(pairs []field) (*Error, *Error) {
	var (
		kind    string
		hasKind bool
		code    Value
		hasCode bool
		rest    = make([]field, 0, len(pairs))
	)

	for _, p := range pairs {
		switch p.name {
		case fieldError:
			s, ok := p.value.AsString()
			if !ok {
				return nil, invalidData("required 'error' field is not a string")
			}
			kind, hasKind = s, true
		case fieldOS:
			code, hasCode = p.value, true
		default:
			rest = append(rest, p)
		}
	}
	if !hasKind {
		return nil, invalidData("required 'error' field is missing")
	}

	var e *Error
	if n, ok := valueCode(code); hasCode && ok && isOtherName(kind) {
		e = FromCode(n)
	} else {
		e = New(kind)
	}

	for _, p := range rest {
		e.fields.set(p.name, p.value)
	}
	return e, nil
}

// readJSONObject reads a flat JSON object of scalars, keeping key order.
func readJSONObject(data []byte) ([]field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("expected a JSON object")
	}

	var pairs []field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, errors.New("expected an object key")
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		v, err := jsonTokenValue(name, tok)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, field{name: name, value: v})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}
	return pairs, nil
}

func jsonTokenValue(name string, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case json.Number:
		return parseNumber(t.String())
	default:
		return Value{}, errors.New("field \"" + name + "\": only JSON primitives are supported")
	}
}

// writeJSONString writes s as a JSON string literal without HTML escaping.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
