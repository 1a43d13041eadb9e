package oserr

// Structural field names. None of them can be written through SetField.
const (
	fieldError     = "error"
	fieldOS        = "os"
	fieldSource    = "source"
	fieldBacktrace = "backtrace"
	fieldMessage   = "message"
)

// isReserved reports whether name is one of the structural field names.
func isReserved(name string) bool {
	switch name {
	case fieldError, fieldOS, fieldSource, fieldBacktrace, fieldMessage:
		return true
	}
	return false
}

// isStructural reports whether name is stored in the field map but never
// treated as an extension field.
func isStructural(name string) bool {
	return name == fieldError || name == fieldOS
}

type field struct {
	name  string
	value Value
}

// fieldMap is a small insertion-ordered map. Errors rarely carry more than a
// handful of fields, so lookups scan the slice.
type fieldMap struct {
	entries []field
}

func (m *fieldMap) index(name string) int {
	for i := range m.entries {
		if m.entries[i].name == name {
			return i
		}
	}
	return -1
}

func (m *fieldMap) get(name string) (Value, bool) {
	if i := m.index(name); i >= 0 {
		return m.entries[i].value, true
	}
	return Value{}, false
}

// set overwrites an existing entry in place or appends a new one.
func (m *fieldMap) set(name string, v Value) {
	if i := m.index(name); i >= 0 {
		m.entries[i].value = v
		return
	}
	m.entries = append(m.entries, field{name: name, value: v})
}

func (m *fieldMap) clone() fieldMap {
	if len(m.entries) == 0 {
		return fieldMap{}
	}
	out := make([]field, len(m.entries))
	copy(out, m.entries)
	return fieldMap{entries: out}
}

// extensionLen counts the entries that are not structural.
func (m *fieldMap) extensionLen() int {
	n := 0
	for _, f := range m.entries {
		if !isStructural(f.name) {
			n++
		}
	}
	return n
}

// equalExtensions compares the non-structural entries of both maps, ignoring order.
func (m *fieldMap) equalExtensions(o *fieldMap) bool {
	if m.extensionLen() != o.extensionLen() {
		return false
	}
	for _, f := range m.entries {
		if isStructural(f.name) {
			continue
		}
		v, ok := o.get(f.name)
		if !ok || v != f.value {
			return false
		}
	}
	return true
}
