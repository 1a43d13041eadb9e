package oserr

import (
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler.
// The document is a mapping with the same keys, order and values as MarshalJSON.
func (e *Error) MarshalYAML() (any, error) {
	if e == nil {
		return nil, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	node.Content = append(node.Content, yamlString(fieldError), yamlString(e.wireKind()))
	for _, f := range e.fields.entries {
		if isStructural(f.name) {
			continue
		}
		node.Content = append(node.Content, yamlString(f.name), yamlScalar(f.value))
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler using the same rules as UnmarshalJSON.
func (e *Error) UnmarshalYAML(node *yaml.Node) error {
	pairs, err := readYAMLMapping(node)
	if err != nil {
		return err
	}

	decoded, derr := decodeWire(pairs)
	if derr != nil {
		return derr
	}
	*e = *decoded
	return nil
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlScalar(v Value) *yaml.Node {
	switch v.kind {
	case ValueBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.b)}
	case ValueI64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.i, 10)}
	case ValueU64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(v.u, 10)}
	case ValueF64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: yamlFloat(v.f)}
	case ValueString:
		return yamlString(v.s)
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return formatFloat(f)
}

// readYAMLMapping flattens a mapping of scalars into key/value pairs in
// document order.
func readYAMLMapping(node *yaml.Node) ([]field, error) {
	node = yamlResolve(node)
	if node != nil && node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, invalidData("expected a YAML mapping")
		}
		node = yamlResolve(node.Content[0])
	}
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, invalidData("expected a YAML mapping")
	}

	pairs := make([]field, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := yamlResolve(node.Content[i])
		if key == nil || key.Kind != yaml.ScalarNode {
			return nil, invalidData("line %d: expected a scalar key", node.Content[i].Line)
		}
		v, err := yamlValue(key.Value, yamlResolve(node.Content[i+1]))
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, field{name: key.Value, value: v})
	}
	return pairs, nil
}

func yamlResolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func yamlValue(name string, node *yaml.Node) (Value, error) {
	if node == nil || node.Kind != yaml.ScalarNode {
		return Value{}, invalidData("field %q: only scalar values are supported", name)
	}

	switch node.ShortTag() {
	case "!!null":
		return NullValue(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, invalidData("field %q: %s", name, err.Error())
		}
		return BoolValue(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return Int64Value(i), nil
		}
		var u uint64
		if err := node.Decode(&u); err != nil {
			return Value{}, invalidData("field %q: invalid integer %q", name, node.Value)
		}
		return Uint64Value(u), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, invalidData("field %q: %s", name, err.Error())
		}
		return Float64Value(f), nil
	default:
		return StringValue(node.Value), nil
	}
}
