package locator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Value is the tagged union a map entry carries: a string, bool or int
// literal, or a nested map for the hierarchical keys.
type Value struct {
	Kind ValueKind
	Str  string
	Bool bool
	Int  int
	Sel  *Map
}

// StringValue wraps a string literal.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// BoolValue wraps a bool literal.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IntValue wraps an int literal.
func IntValue(n int) Value { return Value{Kind: KindInt, Int: n} }

// SelectorValue wraps a nested locator map.
func SelectorValue(m *Map) Value { return Value{Kind: KindSelector, Sel: m} }

// Equal reports deep equality of two values.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == o.Str
	case KindBool:
		return v.Bool == o.Bool
	case KindInt:
		return v.Int == o.Int
	case KindSelector:
		return v.Sel.Equal(o.Sel)
	}
	return false
}

// String returns the value's literal form for messages and debugging.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.Itoa(v.Int)
	case KindSelector:
		return v.Sel.String()
	}
	return ""
}

// Map is the canonical locator representation: an insertion-ordered
// mapping from canonical keys to values. The zero value is not usable;
// construct with NewMap.
type Map struct {
	keys   []Key
	values map[Key]Value
}

// NewMap returns an empty locator map.
func NewMap() *Map {
	return &Map{values: make(map[Key]Value)}
}

// Set stores a value under a key, keeping the key's original position
// when it is already present. Returns the map for chaining.
func (m *Map) Set(k Key, v Value) *Map {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
	return m
}

// Get returns the value stored under a key.
func (m *Map) Get(k Key) (Value, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (m *Map) Keys() []Key { return m.keys }

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// Equal reports whether two maps hold the same entries in the same order.
func (m *Map) Equal(o *Map) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.keys) != len(o.keys) {
		return false
	}
	for i, k := range m.keys {
		if o.keys[i] != k {
			return false
		}
		if !m.values[k].Equal(o.values[k]) {
			return false
		}
	}
	return true
}

// String renders the map in a compact YAML flow style for messages.
func (m *Map) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %s", k, m.values[k].String())
	}
	buf.WriteByte('}')
	return buf.String()
}

// MarshalYAML renders the map as a YAML mapping in insertion order.
func (m *Map) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range m.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: string(k)}
		valNode := &yaml.Node{}
		v := m.values[k]
		var err error
		switch v.Kind {
		case KindString:
			err = valNode.Encode(v.Str)
		case KindBool:
			err = valNode.Encode(v.Bool)
		case KindInt:
			err = valNode.Encode(v.Int)
		case KindSelector:
			err = valNode.Encode(v.Sel)
		}
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping, preserving document order and
// checking every key against the registry. Unknown keys produce a
// StrictConversionError with a spelling suggestion.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return &ValidationError{Message: "locator must be a mapping"}
	}
	if m.values == nil {
		m.values = make(map[Key]Value)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		attr, ok := byKey[Key(keyNode.Value)]
		if !ok {
			return &StrictConversionError{Name: keyNode.Value, Suggestion: SuggestKey(keyNode.Value)}
		}
		v, err := decodeValue(attr, valNode)
		if err != nil {
			return err
		}
		m.Set(attr.Key, v)
	}
	return nil
}

func decodeValue(attr Attribute, node *yaml.Node) (Value, error) {
	switch attr.Kind {
	case KindString:
		var s string
		if err := node.Decode(&s); err != nil {
			return Value{}, &ValidationError{Key: attr.Key, Message: "expected a string value"}
		}
		return StringValue(s), nil
	case KindBool:
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, &ValidationError{Key: attr.Key, Message: "expected a boolean value"}
		}
		return BoolValue(b), nil
	case KindInt:
		var n int
		if err := node.Decode(&n); err != nil {
			return Value{}, &ValidationError{Key: attr.Key, Message: "expected an integer value"}
		}
		return IntValue(n), nil
	case KindSelector:
		nested := NewMap()
		if err := nested.UnmarshalYAML(node); err != nil {
			return Value{}, err
		}
		return SelectorValue(nested), nil
	}
	return Value{}, &ValidationError{Key: attr.Key, Message: "unsupported value kind"}
}

// MarshalJSON renders the map as a JSON object in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyRaw, err := json.Marshal(string(k))
		if err != nil {
			return nil, err
		}
		buf.Write(keyRaw)
		buf.WriteByte(':')
		v := m.values[k]
		var raw []byte
		switch v.Kind {
		case KindString:
			raw, err = json.Marshal(v.Str)
		case KindBool:
			raw, err = json.Marshal(v.Bool)
		case KindInt:
			raw, err = json.Marshal(v.Int)
		case KindSelector:
			raw, err = v.Sel.MarshalJSON()
		}
		if err != nil {
			return nil, err
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
