package uiselector

import (
	"fmt"

	"github.com/devicelab-dev/uilocator/pkg/locator"
)

// ToMap converts the selector into the canonical locator map. Unlike
// XPath generation this direction is lossless, so an unmapped method
// name is a StrictConversionError rather than a skip.
func (s *Selector) ToMap() (*locator.Map, error) {
	return s.toMap(0)
}

func (s *Selector) toMap(depth int) (*locator.Map, error) {
	if depth > locator.MaxDepth {
		return nil, &locator.ValidationError{Message: "selector nesting too deep"}
	}
	m := locator.NewMap()
	for _, c := range s.Calls {
		attr, ok := locator.AttributeForMethod(c.Name)
		if !ok {
			return nil, &locator.StrictConversionError{
				Name:       c.Name,
				Suggestion: locator.SuggestMethod(c.Name),
			}
		}
		if len(c.Args) != 1 {
			return nil, &locator.StrictConversionError{
				Name:   c.Name,
				Reason: fmt.Sprintf("expected exactly one argument, got %d", len(c.Args)),
			}
		}
		v, err := argToValue(attr, c.Args[0], depth)
		if err != nil {
			return nil, err
		}
		m.Set(attr.Key, v)
	}
	return m, nil
}

func argToValue(attr locator.Attribute, a Arg, depth int) (locator.Value, error) {
	switch attr.Kind {
	case locator.KindString:
		if a.Kind == ArgString {
			return locator.StringValue(a.Str), nil
		}
	case locator.KindBool:
		if a.Kind == ArgBool {
			return locator.BoolValue(a.Bool), nil
		}
	case locator.KindInt:
		if a.Kind == ArgInt {
			return locator.IntValue(a.Int), nil
		}
	case locator.KindSelector:
		if a.Kind == ArgSelector {
			nested, err := a.Sel.toMap(depth + 1)
			if err != nil {
				return locator.Value{}, err
			}
			return locator.SelectorValue(nested), nil
		}
	}
	return locator.Value{}, &locator.StrictConversionError{
		Name:   attr.Method,
		Reason: "argument type does not match attribute",
	}
}

// FromMap builds a selector whose method calls follow the map's
// insertion order, one call per entry.
func FromMap(m *locator.Map) (*Selector, error) {
	return fromMap(m, 0)
}

func fromMap(m *locator.Map, depth int) (*Selector, error) {
	if depth > locator.MaxDepth {
		return nil, &locator.ValidationError{Message: "selector nesting too deep"}
	}
	sel := &Selector{}
	for _, k := range m.Keys() {
		attr, ok := locator.AttributeFor(k)
		if !ok {
			return nil, &locator.StrictConversionError{
				Name:       string(k),
				Suggestion: locator.SuggestKey(string(k)),
			}
		}
		v, _ := m.Get(k)
		if v.Kind != attr.Kind {
			return nil, &locator.ValidationError{Key: k, Message: "value kind does not match attribute"}
		}
		var arg Arg
		switch attr.Kind {
		case locator.KindString:
			arg = StringArg(v.Str)
		case locator.KindBool:
			arg = BoolArg(v.Bool)
		case locator.KindInt:
			arg = IntArg(v.Int)
		case locator.KindSelector:
			nested, err := fromMap(v.Sel, depth+1)
			if err != nil {
				return nil, err
			}
			arg = SelectorArg(nested)
		}
		sel.Calls = append(sel.Calls, MethodCall{Name: attr.Method, Args: []Arg{arg}})
	}
	return sel, nil
}

// Render converts a locator map directly to DSL source text.
func Render(m *locator.Map) (string, error) {
	sel, err := FromMap(m)
	if err != nil {
		return "", err
	}
	return sel.String(), nil
}
