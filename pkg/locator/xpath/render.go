// Package xpath renders locators as the restricted XPath dialect the
// UiAutomator attribute model maps onto, and parses that dialect back
// into the canonical map. The node test is always the wildcard `*`;
// class matching goes through an @class predicate.
package xpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/devicelab-dev/uilocator/pkg/locator"
	"github.com/devicelab-dev/uilocator/pkg/locator/uiselector"
	"github.com/devicelab-dev/uilocator/pkg/logger"
)

// FromMap renders the canonical map as an XPath expression. The map's
// insertion order is preserved; a hierarchical key closes the current
// step and opens the next one, so keys after it attach to the nested
// step.
func FromMap(m *locator.Map) (string, error) {
	var b strings.Builder
	b.WriteString("//")
	if err := renderMap(&b, m, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderMap(b *strings.Builder, m *locator.Map, depth int) error {
	if depth > locator.MaxDepth {
		return &locator.ValidationError{Message: "locator nesting too deep"}
	}
	b.WriteByte('*')
	for _, k := range m.Keys() {
		attr, ok := locator.AttributeFor(k)
		if !ok {
			return &locator.StrictConversionError{Name: string(k), Suggestion: locator.SuggestKey(string(k))}
		}
		v, _ := m.Get(k)
		if v.Kind != attr.Kind {
			return &locator.ValidationError{Key: k, Message: "value kind does not match attribute"}
		}
		if attr.Hierarchical {
			if v.Sel == nil {
				return &locator.ValidationError{Key: k, Message: "nested locator is empty"}
			}
			b.WriteString(stepJoin(k))
			if err := renderMap(b, v.Sel, depth+1); err != nil {
				return err
			}
			continue
		}
		b.WriteString(predicate(attr, v))
	}
	return nil
}

// FromSelector renders a parsed UiSelector chain as XPath. This
// direction is lossy by contract: a method the attribute model cannot
// express is skipped with a warning instead of failing the conversion.
func FromSelector(s *uiselector.Selector) string {
	var b strings.Builder
	b.WriteString("//")
	renderSelector(&b, s, 0)
	return b.String()
}

func renderSelector(b *strings.Builder, s *uiselector.Selector, depth int) {
	b.WriteByte('*')
	if depth > locator.MaxDepth {
		logger.Warn("xpath: selector nesting exceeds %d levels, truncating", locator.MaxDepth)
		return
	}
	for _, c := range s.Calls {
		attr, ok := locator.AttributeForMethod(c.Name)
		if !ok {
			logger.Warn("xpath: skipping unsupported method %q", c.Name)
			continue
		}
		if len(c.Args) != 1 {
			logger.Warn("xpath: skipping %q: expected exactly one argument, got %d", c.Name, len(c.Args))
			continue
		}
		arg := c.Args[0]
		if attr.Hierarchical {
			if arg.Kind != uiselector.ArgSelector || arg.Sel == nil {
				logger.Warn("xpath: skipping %q: argument is not a nested selector", c.Name)
				continue
			}
			b.WriteString(stepJoin(attr.Key))
			renderSelector(b, arg.Sel, depth+1)
			continue
		}
		v, ok := argValue(attr, arg)
		if !ok {
			logger.Warn("xpath: skipping %q: argument type does not match attribute", c.Name)
			continue
		}
		b.WriteString(predicate(attr, v))
	}
}

func argValue(attr locator.Attribute, a uiselector.Arg) (locator.Value, bool) {
	switch {
	case attr.Kind == locator.KindString && a.Kind == uiselector.ArgString:
		return locator.StringValue(a.Str), true
	case attr.Kind == locator.KindBool && a.Kind == uiselector.ArgBool:
		return locator.BoolValue(a.Bool), true
	case attr.Kind == locator.KindInt && a.Kind == uiselector.ArgInt:
		return locator.IntValue(a.Int), true
	}
	return locator.Value{}, false
}

// stepJoin returns the path syntax that opens the next step for a
// hierarchical key.
func stepJoin(k locator.Key) string {
	switch k {
	case locator.KeyFromParent:
		return "/..//"
	case locator.KeySibling:
		return "/following-sibling::"
	}
	return "/"
}

func predicate(attr locator.Attribute, v locator.Value) string {
	switch {
	case attr.Key == locator.KeyIndex:
		// 0-based attribute, 1-based XPath position.
		return fmt.Sprintf("[position()=%d]", v.Int+1)
	case attr.Key == locator.KeyInstance:
		return fmt.Sprintf("[%d]", v.Int+1)
	case attr.XPathFunc != "":
		return fmt.Sprintf("[%s(@%s, %s)]", attr.XPathFunc, attr.XPathAttr, Literal(v.Str))
	case attr.Kind == locator.KindBool:
		return fmt.Sprintf("[@%s='%s']", attr.XPathAttr, strconv.FormatBool(v.Bool))
	default:
		return fmt.Sprintf("[@%s=%s]", attr.XPathAttr, Literal(v.Str))
	}
}
