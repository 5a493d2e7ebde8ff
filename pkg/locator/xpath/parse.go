package xpath

import (
	"strconv"
	"strings"

	"github.com/devicelab-dev/uilocator/pkg/locator"
)

// Parse folds an XPath expression of the restricted dialect back into
// the canonical map. The input is expected to be this package's own
// output shape: `//*` steps with equality, function and positional
// predicates joined by the hierarchical path forms. Anything outside
// that shape is an InvalidXPathError.
//
// A repeated positional predicate on one step keeps the last occurrence,
// matching how an XPath engine would apply the filters. A bare `//*`
// parses to the empty map.
func Parse(x string) (*locator.Map, error) {
	p := &parser{input: strings.TrimSpace(x)}
	if !p.consume("//") {
		return nil, p.errorf("expression must start with //")
	}
	m, err := p.parseStep(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.input) {
		return nil, p.errorf("trailing input")
	}
	return m, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) errorf(reason string) error {
	frag := p.input[p.pos:]
	if len(frag) > 24 {
		frag = frag[:24]
	}
	return &locator.InvalidXPathError{XPath: p.input, Fragment: frag, Reason: reason}
}

func (p *parser) consume(prefix string) bool {
	if strings.HasPrefix(p.input[p.pos:], prefix) {
		p.pos += len(prefix)
		return true
	}
	return false
}

func (p *parser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

// parseStep reads a `*` node test, its bracket predicates, and an
// optional hierarchical tail that recurses into the next step.
func (p *parser) parseStep(depth int) (*locator.Map, error) {
	if depth > locator.MaxDepth {
		return nil, p.errorf("nesting too deep")
	}
	if !p.consume("*") {
		return nil, p.errorf("expected wildcard node test")
	}
	m := locator.NewMap()
	for p.peek() == '[' {
		if err := p.parsePredicate(m); err != nil {
			return nil, err
		}
	}
	if p.peek() == '/' {
		key, err := p.parseJoin()
		if err != nil {
			return nil, err
		}
		nested, err := p.parseStep(depth + 1)
		if err != nil {
			return nil, err
		}
		m.Set(key, locator.SelectorValue(nested))
	}
	return m, nil
}

// parseJoin maps the path syntax between steps onto a hierarchical key.
// A mid-expression `//` has no exact UiSelector counterpart; it is
// accepted as a child relation, the closest the attribute model offers.
func (p *parser) parseJoin() (locator.Key, error) {
	switch {
	case p.consume("/following-sibling::"):
		return locator.KeySibling, nil
	case p.consume("/.."):
		if !p.consume("//") {
			return "", p.errorf("expected // after parent step")
		}
		return locator.KeyFromParent, nil
	case p.consume("//"):
		return locator.KeyChildSelector, nil
	case p.consume("/"):
		return locator.KeyChildSelector, nil
	}
	return "", p.errorf("expected path step")
}

func (p *parser) parsePredicate(m *locator.Map) error {
	p.pos++ // '['
	switch {
	case p.consume("@"):
		if err := p.parseEquality(m); err != nil {
			return err
		}
	case p.peek() >= '0' && p.peek() <= '9':
		n, err := p.number()
		if err != nil {
			return err
		}
		m.Set(locator.KeyInstance, locator.IntValue(n-1))
	default:
		name := p.ident()
		if name == "position" {
			if !p.consume("()=") {
				return p.errorf("expected ()= after position")
			}
			n, err := p.number()
			if err != nil {
				return err
			}
			m.Set(locator.KeyIndex, locator.IntValue(n-1))
		} else if err := p.parseFunction(m, name); err != nil {
			return err
		}
	}
	if !p.consume("]") {
		return p.errorf("expected ]")
	}
	return nil
}

func (p *parser) parseEquality(m *locator.Map) error {
	name := p.ident()
	attr, ok := locator.AttributeForXPathName(name)
	if !ok {
		return p.errorf("unknown attribute @" + name)
	}
	if !p.consume("=") {
		return p.errorf("expected = after @" + name)
	}
	lit, err := p.literal()
	if err != nil {
		return err
	}
	if attr.Kind == locator.KindBool {
		switch lit {
		case "true":
			m.Set(attr.Key, locator.BoolValue(true))
		case "false":
			m.Set(attr.Key, locator.BoolValue(false))
		default:
			return p.errorf("attribute @" + name + " requires true or false")
		}
		return nil
	}
	m.Set(attr.Key, locator.StringValue(lit))
	return nil
}

func (p *parser) parseFunction(m *locator.Map, fn string) error {
	if !p.consume("(@") {
		return p.errorf("unsupported predicate " + fn)
	}
	name := p.ident()
	attr, ok := locator.AttributeForXPathFunc(fn, name)
	if !ok {
		return p.errorf(fn + "() is not supported for @" + name)
	}
	if !p.consume(",") {
		return p.errorf("expected , in " + fn + "()")
	}
	p.skipSpaces()
	lit, err := p.literal()
	if err != nil {
		return err
	}
	if !p.consume(")") {
		return p.errorf("expected ) closing " + fn + "()")
	}
	m.Set(attr.Key, locator.StringValue(lit))
	return nil
}

// literal reads a quoted string literal or a concat() of them.
func (p *parser) literal() (string, error) {
	switch {
	case p.peek() == '\'' || p.peek() == '"':
		return p.quoted()
	case p.consume("concat("):
		var b strings.Builder
		for {
			seg, err := p.quoted()
			if err != nil {
				return "", err
			}
			b.WriteString(seg)
			if p.consume(")") {
				return b.String(), nil
			}
			if !p.consume(",") {
				return "", p.errorf("expected , or ) in concat()")
			}
			p.skipSpaces()
		}
	}
	return "", p.errorf("expected string literal")
}

// quoted reads one delimiter-quoted segment. XPath literals have no
// escape sequences; the literal ends at the next matching delimiter.
func (p *parser) quoted() (string, error) {
	quote := p.peek()
	if quote != '\'' && quote != '"' {
		return "", p.errorf("expected quoted string")
	}
	p.pos++
	end := strings.IndexByte(p.input[p.pos:], quote)
	if end < 0 {
		return "", p.errorf("unterminated string literal")
	}
	s := p.input[p.pos : p.pos+end]
	p.pos += end + 1
	return s, nil
}

func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '-' {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

func (p *parser) number() (int, error) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf("expected a number")
	}
	n, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return 0, p.errorf("bad number")
	}
	return n, nil
}
