package uiselector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/devicelab-dev/uilocator/pkg/locator"
	"github.com/devicelab-dev/uilocator/pkg/logger"
)

// Parse parses UiSelector builder source text. Malformed input is
// recoverable by contract: instead of returning an error the parser logs
// a warning and yields an empty selector, which downstream generators
// render as the no-op locator (`//*` / `new UiSelector();`).
func Parse(src string) *Selector {
	sel, err := parse(src)
	if err != nil {
		logger.Warn("uiselector: recoverable parse failure: %v", err)
		return &Selector{}
	}
	return sel
}

func parse(src string) (*Selector, error) {
	src = strings.TrimSpace(src)
	// Selectors copied out of logs sometimes arrive wrapped in single
	// quotes; unwrap before lexing.
	if len(src) >= 2 && src[0] == '\'' && src[len(src)-1] == '\'' {
		src = src[1 : len(src)-1]
	}
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	sel, err := p.parseSelector(0, false)
	if err != nil {
		return nil, err
	}
	if p.peek().typ == tokenSemi {
		p.advance()
	}
	if tok := p.peek(); tok.typ != tokenEOF {
		return nil, fmt.Errorf("unexpected %q at %d", tok.text, tok.pos)
	}
	return sel, nil
}

type parser struct {
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) advance() token {
	tok := p.toks[p.i]
	p.i++
	return tok
}

func (p *parser) expect(typ tokenType, what string) (token, error) {
	tok := p.peek()
	if tok.typ != typ {
		return token{}, fmt.Errorf("expected %s, got %q at %d", what, tok.text, tok.pos)
	}
	return p.advance(), nil
}

// parseSelector reads an optional (mandatory when nested) `new
// UiSelector()` prefix followed by a chain of method calls.
func (p *parser) parseSelector(depth int, requirePrefix bool) (*Selector, error) {
	if depth > locator.MaxDepth {
		return nil, fmt.Errorf("selector nesting exceeds %d levels", locator.MaxDepth)
	}
	if requirePrefix || p.peek().typ == tokenNew {
		if _, err := p.expect(tokenNew, `"new"`); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenUiSelector, `"UiSelector"`); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenLParen, `"("`); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRParen, `")"`); err != nil {
			return nil, err
		}
	}

	sel := &Selector{}
	for p.peek().typ == tokenDot {
		call, err := p.parseCall(depth)
		if err != nil {
			return nil, err
		}
		sel.Calls = append(sel.Calls, call)
	}
	return sel, nil
}

func (p *parser) parseCall(depth int) (MethodCall, error) {
	if _, err := p.expect(tokenDot, `"."`); err != nil {
		return MethodCall{}, err
	}
	name, err := p.expect(tokenIdent, "method name")
	if err != nil {
		return MethodCall{}, err
	}
	if _, err := p.expect(tokenLParen, `"("`); err != nil {
		return MethodCall{}, err
	}

	call := MethodCall{Name: name.text}
	if p.peek().typ != tokenRParen {
		arg, err := p.parseArg(depth)
		if err != nil {
			return MethodCall{}, err
		}
		call.Args = append(call.Args, arg)
	}
	if _, err := p.expect(tokenRParen, `")"`); err != nil {
		return MethodCall{}, err
	}
	return call, nil
}

func (p *parser) parseArg(depth int) (Arg, error) {
	tok := p.peek()
	switch tok.typ {
	case tokenString:
		p.advance()
		return StringArg(tok.text), nil
	case tokenTrue:
		p.advance()
		return BoolArg(true), nil
	case tokenFalse:
		p.advance()
		return BoolArg(false), nil
	case tokenNumber:
		p.advance()
		n, err := strconv.Atoi(tok.text)
		if err != nil {
			return Arg{}, fmt.Errorf("bad number %q at %d", tok.text, tok.pos)
		}
		return IntArg(n), nil
	case tokenNew:
		nested, err := p.parseSelector(depth+1, true)
		if err != nil {
			return Arg{}, err
		}
		return SelectorArg(nested), nil
	}
	return Arg{}, fmt.Errorf("unexpected argument %q at %d", tok.text, tok.pos)
}
