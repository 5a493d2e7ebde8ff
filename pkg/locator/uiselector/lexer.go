package uiselector

import "fmt"

type tokenType int

const (
	tokenDot tokenType = iota
	tokenIdent
	tokenLParen
	tokenRParen
	tokenString
	tokenNumber
	tokenTrue
	tokenFalse
	tokenNew
	tokenUiSelector
	tokenSemi
	tokenEOF
)

type token struct {
	typ  tokenType
	text string
	pos  int
}

type lexer struct {
	input string
	pos   int
}

func lex(input string) ([]token, error) {
	l := &lexer{input: input}
	var toks []token
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.pos++
		case ch == '.':
			toks = append(toks, token{tokenDot, ".", l.pos})
			l.pos++
		case ch == '(':
			toks = append(toks, token{tokenLParen, "(", l.pos})
			l.pos++
		case ch == ')':
			toks = append(toks, token{tokenRParen, ")", l.pos})
			l.pos++
		case ch == ';':
			toks = append(toks, token{tokenSemi, ";", l.pos})
			l.pos++
		case ch == '"':
			tok, err := l.lexString()
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case ch >= '0' && ch <= '9':
			toks = append(toks, l.lexNumber())
		case isIdentStart(ch):
			toks = append(toks, l.lexIdent())
		default:
			return nil, fmt.Errorf("unexpected character %q at %d", ch, l.pos)
		}
	}
	toks = append(toks, token{tokenEOF, "", l.pos})
	return toks, nil
}

func (l *lexer) lexString() (token, error) {
	start := l.pos
	l.pos++ // opening quote
	var buf []byte
	for {
		if l.pos >= len(l.input) {
			return token{}, fmt.Errorf("unterminated string at %d", start)
		}
		ch := l.input[l.pos]
		l.pos++
		if ch == '\\' {
			if l.pos >= len(l.input) {
				return token{}, fmt.Errorf("bad escape at %d", l.pos)
			}
			next := l.input[l.pos]
			l.pos++
			switch next {
			case '"', '\\':
				buf = append(buf, next)
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			default:
				buf = append(buf, '\\', next)
			}
			continue
		}
		if ch == '"' {
			break
		}
		buf = append(buf, ch)
	}
	return token{tokenString, string(buf), start}, nil
}

func (l *lexer) lexNumber() token {
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
		l.pos++
	}
	return token{tokenNumber, l.input[start:l.pos], start}
}

func (l *lexer) lexIdent() token {
	start := l.pos
	for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
		l.pos++
	}
	text := l.input[start:l.pos]
	switch text {
	case "new":
		return token{tokenNew, text, start}
	case "UiSelector":
		return token{tokenUiSelector, text, start}
	case "true":
		return token{tokenTrue, text, start}
	case "false":
		return token{tokenFalse, text, start}
	}
	return token{tokenIdent, text, start}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || ch == '$' || (ch >= '0' && ch <= '9')
}
