// Package uiselector parses and renders the UiSelector fluent-builder
// DSL: method-call chains of the form `new UiSelector().text("OK");`,
// including nested selectors for the hierarchical methods.
package uiselector

import (
	"strconv"
	"strings"
)

// ArgKind tags the type of a method-call argument.
type ArgKind int

const (
	ArgString ArgKind = iota
	ArgBool
	ArgInt
	ArgSelector
)

// Arg is one method-call argument: a literal or a nested selector.
type Arg struct {
	Kind ArgKind
	Str  string
	Bool bool
	Int  int
	Sel  *Selector
}

// StringArg wraps a string literal argument.
func StringArg(s string) Arg { return Arg{Kind: ArgString, Str: s} }

// BoolArg wraps a bool literal argument.
func BoolArg(b bool) Arg { return Arg{Kind: ArgBool, Bool: b} }

// IntArg wraps an int literal argument.
func IntArg(n int) Arg { return Arg{Kind: ArgInt, Int: n} }

// SelectorArg wraps a nested selector argument.
func SelectorArg(s *Selector) Arg { return Arg{Kind: ArgSelector, Sel: s} }

// MethodCall is one `.name(arg)` link of the builder chain. Unknown
// method names are preserved here; whether they are an error is decided
// by the consumer (lenient for XPath generation, strict for map
// conversion).
type MethodCall struct {
	Name string
	Args []Arg
}

// Selector is the parsed form of a builder chain: an ordered list of
// method calls.
type Selector struct {
	Calls []MethodCall
}

// String renders the selector as DSL source text with a trailing
// semicolon. An empty selector renders as the no-op locator
// `new UiSelector();`.
func (s *Selector) String() string {
	var b strings.Builder
	s.render(&b)
	b.WriteByte(';')
	return b.String()
}

func (s *Selector) render(b *strings.Builder) {
	b.WriteString("new UiSelector()")
	for _, c := range s.Calls {
		b.WriteByte('.')
		b.WriteString(c.Name)
		b.WriteByte('(')
		for i, a := range c.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.render(b)
		}
		b.WriteByte(')')
	}
}

func (a Arg) render(b *strings.Builder) {
	switch a.Kind {
	case ArgString:
		b.WriteByte('"')
		b.WriteString(escapeString(a.Str))
		b.WriteByte('"')
	case ArgBool:
		b.WriteString(strconv.FormatBool(a.Bool))
	case ArgInt:
		b.WriteString(strconv.Itoa(a.Int))
	case ArgSelector:
		a.Sel.render(b) // nested selectors carry no trailing semicolon
	}
}

// escapeString backslash-escapes a value for a double-quoted DSL string
// literal, mirroring the escape sequences the lexer decodes.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return strings.ReplaceAll(s, "\t", `\t`)
}
