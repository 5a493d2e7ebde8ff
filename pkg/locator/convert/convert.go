// Package convert is the conversion facade: it routes any accepted
// locator form to any other. The canonical map is the hub; every
// conversion either starts there, ends there, or passes through it.
package convert

import (
	"fmt"
	"strings"

	"github.com/devicelab-dev/uilocator/pkg/locator"
	"github.com/devicelab-dev/uilocator/pkg/locator/uiselector"
	"github.com/devicelab-dev/uilocator/pkg/locator/xpath"
)

// Input is one of the accepted locator forms: XPath text, UiSelector
// DSL text, a canonical map, or a fluent builder. The set is closed.
type Input interface {
	locatorInput()
}

// XPath is an XPath expression string.
type XPath string

// Selector is UiSelector builder DSL source text.
type Selector string

type mapInput struct{ m *locator.Map }

type builderInput struct{ b *uiselector.Builder }

func (XPath) locatorInput()        {}
func (Selector) locatorInput()     {}
func (mapInput) locatorInput()     {}
func (builderInput) locatorInput() {}

// FromMap wraps a canonical map as converter input.
func FromMap(m *locator.Map) Input { return mapInput{m: m} }

// FromBuilder wraps a fluent builder as converter input.
func FromBuilder(b *uiselector.Builder) Input { return builderInput{b: b} }

// Detect classifies raw locator text as XPath or UiSelector DSL. Text
// wrapped in single quotes is unwrapped first, since locators pasted
// from capability logs often arrive that way.
func Detect(s string) (Input, error) {
	t := strings.TrimSpace(s)
	if len(t) >= 2 && t[0] == '\'' && t[len(t)-1] == '\'' {
		t = strings.TrimSpace(t[1 : len(t)-1])
	}
	switch {
	case strings.HasPrefix(t, "/") || strings.HasPrefix(t, "("):
		return XPath(t), nil
	case strings.HasPrefix(t, "new UiSelector") || strings.HasPrefix(t, "."):
		return Selector(t), nil
	}
	return nil, &locator.UnsupportedFormatError{Got: fmt.Sprintf("unrecognized locator text %q", s)}
}

// Converter translates between locator forms. The zero value is ready
// to use and safe for concurrent use.
type Converter struct{}

// New returns a Converter.
func New() *Converter { return &Converter{} }

// ToMap converts any input form to the canonical map. All routes into
// the map are strict: anything the map cannot represent is an error.
func (c *Converter) ToMap(in Input) (*locator.Map, error) {
	switch v := in.(type) {
	case XPath:
		return xpath.Parse(string(v))
	case Selector:
		return uiselector.Parse(string(v)).ToMap()
	case mapInput:
		return v.m, nil
	case builderInput:
		return v.b.Selector().ToMap()
	}
	return nil, &locator.UnsupportedFormatError{Got: fmt.Sprintf("%T", in)}
}

// ToXPath converts any input form to XPath. XPath input passes through
// unchanged; DSL input converts directly, skipping inexpressible
// methods with a warning.
func (c *Converter) ToXPath(in Input) (string, error) {
	switch v := in.(type) {
	case XPath:
		return string(v), nil
	case Selector:
		return xpath.FromSelector(uiselector.Parse(string(v))), nil
	case mapInput:
		return xpath.FromMap(v.m)
	case builderInput:
		return xpath.FromSelector(v.b.Selector()), nil
	}
	return "", &locator.UnsupportedFormatError{Got: fmt.Sprintf("%T", in)}
}

// ToUiSelector converts any input form to DSL source text. DSL input is
// normalized through a parse and re-render, so the output always
// carries the canonical shape: constructor prefix, trailing semicolon,
// and the no-op selector for malformed text.
func (c *Converter) ToUiSelector(in Input) (string, error) {
	switch v := in.(type) {
	case XPath:
		m, err := xpath.Parse(string(v))
		if err != nil {
			return "", err
		}
		return uiselector.Render(m)
	case Selector:
		return uiselector.Parse(string(v)).String(), nil
	case mapInput:
		return uiselector.Render(v.m)
	case builderInput:
		return v.b.String(), nil
	}
	return "", &locator.UnsupportedFormatError{Got: fmt.Sprintf("%T", in)}
}

// Validate converts the input to map form and checks the structural
// invariants.
func (c *Converter) Validate(in Input) error {
	m, err := c.ToMap(in)
	if err != nil {
		return err
	}
	return locator.Validate(m)
}
