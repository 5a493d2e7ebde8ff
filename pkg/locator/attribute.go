// Package locator defines the canonical attribute map that all locator
// conversions pass through, the closed registry of supported attributes,
// and the validation rules for well-formed locators.
package locator

import (
	"github.com/agext/levenshtein"
)

// Key identifies one canonical locator attribute. The set of keys is
// closed; these spellings are the wire format used in map locators.
type Key string

const (
	KeyText           Key = "text"
	KeyTextContains   Key = "textContains"
	KeyTextStartsWith Key = "textStartsWith"
	KeyTextMatches    Key = "textMatches"

	KeyDescription           Key = "content-desc"
	KeyDescriptionContains   Key = "content-descContains"
	KeyDescriptionStartsWith Key = "content-descStartsWith"
	KeyDescriptionMatches    Key = "content-descMatches"

	KeyResourceID        Key = "resource-id"
	KeyResourceIDMatches Key = "resource-idMatches"
	KeyPackage           Key = "package"
	KeyPackageMatches    Key = "packageMatches"

	KeyClass        Key = "class"
	KeyClassMatches Key = "classMatches"

	KeyCheckable     Key = "checkable"
	KeyChecked       Key = "checked"
	KeyClickable     Key = "clickable"
	KeyEnabled       Key = "enabled"
	KeyFocusable     Key = "focusable"
	KeyFocused       Key = "focused"
	KeyLongClickable Key = "long-clickable"
	KeyScrollable    Key = "scrollable"
	KeySelected      Key = "selected"
	KeyPassword      Key = "password"

	KeyIndex    Key = "index"
	KeyInstance Key = "instance"

	KeyChildSelector Key = "childSelector"
	KeyFromParent    Key = "fromParent"
	KeySibling       Key = "sibling"
)

// ValueKind tags the type a Value carries.
type ValueKind int

const (
	KindString ValueKind = iota
	KindBool
	KindInt
	KindSelector // nested locator map, hierarchical keys only
)

// Attribute describes one registry entry: how a canonical key appears in
// the UiSelector builder DSL and in XPath predicates.
type Attribute struct {
	Key          Key
	Method       string // UiSelector builder method name
	XPathAttr    string // attribute name inside XPath predicates, "" for positional/hierarchical
	XPathFunc    string // "", "contains", "starts-with" or "matches"
	Kind         ValueKind
	Hierarchical bool
}

// attributes is the registry in canonical order. It is built once and
// never mutated.
var attributes = []Attribute{
	{Key: KeyText, Method: "text", XPathAttr: "text", Kind: KindString},
	{Key: KeyTextContains, Method: "textContains", XPathAttr: "text", XPathFunc: "contains", Kind: KindString},
	{Key: KeyTextStartsWith, Method: "textStartsWith", XPathAttr: "text", XPathFunc: "starts-with", Kind: KindString},
	{Key: KeyTextMatches, Method: "textMatches", XPathAttr: "text", XPathFunc: "matches", Kind: KindString},

	{Key: KeyDescription, Method: "description", XPathAttr: "content-desc", Kind: KindString},
	{Key: KeyDescriptionContains, Method: "descriptionContains", XPathAttr: "content-desc", XPathFunc: "contains", Kind: KindString},
	{Key: KeyDescriptionStartsWith, Method: "descriptionStartsWith", XPathAttr: "content-desc", XPathFunc: "starts-with", Kind: KindString},
	{Key: KeyDescriptionMatches, Method: "descriptionMatches", XPathAttr: "content-desc", XPathFunc: "matches", Kind: KindString},

	{Key: KeyResourceID, Method: "resourceId", XPathAttr: "resource-id", Kind: KindString},
	{Key: KeyResourceIDMatches, Method: "resourceIdMatches", XPathAttr: "resource-id", XPathFunc: "matches", Kind: KindString},
	{Key: KeyPackage, Method: "packageName", XPathAttr: "package", Kind: KindString},
	{Key: KeyPackageMatches, Method: "packageNameMatches", XPathAttr: "package", XPathFunc: "matches", Kind: KindString},

	{Key: KeyClass, Method: "className", XPathAttr: "class", Kind: KindString},
	{Key: KeyClassMatches, Method: "classNameMatches", XPathAttr: "class", XPathFunc: "matches", Kind: KindString},

	{Key: KeyCheckable, Method: "checkable", XPathAttr: "checkable", Kind: KindBool},
	{Key: KeyChecked, Method: "checked", XPathAttr: "checked", Kind: KindBool},
	{Key: KeyClickable, Method: "clickable", XPathAttr: "clickable", Kind: KindBool},
	{Key: KeyEnabled, Method: "enabled", XPathAttr: "enabled", Kind: KindBool},
	{Key: KeyFocusable, Method: "focusable", XPathAttr: "focusable", Kind: KindBool},
	{Key: KeyFocused, Method: "focused", XPathAttr: "focused", Kind: KindBool},
	{Key: KeyLongClickable, Method: "longClickable", XPathAttr: "long-clickable", Kind: KindBool},
	{Key: KeyScrollable, Method: "scrollable", XPathAttr: "scrollable", Kind: KindBool},
	{Key: KeySelected, Method: "selected", XPathAttr: "selected", Kind: KindBool},
	{Key: KeyPassword, Method: "password", XPathAttr: "password", Kind: KindBool},

	{Key: KeyIndex, Method: "index", Kind: KindInt},
	{Key: KeyInstance, Method: "instance", Kind: KindInt},

	{Key: KeyChildSelector, Method: "childSelector", Kind: KindSelector, Hierarchical: true},
	{Key: KeyFromParent, Method: "fromParent", Kind: KindSelector, Hierarchical: true},
	{Key: KeySibling, Method: "sibling", Kind: KindSelector, Hierarchical: true},
}

var (
	byKey       = make(map[Key]Attribute, len(attributes))
	byMethod    = make(map[string]Attribute, len(attributes))
	byXPath     = make(map[string]Attribute, len(attributes))
	byXPathFunc = make(map[string]Attribute, len(attributes))
)

func init() {
	for _, a := range attributes {
		byKey[a.Key] = a
		byMethod[a.Method] = a
		if a.XPathAttr != "" && a.XPathFunc == "" {
			byXPath[a.XPathAttr] = a
		}
		if a.XPathFunc != "" {
			byXPathFunc[a.XPathFunc+"@"+a.XPathAttr] = a
		}
	}
}

// AttributeFor returns the registry entry for a canonical key.
func AttributeFor(k Key) (Attribute, bool) {
	a, ok := byKey[k]
	return a, ok
}

// AttributeForMethod returns the registry entry for a UiSelector builder
// method name.
func AttributeForMethod(method string) (Attribute, bool) {
	a, ok := byMethod[method]
	return a, ok
}

// AttributeForXPathName returns the equality-predicate entry for an XPath
// attribute name such as "text" or "content-desc".
func AttributeForXPathName(name string) (Attribute, bool) {
	a, ok := byXPath[name]
	return a, ok
}

// AttributeForXPathFunc returns the entry for a function predicate such
// as contains(@text, ...). Only the combinations the registry lists are
// valid; contains and starts-with exist for text and content-desc only.
func AttributeForXPathFunc(fn, name string) (Attribute, bool) {
	a, ok := byXPathFunc[fn+"@"+name]
	return a, ok
}

// Keys returns all canonical keys in registry order.
func Keys() []Key {
	out := make([]Key, len(attributes))
	for i, a := range attributes {
		out[i] = a.Key
	}
	return out
}

// maxSuggestDistance bounds how far a typo may be from a known name
// before we stop suggesting anything.
const maxSuggestDistance = 3

// SuggestMethod returns the closest known builder method name, or "" if
// nothing is plausibly close.
func SuggestMethod(name string) string {
	return suggest(name, func(a Attribute) string { return a.Method })
}

// SuggestKey returns the closest known canonical key spelling, or "".
func SuggestKey(name string) string {
	return suggest(name, func(a Attribute) string { return string(a.Key) })
}

func suggest(name string, pick func(Attribute) string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, a := range attributes {
		candidate := pick(a)
		d := levenshtein.Distance(name, candidate, nil)
		if d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	if bestDist > maxSuggestDistance {
		return ""
	}
	return best
}
