package locator

import "fmt"

// StrictConversionError reports an attribute that has no canonical
// mapping during a conversion into map form. Conversions into the
// canonical map must be lossless, so an unmapped name is an error rather
// than a skip.
type StrictConversionError struct {
	Name       string // offending method or key name
	Suggestion string // closest known name, "" if none
	Reason     string // optional detail, e.g. wrong argument arity
}

func (e *StrictConversionError) Error() string {
	msg := fmt.Sprintf("method %q is not implemented", e.Name)
	if e.Reason != "" {
		msg = fmt.Sprintf("method %q: %s", e.Name, e.Reason)
	}
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (did you mean %q?)", msg, e.Suggestion)
	}
	return msg
}

// InvalidXPathError reports XPath text outside the restricted shape this
// engine produces. The XPath parser's precondition is that the input
// claims to be our own output, so this signals a contract violation.
type InvalidXPathError struct {
	XPath    string
	Fragment string // offending fragment
	Reason   string
}

func (e *InvalidXPathError) Error() string {
	if e.Fragment != "" {
		return fmt.Sprintf("invalid xpath %q: %s at %q", e.XPath, e.Reason, e.Fragment)
	}
	return fmt.Sprintf("invalid xpath %q: %s", e.XPath, e.Reason)
}

// ValidationError reports a locator map that violates the structural
// invariants: empty map, conflicting text/description keys, or a
// hierarchical key whose value is not itself a map.
type ValidationError struct {
	Key     Key // offending key, "" when the map as a whole is invalid
	Message string
}

func (e *ValidationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("invalid locator: %s: %s", e.Key, e.Message)
	}
	return "invalid locator: " + e.Message
}

// UnsupportedFormatError reports facade input that matches none of the
// recognized locator formats.
type UnsupportedFormatError struct {
	Got string // description of what was received
}

func (e *UnsupportedFormatError) Error() string {
	return "unsupported locator format: " + e.Got
}
