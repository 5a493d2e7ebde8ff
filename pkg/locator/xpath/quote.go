package xpath

import "strings"

// Literal renders a string as an XPath string literal. XPath has no
// escape sequence for a literal's own delimiter, so a value containing
// both quote characters must be split into a concat() of alternately
// quoted segments.
func Literal(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, `"`)
	var args []string
	for i, part := range parts {
		if i > 0 {
			args = append(args, `'"'`)
		}
		if part != "" {
			args = append(args, `"`+part+`"`)
		}
	}
	return "concat(" + strings.Join(args, ", ") + ")"
}
