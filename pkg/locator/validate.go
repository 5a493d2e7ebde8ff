package locator

// MaxDepth caps hierarchical nesting during validation and parsing.
// Real locators rarely nest past a handful of levels; the cap guards
// against pathological input.
const MaxDepth = 64

var textFamily = map[Key]bool{
	KeyText:           true,
	KeyTextContains:   true,
	KeyTextStartsWith: true,
	KeyTextMatches:    true,
}

var descriptionFamily = map[Key]bool{
	KeyDescription:           true,
	KeyDescriptionContains:   true,
	KeyDescriptionStartsWith: true,
	KeyDescriptionMatches:    true,
}

// Validate checks the structural invariants of a locator map without
// mutating it: the map is non-empty, at most one text-family and one
// description-family key is present, every value matches its registered
// kind, and hierarchical values recursively satisfy the same rules.
func Validate(m *Map) error {
	return validate(m, 0)
}

func validate(m *Map, depth int) error {
	if depth > MaxDepth {
		return &ValidationError{Message: "selector nesting too deep"}
	}
	if m == nil || m.Len() == 0 {
		return &ValidationError{Message: "locator map is empty"}
	}

	var textKey, descKey Key
	for _, k := range m.Keys() {
		attr, ok := AttributeFor(k)
		if !ok {
			return &ValidationError{Key: k, Message: "unknown attribute"}
		}
		v, _ := m.Get(k)
		if v.Kind != attr.Kind {
			return &ValidationError{Key: k, Message: "value kind does not match attribute"}
		}
		if attr.Hierarchical {
			if v.Sel == nil {
				return &ValidationError{Key: k, Message: "hierarchical value must be a locator map"}
			}
			if err := validate(v.Sel, depth+1); err != nil {
				return err
			}
		}
		if textFamily[k] {
			if textKey != "" {
				return &ValidationError{Key: k, Message: "conflicts with " + string(textKey)}
			}
			textKey = k
		}
		if descriptionFamily[k] {
			if descKey != "" {
				return &ValidationError{Key: k, Message: "conflicts with " + string(descKey)}
			}
			descKey = k
		}
	}
	return nil
}
