package uiselector

// Builder constructs selectors programmatically with the same fluent
// chain as the textual DSL:
//
//	uiselector.NewBuilder().ClassName("android.widget.Button").Clickable(true)
//
// Every method appends one call and returns the builder, so chains read
// like the Java original. The builder is not safe for concurrent use.
type Builder struct {
	sel Selector
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) call(name string, arg Arg) *Builder {
	b.sel.Calls = append(b.sel.Calls, MethodCall{Name: name, Args: []Arg{arg}})
	return b
}

// Text matches exact element text.
func (b *Builder) Text(s string) *Builder { return b.call("text", StringArg(s)) }

// TextContains matches a substring of the element text.
func (b *Builder) TextContains(s string) *Builder { return b.call("textContains", StringArg(s)) }

// TextStartsWith matches a prefix of the element text.
func (b *Builder) TextStartsWith(s string) *Builder { return b.call("textStartsWith", StringArg(s)) }

// TextMatches matches the element text against a regular expression.
func (b *Builder) TextMatches(s string) *Builder { return b.call("textMatches", StringArg(s)) }

// Description matches the exact content description.
func (b *Builder) Description(s string) *Builder { return b.call("description", StringArg(s)) }

// DescriptionContains matches a substring of the content description.
func (b *Builder) DescriptionContains(s string) *Builder {
	return b.call("descriptionContains", StringArg(s))
}

// DescriptionStartsWith matches a prefix of the content description.
func (b *Builder) DescriptionStartsWith(s string) *Builder {
	return b.call("descriptionStartsWith", StringArg(s))
}

// DescriptionMatches matches the content description against a regex.
func (b *Builder) DescriptionMatches(s string) *Builder {
	return b.call("descriptionMatches", StringArg(s))
}

// ResourceID matches the resource ID exactly.
func (b *Builder) ResourceID(s string) *Builder { return b.call("resourceId", StringArg(s)) }

// ResourceIDMatches matches the resource ID against a regex.
func (b *Builder) ResourceIDMatches(s string) *Builder {
	return b.call("resourceIdMatches", StringArg(s))
}

// PackageName matches the package name exactly.
func (b *Builder) PackageName(s string) *Builder { return b.call("packageName", StringArg(s)) }

// PackageNameMatches matches the package name against a regex.
func (b *Builder) PackageNameMatches(s string) *Builder {
	return b.call("packageNameMatches", StringArg(s))
}

// ClassName matches the widget class exactly.
func (b *Builder) ClassName(s string) *Builder { return b.call("className", StringArg(s)) }

// ClassNameMatches matches the widget class against a regex.
func (b *Builder) ClassNameMatches(s string) *Builder {
	return b.call("classNameMatches", StringArg(s))
}

// Checkable filters on the checkable property.
func (b *Builder) Checkable(v bool) *Builder { return b.call("checkable", BoolArg(v)) }

// Checked filters on the checked state.
func (b *Builder) Checked(v bool) *Builder { return b.call("checked", BoolArg(v)) }

// Clickable filters on the clickable property.
func (b *Builder) Clickable(v bool) *Builder { return b.call("clickable", BoolArg(v)) }

// Enabled filters on the enabled state.
func (b *Builder) Enabled(v bool) *Builder { return b.call("enabled", BoolArg(v)) }

// Focusable filters on the focusable property.
func (b *Builder) Focusable(v bool) *Builder { return b.call("focusable", BoolArg(v)) }

// Focused filters on the focused state.
func (b *Builder) Focused(v bool) *Builder { return b.call("focused", BoolArg(v)) }

// LongClickable filters on the long-clickable property.
func (b *Builder) LongClickable(v bool) *Builder { return b.call("longClickable", BoolArg(v)) }

// Scrollable filters on the scrollable property.
func (b *Builder) Scrollable(v bool) *Builder { return b.call("scrollable", BoolArg(v)) }

// Selected filters on the selected state.
func (b *Builder) Selected(v bool) *Builder { return b.call("selected", BoolArg(v)) }

// Password filters on the password-field property.
func (b *Builder) Password(v bool) *Builder { return b.call("password", BoolArg(v)) }

// Index matches the element at a 0-based position among its siblings.
func (b *Builder) Index(n int) *Builder { return b.call("index", IntArg(n)) }

// Instance matches the n-th (0-based) element matching the selector.
func (b *Builder) Instance(n int) *Builder { return b.call("instance", IntArg(n)) }

// ChildSelector narrows the match to a child of the current element.
func (b *Builder) ChildSelector(c *Builder) *Builder {
	return b.call("childSelector", SelectorArg(c.Selector()))
}

// FromParent matches a sibling by going up to the parent and searching
// its descendants.
func (b *Builder) FromParent(c *Builder) *Builder {
	return b.call("fromParent", SelectorArg(c.Selector()))
}

// Sibling matches a following sibling of the current element.
func (b *Builder) Sibling(c *Builder) *Builder {
	return b.call("sibling", SelectorArg(c.Selector()))
}

// Selector returns the accumulated selector.
func (b *Builder) Selector() *Selector { return &b.sel }

// String renders the accumulated chain as DSL source text.
func (b *Builder) String() string { return b.sel.String() }
