package qualname

// Style selects the textual encoding used when rendering a Package or Name.
type Style int

const (
	// JavaStyle separates every segment with '.' (ex: "a.b.Outer.Inner"). It is the zero value.
	JavaStyle Style = iota

	// InternalClassStyle separates package segments with '/' and nested name segments with '.' (ex: "a/b/Outer.Inner"). This is the form class-metadata readers
	// use, and must be reproduced exactly to match names extracted from compiled metadata.
	InternalClassStyle
)

// String returns the name of the style.
func (s Style) String() string {
	switch s {
	case JavaStyle:
		return "java"
	case InternalClassStyle:
		return "internal"
	default:
		return "unknown"
	}
}

// ParseStyle returns the Style whose String is s. ok is false for unknown values.
func ParseStyle(s string) (style Style, ok bool) {
	switch s {
	case "java":
		return JavaStyle, true
	case "internal":
		return InternalClassStyle, true
	default:
		return JavaStyle, false
	}
}

// packageSeparator is the separator placed between package segments, and between the package and the name.
func (s Style) packageSeparator() string {
	if s == InternalClassStyle {
		return "/"
	}
	return "."
}
