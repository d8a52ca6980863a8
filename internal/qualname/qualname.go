package qualname

import (
	"slices"
	"strings"
)

// Package is a namespace, ex: "androidx.compose.runtime". The zero value has no segments and renders as "".
type Package struct {
	segments []string
}

// Name identifies a possibly-nested declaration within a Package, ex: "CompositionLocal.Key" in "androidx.compose.runtime". The zero value renders as "".
type Name struct {
	pkg      Package
	segments []string
}

// ParsePackage splits dotted on '.' into a Package. It returns a *FormatError (matching ErrInvalidFormat) if dotted is empty, has an empty segment, or has a segment
// containing '/'.
func ParsePackage(dotted string) (Package, error) {
	segs, err := split(dotted, 0, len(dotted), '.', '/')
	if err != nil {
		return Package{}, err
	}
	return Package{segments: segs}, nil
}

// MustPackage is like ParsePackage but panics on malformed input. It is intended for package-level catalogs of well-known names.
func MustPackage(dotted string) Package {
	p, err := ParsePackage(dotted)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseName splits dotted on '.' into the name segments of a declaration in pkg. Multiple segments denote a nested declaration ("Outer.Inner"). The same validation
// as ParsePackage applies. pkg must not be the zero Package.
func ParseName(pkg Package, dotted string) (Name, error) {
	if pkg.IsZero() {
		return Name{}, &FormatError{Input: dotted, Offset: -1, Message: "name has no package"}
	}
	segs, err := split(dotted, 0, len(dotted), '.', '/')
	if err != nil {
		return Name{}, err
	}
	return Name{pkg: pkg, segments: segs}, nil
}

// MustName is like ParseName but panics on malformed input.
func MustName(pkg Package, dotted string) Name {
	n, err := ParseName(pkg, dotted)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseInternalClassName is the inverse of Name.InternalClassName: the package is everything before the last '/' (segments separated by '/'), and the name is
// everything after it (segments separated by '.'). Ex: "a/b/Outer.Inner" -> package "a.b", name "Outer.Inner".
func ParseInternalClassName(s string) (Name, error) {
	idx := strings.LastIndexByte(s, '/')
	if idx < 0 {
		if s == "" {
			return Name{}, &FormatError{Input: s, Offset: -1, Message: "empty identifier"}
		}
		return Name{}, &FormatError{Input: s, Offset: -1, Message: "missing package separator '/'"}
	}
	pkgSegs, err := split(s, 0, idx, '/', '.')
	if err != nil {
		return Name{}, err
	}
	nameSegs, err := split(s, idx+1, len(s), '.', '/')
	if err != nil {
		return Name{}, err
	}
	return Name{pkg: Package{segments: pkgSegs}, segments: nameSegs}, nil
}

// split splits s[start:end] on sep. Segments may not be empty or contain forbidden. Errors report offsets relative to s.
func split(s string, start, end int, sep, forbidden byte) ([]string, error) {
	if start == end {
		return nil, &FormatError{Input: s, Offset: -1, Message: "empty identifier"}
	}
	segs := make([]string, 0, strings.Count(s[start:end], string(sep))+1)
	segStart := start
	for i := start; i <= end; i++ {
		if i < end && s[i] == forbidden {
			return nil, &FormatError{Input: s, Offset: i, Message: "unexpected '" + string(forbidden) + "'"}
		}
		if i < end && s[i] != sep {
			continue
		}
		if i == segStart {
			return nil, &FormatError{Input: s, Offset: i, Message: "empty segment"}
		}
		segs = append(segs, s[segStart:i])
		segStart = i + 1
	}
	return segs, nil
}

// IsZero reports whether p is the zero Package.
func (p Package) IsZero() bool {
	return len(p.segments) == 0
}

// Segments returns a copy of p's segments.
func (p Package) Segments() []string {
	return slices.Clone(p.segments)
}

// Render joins p's segments using style's package separator: '.' for JavaStyle, '/' for InternalClassStyle.
func (p Package) Render(style Style) string {
	return strings.Join(p.segments, style.packageSeparator())
}

// String returns p rendered in JavaStyle.
func (p Package) String() string {
	return p.Render(JavaStyle)
}

// Equal reports whether p and other have the same segments.
func (p Package) Equal(other Package) bool {
	return slices.Equal(p.segments, other.segments)
}

// Package returns the package n is declared in.
func (n Name) Package() Package {
	return n.pkg
}

// Segments returns a copy of n's name segments (not including the package).
func (n Name) Segments() []string {
	return slices.Clone(n.segments)
}

// ShortName returns the last name segment: the simple identifier as it appears in source. Ex: "Key" for "CompositionLocal.Key".
func (n Name) ShortName() string {
	if len(n.segments) == 0 {
		return ""
	}
	return n.segments[len(n.segments)-1]
}

// QualifiedName returns the dot-separated fully qualified name. Ex: "a.b.Outer.Inner".
func (n Name) QualifiedName() string {
	return n.Format(JavaStyle)
}

// InternalClassName returns the class-metadata form of n: package segments joined by '/', then '/', then name segments joined by '.'. Ex: "a/b/Outer.Inner".
func (n Name) InternalClassName() string {
	return n.Format(InternalClassStyle)
}

// Format renders n in style. Name segments are always joined with '.'; style controls the package separator and the separator between package and name.
func (n Name) Format(style Style) string {
	if len(n.segments) == 0 {
		return ""
	}
	sep := style.packageSeparator()

	var b strings.Builder
	for _, s := range n.pkg.segments {
		b.WriteString(s)
		b.WriteString(sep)
	}
	for i, s := range n.segments {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s)
	}
	return b.String()
}

// String returns n.QualifiedName().
func (n Name) String() string {
	return n.QualifiedName()
}

// IsNested reports whether n names a declaration nested in another (more than one name segment).
func (n Name) IsNested() bool {
	return len(n.segments) > 1
}

// Outer returns the declaration that directly encloses n. ok is false if n is not nested.
func (n Name) Outer() (outer Name, ok bool) {
	if !n.IsNested() {
		return Name{}, false
	}
	return Name{pkg: n.pkg, segments: n.segments[:len(n.segments)-1]}, true
}

// Equal reports whether n and other identify the same declaration.
func (n Name) Equal(other Name) bool {
	return n.pkg.Equal(other.pkg) && slices.Equal(n.segments, other.segments)
}
