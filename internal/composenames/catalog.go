package composenames

import (
	"fmt"
	"sort"
	"sync"

	"github.com/codalotl/lintnames/internal/qualname"
)

// Catalog is an immutable set of names indexed by qualified name, internal class name, and short name.
type Catalog struct {
	names      []qualname.Name // sorted by internal class name
	byInternal map[string]qualname.Name
	byShort    map[string][]qualname.Name
}

// NewCatalog returns a Catalog of names. Names must have distinct internal class names; a duplicate is an error. Zero-value names are rejected.
func NewCatalog(names ...qualname.Name) (*Catalog, error) {
	c := &Catalog{
		byInternal: make(map[string]qualname.Name, len(names)),
		byShort:    make(map[string][]qualname.Name),
	}
	for _, n := range names {
		internal := n.InternalClassName()
		if internal == "" {
			return nil, fmt.Errorf("catalog: zero name")
		}
		if _, ok := c.byInternal[internal]; ok {
			return nil, fmt.Errorf("catalog: duplicate name %q", internal)
		}
		c.byInternal[internal] = n
		c.names = append(c.names, n)
	}

	sort.Slice(c.names, func(i, j int) bool {
		return c.names[i].InternalClassName() < c.names[j].InternalClassName()
	})
	for _, n := range c.names {
		short := n.ShortName()
		c.byShort[short] = append(c.byShort[short], n)
	}
	return c, nil
}

// Merge returns a new Catalog containing the names of c and others. A name present in more than one catalog is an error.
func (c *Catalog) Merge(others ...*Catalog) (*Catalog, error) {
	all := c.Names()
	for _, o := range others {
		if o == nil {
			continue
		}
		all = append(all, o.names...)
	}
	return NewCatalog(all...)
}

// Names returns all names, sorted by internal class name.
func (c *Catalog) Names() []qualname.Name {
	if c == nil {
		return nil
	}
	out := make([]qualname.Name, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of names in c.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Lookup returns the name whose QualifiedName is qualifiedName.
//
// Distinct names can share a qualified name ("a.b.C" as package a.b.C or as class C nested in b); when that happens, ok is true and the first in sort order is
// returned. Use LookupInternal for an exact match.
func (c *Catalog) Lookup(qualifiedName string) (qualname.Name, bool) {
	if c == nil {
		return qualname.Name{}, false
	}
	for _, n := range c.names {
		if n.QualifiedName() == qualifiedName {
			return n, true
		}
	}
	return qualname.Name{}, false
}

// LookupInternal returns the name whose InternalClassName is internalName. This is the form read from compiled class metadata.
func (c *Catalog) LookupInternal(internalName string) (qualname.Name, bool) {
	if c == nil {
		return qualname.Name{}, false
	}
	n, ok := c.byInternal[internalName]
	return n, ok
}

// ByShortName returns every name whose ShortName is short, sorted by internal class name. Callers compare a simple identifier seen in source against these candidates.
func (c *Catalog) ByShortName(short string) []qualname.Name {
	if c == nil {
		return nil
	}
	matches := c.byShort[short]
	out := make([]qualname.Name, len(matches))
	copy(out, matches)
	return out
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog of built-in well-known names.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(Runtime()...)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
