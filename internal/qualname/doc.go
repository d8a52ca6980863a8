// Package qualname models fully-qualified program identifiers: a Package (an ordered, non-empty list of namespace segments) and a Name (a Package plus an ordered,
// non-empty list of possibly-nested declaration segments, ex: "Outer.Inner").
//
// Values are built only through ParsePackage/ParseName (or their Must variants), which split a dot-separated string and validate it. All validation happens at
// construction; rendering never fails:
//
//	pkg := qualname.MustPackage("androidx.compose.runtime")
//	key := qualname.MustName(pkg, "CompositionLocal.Key")
//	key.QualifiedName()     // "androidx.compose.runtime.CompositionLocal.Key"
//	key.InternalClassName() // "androidx/compose/runtime/CompositionLocal.Key"
//	key.ShortName()         // "Key"
//
// Malformed input (empty string, leading/trailing/doubled '.', or a '/' in a segment) returns a *FormatError that matches ErrInvalidFormat with errors.Is. Such input
// is a configuration defect and is expected to be caught during development.
//
// Package and Name are immutable and safe for concurrent use.
package qualname
