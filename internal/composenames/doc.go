// Package composenames holds the well-known names that lint checks look for (ex: the Composable annotation, the remember function) and a Catalog that indexes them
// by each rendering consumers compare against.
//
// The built-in names are package-level values constructed at init; a malformed entry panics immediately rather than silently never matching. Additional names
// can be loaded from a JSON catalog file with LoadFile or Decode:
//
//	{"packages": [{"package": "androidx.compose.ui", "names": ["Modifier", "Modifier.Companion"]}]}
//
// A Catalog is immutable after construction and may be shared read-only for the life of the process.
package composenames
