package composenames

import "github.com/codalotl/lintnames/internal/qualname"

// RuntimePackage is the compose runtime package.
var RuntimePackage = qualname.MustPackage("androidx.compose.runtime")

// Well-known declarations in RuntimePackage.
var (
	Composable       = qualname.MustName(RuntimePackage, "Composable")
	CompositionLocal = qualname.MustName(RuntimePackage, "CompositionLocal")
	Remember         = qualname.MustName(RuntimePackage, "remember")
)

// Runtime returns the well-known names in RuntimePackage.
func Runtime() []qualname.Name {
	return []qualname.Name{Composable, CompositionLocal, Remember}
}
