package ports

import "projgen/internal/manifest"

// PathResolverPort turns manifest-relative paths into absolute paths.
// Implementations must be free of side effects and safe for concurrent
// use.
type PathResolverPort interface {
	// Resolve returns the absolute path, or a *types.PathResolutionError.
	Resolve(path manifest.Path) (string, error)
}
