package adapters

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"projgen/internal/manifest"
	"projgen/internal/ports"
	"projgen/internal/types"
)

var (
	errEmptyPath     = errors.New("path is empty")
	errRootUndefined = errors.New("root directory is not known")
)

// GeneratorPaths resolves manifest paths relative to the directory of the
// manifest being loaded, or to the root directory for "//" paths.
type GeneratorPaths struct {
	ManifestDirectory string
	RootDirectory     string
}

func NewGeneratorPaths(manifestDirectory string, rootDirectory string) GeneratorPaths {
	return GeneratorPaths{
		ManifestDirectory: filepath.Clean(manifestDirectory),
		RootDirectory:     rootDirectory,
	}
}

func (p GeneratorPaths) Resolve(path manifest.Path) (string, error) {
	pathname := strings.TrimSpace(path.Pathname)
	if pathname == "" {
		return "", &types.PathResolutionError{Path: path.String(), Cause: errEmptyPath}
	}
	switch path.Type {
	case manifest.PathRelativeToRoot:
		if p.RootDirectory == "" {
			return "", &types.PathResolutionError{Path: path.String(), Cause: errRootUndefined}
		}
		return filepath.Join(p.RootDirectory, pathname), nil
	default:
		if filepath.IsAbs(pathname) {
			return filepath.Clean(pathname), nil
		}
		return filepath.Join(p.ManifestDirectory, pathname), nil
	}
}

// RootMarkers are the entries that mark a directory as the root for "//"
// paths.
var RootMarkers = []string{".git", "projgen.yaml"}

// FindRootDirectory walks up from start to the closest directory that
// contains one of RootMarkers. It returns "" when there is none.
func FindRootDirectory(start string) string {
	dir := filepath.Clean(start)
	for {
		for _, marker := range RootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

var _ ports.PathResolverPort = GeneratorPaths{}
