package adapters

import (
	"io/fs"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"projgen/internal/ports"
	"projgen/internal/types"
)

type WorkspaceAdapter struct{}

func NewWorkspaceAdapter() WorkspaceAdapter {
	return WorkspaceAdapter{}
}

// FindManifests returns every Project.yaml below root in walk order.
func (a WorkspaceAdapter) FindManifests(root string) ([]string, error) {
	var paths []string
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace root is empty")
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && shouldSkipWorkspaceDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == ManifestFileName {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan workspace").
			WithCause(err)
	}
	return paths, nil
}

func shouldSkipWorkspaceDir(name string) bool {
	switch name {
	case types.DerivedDirectoryName, ".git", ".build", "build", "DerivedData", "node_modules":
		return true
	default:
		return len(name) > 1 && name[0] == '.'
	}
}

var _ ports.ManifestDiscoveryPort = WorkspaceAdapter{}
