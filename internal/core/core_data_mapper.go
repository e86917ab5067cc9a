package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"projgen/internal/manifest"
	"projgen/internal/ports"
	"projgen/internal/types"
)

type CoreDataModelMapper struct {
	versions ports.CoreDataVersionPort
}

func NewCoreDataModelMapper(versions ports.CoreDataVersionPort) CoreDataModelMapper {
	return CoreDataModelMapper{versions: versions}
}

// Map resolves the model path and determines its versions. An explicit
// current version wins over the bundle's .xccurrentversion file; without
// either, the current version is the bundle name without extension.
func (m CoreDataModelMapper) Map(model manifest.CoreDataModel, paths ports.PathResolverPort) (types.CoreDataModel, error) {
	path, err := paths.Resolve(model.Path)
	if err != nil {
		return types.CoreDataModel{}, err
	}
	versions, err := m.versions.Versions(path)
	if err != nil {
		return types.CoreDataModel{}, err
	}
	current := strings.TrimSpace(model.CurrentVersion)
	if current == "" {
		version, found, err := m.versions.CurrentVersion(path)
		if err != nil {
			return types.CoreDataModel{}, err
		}
		if found {
			current = version
		} else {
			current = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
	}
	if current == "" {
		return types.CoreDataModel{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("unable to determine the current version of %s", path))
	}
	return types.CoreDataModel{
		Path:           path,
		Versions:       versions,
		CurrentVersion: current,
	}, nil
}
