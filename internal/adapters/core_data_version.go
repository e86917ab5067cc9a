package adapters

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"projgen/internal/ports"
	"projgen/internal/types"
)

const (
	currentVersionFileName = ".xccurrentversion"
	currentVersionKey      = "_XCCurrentVersionName"
	modelVersionExtension  = ".xcdatamodel"
)

// CoreDataVersionAdapter reads version information out of .xcdatamodeld
// bundles.
type CoreDataVersionAdapter struct {
	Codec ports.PlistCodecPort
}

func NewCoreDataVersionAdapter(codec ports.PlistCodecPort) CoreDataVersionAdapter {
	return CoreDataVersionAdapter{Codec: codec}
}

// Versions returns the sorted version names of the bundle. A missing bundle
// or a bundle that is not a directory has no versions.
func (a CoreDataVersionAdapter) Versions(modelPath string) ([]string, error) {
	entries, err := os.ReadDir(modelPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || isNotDirectory(modelPath) {
			return nil, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list core data model " + modelPath).
			WithCause(err)
	}
	var versions []string
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != modelVersionExtension {
			continue
		}
		versions = append(versions, strings.TrimSuffix(entry.Name(), modelVersionExtension))
	}
	sort.Strings(versions)
	return versions, nil
}

func (a CoreDataVersionAdapter) CurrentVersion(modelPath string) (string, bool, error) {
	path := filepath.Join(modelPath, currentVersionFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || isNotDirectory(modelPath) {
			log.Debug().Str("path", path).Msg("no current version file")
			return "", false, nil
		}
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read " + path).
			WithCause(err)
	}
	content, err := a.Codec.Decode(data)
	if err != nil {
		return "", false, currentVersionError(path, err)
	}
	value, ok := content.Get(currentVersionKey)
	if !ok {
		return "", false, currentVersionError(path, fmt.Errorf("missing %s", currentVersionKey))
	}
	name, ok := value.(types.PlistString)
	if !ok || strings.TrimSpace(string(name)) == "" {
		return "", false, currentVersionError(path, fmt.Errorf("%s is not a version name", currentVersionKey))
	}
	return strings.TrimSuffix(string(name), modelVersionExtension), true, nil
}

func currentVersionError(path string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("unable to read the current core data version from " + path).
		WithCause(cause)
}

func isNotDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

var _ ports.CoreDataVersionPort = CoreDataVersionAdapter{}
