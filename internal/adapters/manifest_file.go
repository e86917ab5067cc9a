package adapters

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"projgen/internal/manifest"
	"projgen/internal/ports"
)

// ManifestFileName is the manifest looked for when a directory is given.
const ManifestFileName = "Project.yaml"

const manifestCacheSize = 256

type manifestCacheEntry struct {
	modTime time.Time
	project manifest.Project
}

// ManifestFileAdapter loads Project.yaml files. Parsed manifests are cached
// until the file's modification time changes.
type ManifestFileAdapter struct {
	cache *lru.Cache[string, manifestCacheEntry]
}

func NewManifestFileAdapter() *ManifestFileAdapter {
	cache, err := lru.New[string, manifestCacheEntry](manifestCacheSize)
	if err != nil {
		// Only returned for a non-positive size.
		panic(err)
	}
	return &ManifestFileAdapter{cache: cache}
}

func (a *ManifestFileAdapter) LoadProject(path string) (manifest.Project, error) {
	info, err := os.Stat(path)
	if err != nil {
		return manifest.Project{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found: " + path).
			WithCause(err)
	}
	if info.IsDir() {
		return a.LoadProject(filepath.Join(path, ManifestFileName))
	}
	if entry, ok := a.cache.Get(path); ok && entry.modTime.Equal(info.ModTime()) {
		log.Debug().Str("path", path).Msg("manifest served from cache")
		return entry.project, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return manifest.Project{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read manifest file: " + path).
			WithCause(err)
	}
	var project manifest.Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		var codingErr *manifest.CodingError
		if errors.As(err, &codingErr) {
			return manifest.Project{}, fmt.Errorf("%s: %w", path, codingErr)
		}
		return manifest.Project{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest yaml: " + path).
			WithCause(err)
	}
	a.cache.Add(path, manifestCacheEntry{modTime: info.ModTime(), project: project})
	log.Debug().
		Str("path", path).
		Int("targets", len(project.Targets)).
		Msg("manifest loaded")
	return project, nil
}

var _ ports.ManifestLoaderPort = (*ManifestFileAdapter)(nil)
