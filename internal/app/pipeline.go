package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"projgen/internal/adapters"
	"projgen/internal/core"
	"projgen/internal/manifest"
	"projgen/internal/types"
)

// mappedProject is a manifest carried through every mapping stage.
type mappedProject struct {
	manifestPath string
	manifest     manifest.Project
	project      types.Project
	effects      []types.SideEffectDescriptor
}

// manifestPaths expands path into the manifests it designates. A directory
// with a Project.yaml designates that file alone; any other directory is
// searched recursively.
func (s Service) manifestPaths(path string) ([]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid manifest path " + path).
			WithCause(err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest path not found: " + path).
			WithCause(err)
	}
	if !info.IsDir() {
		return []string{abs}, nil
	}
	direct := filepath.Join(abs, adapters.ManifestFileName)
	if _, err := os.Stat(direct); err == nil {
		return []string{direct}, nil
	}
	found, err := s.Discovery.FindManifests(abs)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no " + adapters.ManifestFileName + " found under " + path)
	}
	return found, nil
}

// loadGraph loads and validates a manifest and maps it into the project
// graph.
func (s Service) loadGraph(ctx context.Context, manifestPath string) (mappedProject, error) {
	loaded, err := s.ManifestLoader.LoadProject(manifestPath)
	if err != nil {
		return mappedProject{}, err
	}
	if err := core.NewManifestValidator().Validate(ctx, loaded); err != nil {
		return mappedProject{}, err
	}
	projectDir := filepath.Dir(manifestPath)
	var root string
	if s.RootDirectory != nil {
		root = s.RootDirectory(projectDir)
	}
	paths := adapters.NewGeneratorPaths(projectDir, root)
	project, err := core.NewGraphMapper(s.CoreData).MapProject(ctx, loaded, projectDir, paths)
	if err != nil {
		return mappedProject{}, err
	}
	return mappedProject{manifestPath: manifestPath, manifest: loaded, project: project}, nil
}

func (s Service) projectMapper(opts MapperOptions) core.SequentialProjectMapper {
	return core.NewSequentialProjectMapper(s.privacyMapper(opts))
}

func (s Service) privacyMapper(opts MapperOptions) core.GeneratePrivacyManifestProjectMapper {
	return core.NewGeneratePrivacyManifestProjectMapper(
		s.Codec,
		core.WithDerivedDirectoryName(opts.DerivedDirectory),
		core.WithPrivacyManifestDirectoryName(opts.PrivacyManifestDirectory),
		core.WithWorkers(opts.Workers),
	)
}

// mapManifest runs the whole mapping pipeline for one manifest without
// performing any side effect.
func (s Service) mapManifest(ctx context.Context, manifestPath string, opts MapperOptions) (mappedProject, error) {
	mapped, err := s.loadGraph(ctx, manifestPath)
	if err != nil {
		return mappedProject{}, err
	}
	project, effects, err := s.projectMapper(opts).Map(ctx, mapped.project)
	if err != nil {
		return mappedProject{}, err
	}
	mapped.project = project
	mapped.effects = effects
	log.Ctx(ctx).Debug().
		Str("manifest", manifestPath).
		Int("targets", len(project.Targets)).
		Int("side_effects", len(effects)).
		Msg("manifest mapped")
	return mapped, nil
}
