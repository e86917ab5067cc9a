package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"projgen/internal/adapters"
	"projgen/internal/ports"
	"projgen/internal/types"
)

// Generate maps every designated manifest and performs the requested side
// effects. All manifests are mapped before anything is written, so a
// failing manifest leaves the filesystem untouched.
func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	manifests, err := s.manifestPaths(req.Path)
	if err != nil {
		return GenerateResult{}, err
	}
	mapped := make([]mappedProject, 0, len(manifests))
	for _, manifestPath := range manifests {
		project, err := s.mapManifest(ctx, manifestPath, req.Options)
		if err != nil {
			return GenerateResult{}, err
		}
		if req.Clean {
			project.effects = append([]types.SideEffectDescriptor{s.cleanEffect(project.project, req.Options)}, project.effects...)
		}
		mapped = append(mapped, project)
	}

	var executor ports.SideEffectExecutorPort = s.Executor
	if req.DryRun {
		executor = adapters.NewSideEffectExecutorAdapter(true)
	}
	result := GenerateResult{DryRun: req.DryRun}
	for _, project := range mapped {
		if err := executor.Execute(ctx, project.effects); err != nil {
			return GenerateResult{}, err
		}
		result.Projects = append(result.Projects, GeneratedProject{
			Name:         project.project.Name,
			ManifestPath: project.manifestPath,
			SideEffects:  project.effects,
		})
	}
	log.Ctx(ctx).Info().
		Int("projects", len(result.Projects)).
		Bool("dry_run", req.DryRun).
		Msg("generation finished")
	return result, nil
}

// cleanEffect removes previously synthesized privacy manifests so that
// targets which dropped their inline manifest leave no stale file behind.
func (s Service) cleanEffect(project types.Project, opts MapperOptions) types.SideEffectDescriptor {
	return types.DirectoryDescriptor{
		Path:  s.privacyMapper(opts).PrivacyManifestDirectory(project),
		State: types.DescriptorStateAbsent,
	}
}
