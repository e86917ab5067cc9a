package core

import (
	"context"
	"errors"
	"path/filepath"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"projgen/internal/ports"
	"projgen/internal/types"
)

// GeneratePrivacyManifestProjectMapper synthesizes PrivacyInfo.xcprivacy
// files for targets that declare their privacy manifest inline. The files
// are requested as side effects and added to the targets' resources.
type GeneratePrivacyManifestProjectMapper struct {
	codec                        ports.PlistCodecPort
	derivedDirectoryName         string
	privacyManifestDirectoryName string
	workers                      int
}

type PrivacyManifestMapperOption func(*GeneratePrivacyManifestProjectMapper)

// WithDerivedDirectoryName overrides types.DerivedDirectoryName.
func WithDerivedDirectoryName(name string) PrivacyManifestMapperOption {
	return func(m *GeneratePrivacyManifestProjectMapper) {
		if name != "" {
			m.derivedDirectoryName = name
		}
	}
}

// WithPrivacyManifestDirectoryName overrides
// types.PrivacyManifestDirectoryName.
func WithPrivacyManifestDirectoryName(name string) PrivacyManifestMapperOption {
	return func(m *GeneratePrivacyManifestProjectMapper) {
		if name != "" {
			m.privacyManifestDirectoryName = name
		}
	}
}

// WithWorkers maps up to n targets concurrently.
func WithWorkers(n int) PrivacyManifestMapperOption {
	return func(m *GeneratePrivacyManifestProjectMapper) {
		if n > 0 {
			m.workers = n
		}
	}
}

func NewGeneratePrivacyManifestProjectMapper(codec ports.PlistCodecPort, opts ...PrivacyManifestMapperOption) GeneratePrivacyManifestProjectMapper {
	m := GeneratePrivacyManifestProjectMapper{
		codec:                        codec,
		derivedDirectoryName:         types.DerivedDirectoryName,
		privacyManifestDirectoryName: types.PrivacyManifestDirectoryName,
		workers:                      1,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

type targetMapping struct {
	target  types.Target
	effects []types.SideEffectDescriptor
}

func (m GeneratePrivacyManifestProjectMapper) Map(ctx context.Context, project types.Project) (types.Project, []types.SideEffectDescriptor, error) {
	assert.NotEmpty(ctx, m.derivedDirectoryName, "derived directory name must be set")
	assert.NotEmpty(ctx, m.privacyManifestDirectoryName, "privacy manifest directory name must be set")
	log.Ctx(ctx).Debug().Str("project", project.Name).Msg("synthesizing privacy manifest files")

	// Each worker writes only its own slot, so ordering survives.
	results := make([]targetMapping, len(project.Targets))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(m.workers)
	for i, target := range project.Targets {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			mapped, effects, err := m.mapTarget(target, project)
			if err != nil {
				return err
			}
			results[i] = targetMapping{target: mapped, effects: effects}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return types.Project{}, nil, err
	}

	targets := make([]types.Target, 0, len(results))
	var effects []types.SideEffectDescriptor
	for _, result := range results {
		targets = append(targets, result.target)
		effects = append(effects, result.effects...)
	}
	log.Ctx(ctx).Debug().
		Str("project", project.Name).
		Int("side_effects", len(effects)).
		Msg("privacy manifest files synthesized")
	return project.WithTargets(targets), effects, nil
}

func (m GeneratePrivacyManifestProjectMapper) mapTarget(target types.Target, project types.Project) (types.Target, []types.SideEffectDescriptor, error) {
	switch declaration := target.PrivacyManifest.(type) {
	case nil, types.PrivacyManifestFile:
		return target, nil, nil
	case types.PrivacyManifestDictionary:
		data, err := m.codec.Encode(declaration.Content)
		if err != nil {
			return types.Target{}, nil, serializationError(err, project.Name, target.Name)
		}
		path := m.PrivacyManifestPath(project, target)
		// A declared resource at the synthesized path is replaced, not repeated.
		updated := target.WithResources(target.Resources.Remove(path).Append(types.NewResourceFile(path)))
		return updated, []types.SideEffectDescriptor{types.NewFileDescriptor(path, data)}, nil
	default:
		panic("unhandled privacy manifest")
	}
}

// PrivacyManifestDirectory holds the synthesized manifests of project.
func (m GeneratePrivacyManifestProjectMapper) PrivacyManifestDirectory(project types.Project) string {
	return filepath.Join(project.Path, m.derivedDirectoryName, m.privacyManifestDirectoryName)
}

// PrivacyManifestPath is where the synthesized manifest of target lives.
func (m GeneratePrivacyManifestProjectMapper) PrivacyManifestPath(project types.Project, target types.Target) string {
	return filepath.Join(m.PrivacyManifestDirectory(project), target.Name, types.PrivacyManifestFileName)
}

func serializationError(err error, project, target string) error {
	var serializationErr *types.SerializationError
	if errors.As(err, &serializationErr) {
		return annotate(serializationErr, project, target)
	}
	return &types.SerializationError{Project: project, Target: target, Cause: err}
}

var _ ports.ProjectMapperPort = GeneratePrivacyManifestProjectMapper{}
