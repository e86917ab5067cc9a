package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"projgen/internal/manifest"
	"projgen/internal/ports"
	"projgen/internal/types"
)

// GraphMapper converts a loaded manifest into the project graph.
type GraphMapper struct {
	coreData CoreDataModelMapper
}

func NewGraphMapper(coreData ports.CoreDataVersionPort) GraphMapper {
	return GraphMapper{coreData: NewCoreDataModelMapper(coreData)}
}

// MapProject maps every target of the manifest. Errors name the project and
// target they originate from.
func (m GraphMapper) MapProject(ctx context.Context, project manifest.Project, projectPath string, paths ports.PathResolverPort) (types.Project, error) {
	targets := make([]types.Target, 0, len(project.Targets))
	for _, target := range project.Targets {
		mapped, err := m.MapTarget(target, paths)
		if err != nil {
			return types.Project{}, annotate(err, project.Name, target.Name)
		}
		targets = append(targets, mapped)
	}
	log.Ctx(ctx).Debug().
		Str("project", project.Name).
		Int("targets", len(targets)).
		Msg("project graph mapped")
	return types.Project{
		Name:    project.Name,
		Path:    projectPath,
		Targets: targets,
	}, nil
}

func (m GraphMapper) MapTarget(target manifest.Target, paths ports.PathResolverPort) (types.Target, error) {
	resources, err := MapResourceFileElements(target.Resources, paths)
	if err != nil {
		return types.Target{}, err
	}
	infoPlist, err := MapInfoPlist(target.InfoPlist, paths)
	if err != nil {
		return types.Target{}, err
	}
	entitlements, err := MapEntitlements(target.Entitlements, paths)
	if err != nil {
		return types.Target{}, err
	}
	privacyManifest, err := MapPrivacyManifest(target.PrivacyManifest, paths)
	if err != nil {
		return types.Target{}, err
	}
	var models []types.CoreDataModel
	for _, model := range target.CoreDataModels {
		mapped, err := m.coreData.Map(model, paths)
		if err != nil {
			return types.Target{}, err
		}
		models = append(models, mapped)
	}
	return types.Target{
		Name:            target.Name,
		Product:         types.Product(target.Product),
		BundleID:        target.BundleID,
		Resources:       resources,
		InfoPlist:       infoPlist,
		Entitlements:    entitlements,
		PrivacyManifest: privacyManifest,
		CoreDataModels:  models,
	}, nil
}

func annotate(err error, project, target string) error {
	var pathErr *types.PathResolutionError
	if errors.As(err, &pathErr) {
		return pathErr.InTarget(project, target)
	}
	var serializationErr *types.SerializationError
	if errors.As(err, &serializationErr) {
		annotated := *serializationErr
		if annotated.Project == "" {
			annotated.Project = project
		}
		if annotated.Target == "" {
			annotated.Target = target
		}
		return &annotated
	}
	code := errbuilder.CodeInternal
	msg := err.Error()
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		code = errbuilder.CodeOf(err)
		if strings.TrimSpace(builder.Msg) != "" {
			msg = builder.Msg
		}
	}
	return errbuilder.New().
		WithCode(code).
		WithMsg(fmt.Sprintf("project %s, target %s: %s", project, target, msg)).
		WithCause(err)
}
