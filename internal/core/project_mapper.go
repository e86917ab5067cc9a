package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"projgen/internal/ports"
	"projgen/internal/types"
)

// SequentialProjectMapper runs mappers in order, feeding each the project
// returned by the previous one. Side effects are concatenated in mapper
// order.
type SequentialProjectMapper struct {
	mappers []ports.ProjectMapperPort
}

func NewSequentialProjectMapper(mappers ...ports.ProjectMapperPort) SequentialProjectMapper {
	return SequentialProjectMapper{mappers: mappers}
}

func (m SequentialProjectMapper) Map(ctx context.Context, project types.Project) (types.Project, []types.SideEffectDescriptor, error) {
	var effects []types.SideEffectDescriptor
	for _, mapper := range m.mappers {
		mapped, mapperEffects, err := mapper.Map(ctx, project)
		if err != nil {
			return types.Project{}, nil, err
		}
		project = mapped
		effects = append(effects, mapperEffects...)
	}
	log.Ctx(ctx).Debug().
		Str("project", project.Name).
		Int("mappers", len(m.mappers)).
		Int("side_effects", len(effects)).
		Msg("project mappers applied")
	return project, effects, nil
}

var _ ports.ProjectMapperPort = SequentialProjectMapper{}
