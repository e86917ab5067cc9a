package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projgen/internal/types"
)

type renameMapper struct {
	suffix string
	err    error
}

func (m renameMapper) Map(_ context.Context, project types.Project) (types.Project, []types.SideEffectDescriptor, error) {
	if m.err != nil {
		return types.Project{}, nil, m.err
	}
	project.Name += m.suffix
	return project, []types.SideEffectDescriptor{
		types.DirectoryDescriptor{Path: "/" + project.Name, State: types.DescriptorStatePresent},
	}, nil
}

func TestSequentialProjectMapperChains(t *testing.T) {
	mapper := NewSequentialProjectMapper(renameMapper{suffix: "-a"}, renameMapper{suffix: "-b"})

	got, effects, err := mapper.Map(t.Context(), types.Project{Name: "App"})
	require.NoError(t, err)
	assert.Equal(t, "App-a-b", got.Name)
	require.Len(t, effects, 2)
	assert.Equal(t, "/App-a", effects[0].EffectPath())
	assert.Equal(t, "/App-a-b", effects[1].EffectPath())
}

func TestSequentialProjectMapperStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	mapper := NewSequentialProjectMapper(renameMapper{suffix: "-a"}, renameMapper{err: boom}, renameMapper{suffix: "-c"})

	got, effects, err := mapper.Map(t.Context(), types.Project{Name: "App"})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, effects)
	assert.Empty(t, got.Name)
}

func TestSequentialProjectMapperEmpty(t *testing.T) {
	project := types.Project{Name: "App", Path: "/project"}
	got, effects, err := NewSequentialProjectMapper().Map(t.Context(), project)
	require.NoError(t, err)
	assert.Equal(t, project, got)
	assert.Empty(t, effects)
}
