package ports

import (
	"context"

	"projgen/internal/types"
)

// ProjectMapperPort transforms a project and requests side effects instead
// of touching the filesystem.
type ProjectMapperPort interface {
	Map(ctx context.Context, project types.Project) (types.Project, []types.SideEffectDescriptor, error)
}
