package ports

import (
	"context"

	"projgen/internal/types"
)

// SideEffectExecutorPort performs the deferred actions requested by
// project mappers.
type SideEffectExecutorPort interface {
	Execute(ctx context.Context, effects []types.SideEffectDescriptor) error
}
