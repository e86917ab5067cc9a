package cli

import (
	"context"

	"github.com/rs/zerolog/log"
)

// withLogger attaches the global logger so core code logging through
// log.Ctx follows the configured level and output.
func withLogger(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return log.Logger.WithContext(ctx)
}
