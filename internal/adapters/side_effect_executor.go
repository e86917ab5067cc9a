package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"projgen/internal/ports"
	"projgen/internal/types"
)

// SideEffectExecutorAdapter applies side effect descriptors to the local
// filesystem. In dry-run mode it only logs what it would do.
type SideEffectExecutorAdapter struct {
	DryRun bool
}

func NewSideEffectExecutorAdapter(dryRun bool) SideEffectExecutorAdapter {
	return SideEffectExecutorAdapter{DryRun: dryRun}
}

func (a SideEffectExecutorAdapter) Execute(ctx context.Context, effects []types.SideEffectDescriptor) error {
	for _, effect := range effects {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		switch e := effect.(type) {
		case types.FileDescriptor:
			err = a.applyFile(ctx, e)
		case types.DirectoryDescriptor:
			err = a.applyDirectory(ctx, e)
		default:
			panic(fmt.Sprintf("unhandled side effect %T", effect))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (a SideEffectExecutorAdapter) applyFile(ctx context.Context, file types.FileDescriptor) error {
	logger := log.Ctx(ctx).With().Str("path", file.Path).Bool("dry_run", a.DryRun).Logger()
	if file.State == types.DescriptorStateAbsent {
		logger.Debug().Msg("deleting file")
		if a.DryRun {
			return nil
		}
		if err := os.Remove(file.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to delete " + file.Path).
				WithCause(err)
		}
		return nil
	}

	if existing, err := os.ReadFile(file.Path); err == nil && bytes.Equal(existing, file.Contents) {
		logger.Debug().Msg("file up to date")
		return nil
	}
	logger.Debug().Int("bytes", len(file.Contents)).Msg("writing file")
	if a.DryRun {
		return nil
	}
	if err := ensureDir(filepath.Dir(file.Path)); err != nil {
		return err
	}
	if err := os.WriteFile(file.Path, file.Contents, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + file.Path).
			WithCause(err)
	}
	return nil
}

func (a SideEffectExecutorAdapter) applyDirectory(ctx context.Context, dir types.DirectoryDescriptor) error {
	logger := log.Ctx(ctx).With().Str("path", dir.Path).Bool("dry_run", a.DryRun).Logger()
	if dir.State == types.DescriptorStateAbsent {
		logger.Debug().Msg("deleting directory")
		if a.DryRun {
			return nil
		}
		if err := os.RemoveAll(dir.Path); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to delete " + dir.Path).
				WithCause(err)
		}
		return nil
	}
	logger.Debug().Msg("creating directory")
	if a.DryRun {
		return nil
	}
	return ensureDir(dir.Path)
}

func ensureDir(dir string) error {
	if dir == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create directory " + dir).
			WithCause(err)
	}
	return nil
}

var _ ports.SideEffectExecutorPort = SideEffectExecutorAdapter{}
