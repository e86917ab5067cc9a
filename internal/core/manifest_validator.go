package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"projgen/internal/manifest"
	"projgen/internal/types"
)

type ManifestValidator struct{}

var validProducts = map[types.Product]struct{}{
	types.ProductApp:            {},
	types.ProductFramework:      {},
	types.ProductStaticLibrary:  {},
	types.ProductUnitTests:      {},
	types.ProductBundle:         {},
	types.ProductAppExtension:   {},
	types.ProductCommandLineApp: {},
}

func NewManifestValidator() ManifestValidator {
	return ManifestValidator{}
}

func (v ManifestValidator) Validate(ctx context.Context, project manifest.Project) error {
	if strings.TrimSpace(project.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project name must be set")
	}
	if len(project.Targets) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("project %s must declare at least one target", project.Name))
	}
	seen := map[string]struct{}{}
	for _, target := range project.Targets {
		if err := validateTarget(project.Name, target); err != nil {
			return err
		}
		if _, dup := seen[target.Name]; dup {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate target %s in project %s", target.Name, project.Name))
		}
		seen[target.Name] = struct{}{}
	}
	log.Ctx(ctx).Debug().Str("project", project.Name).Msg("manifest validated")
	return nil
}

func validateTarget(project string, target manifest.Target) error {
	name := strings.TrimSpace(target.Name)
	if name == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("project %s has a target without a name", project))
	}
	// Target names become directory names under the derived directory.
	if name != target.Name || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("target name %q is not a valid directory name", target.Name))
	}
	if target.Product == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("target %s missing product", target.Name))
	}
	if _, ok := validProducts[types.Product(target.Product)]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("target %s has invalid product %s", target.Name, target.Product))
	}
	for _, model := range target.CoreDataModels {
		if strings.TrimSpace(model.Path.Pathname) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("target %s has a core data model without a path", target.Name))
		}
	}
	return nil
}
