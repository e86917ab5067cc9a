package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"projgen/internal/types"
)

// Inspect maps a single manifest and returns one of its targets as the
// generator would see it. Without a target name the only target is used,
// or the user is asked to pick one.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	manifests, err := s.manifestPaths(req.ManifestPath)
	if err != nil {
		return InspectResult{}, err
	}
	if len(manifests) != 1 {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("inspect needs a single manifest, found %d", len(manifests)))
	}
	mapped, err := s.mapManifest(ctx, manifests[0], req.Options)
	if err != nil {
		return InspectResult{}, err
	}
	target, err := s.pickTarget(mapped.project, strings.TrimSpace(req.Target))
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{Project: mapped.project.Name, Target: target}
	if _, ok := target.PrivacyManifest.(types.PrivacyManifestDictionary); ok {
		result.PrivacyManifestPath = s.privacyMapper(req.Options).PrivacyManifestPath(mapped.project, target)
	}
	for _, effect := range mapped.effects {
		if result.PrivacyManifestPath != "" && effect.EffectPath() == result.PrivacyManifestPath {
			result.SideEffects = append(result.SideEffects, effect)
		}
	}
	return result, nil
}

func (s Service) pickTarget(project types.Project, name string) (types.Target, error) {
	if name != "" {
		target, ok := project.Target(name)
		if !ok {
			return types.Target{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("target %s not found in project %s", name, project.Name))
		}
		return target, nil
	}
	if len(project.Targets) == 1 {
		return project.Targets[0], nil
	}
	if s.Input == nil {
		return types.Target{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("project %s has %d targets, pass a target name", project.Name, len(project.Targets)))
	}
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Project %s has several targets, select one:", project.Name)
	for i, target := range project.Targets {
		fmt.Fprintf(&prompt, "\n  %d: %s", i, target.Name)
	}
	index, err := s.Input.ReadInt(prompt.String(), len(project.Targets))
	if err != nil {
		return types.Target{}, err
	}
	if index < 0 {
		return types.Target{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no target with index %d", index))
	}
	return project.Targets[index], nil
}
