package core

import (
	"projgen/internal/manifest"
	"projgen/internal/ports"
	"projgen/internal/types"
)

// MapResourceFileElement resolves the paths of a manifest resource.
func MapResourceFileElement(resource manifest.ResourceFileElement, paths ports.PathResolverPort) (types.ResourceFileElement, error) {
	switch r := resource.(type) {
	case manifest.ResourceFile:
		path, err := paths.Resolve(r.Path)
		if err != nil {
			return nil, err
		}
		return types.ResourceFile{
			Path:               path,
			Tags:               cloneStrings(r.Tags),
			InclusionCondition: platformCondition(r.Platforms),
		}, nil
	case manifest.ResourceFolderReference:
		path, err := paths.Resolve(r.Path)
		if err != nil {
			return nil, err
		}
		return types.ResourceFolderReference{
			Path:               path,
			Tags:               cloneStrings(r.Tags),
			InclusionCondition: platformCondition(r.Platforms),
		}, nil
	case manifest.ResourcePrivacyManifest:
		element := types.ResourcePrivacyManifest{
			Tracking:        r.Tracking,
			TrackingDomains: cloneStrings(r.TrackingDomains),
		}
		for _, dataType := range r.CollectedDataTypes {
			element.CollectedDataTypes = append(element.CollectedDataTypes, MapPlistDictionary(dataType))
		}
		for _, apiType := range r.AccessedAPITypes {
			element.AccessedAPITypes = append(element.AccessedAPITypes, MapPlistDictionary(apiType))
		}
		return element, nil
	default:
		panic("unhandled resource file element")
	}
}

// MapResourceFileElements maps a resource list, dropping later entries
// that resolve to a path already present.
func MapResourceFileElements(resources []manifest.ResourceFileElement, paths ports.PathResolverPort) (types.ResourceFileElements, error) {
	mapped := make(types.ResourceFileElements, 0, len(resources))
	seen := map[string]struct{}{}
	for _, resource := range resources {
		element, err := MapResourceFileElement(resource, paths)
		if err != nil {
			return nil, err
		}
		if path := element.ResourcePath(); path != "" {
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
		}
		mapped = append(mapped, element)
	}
	return mapped, nil
}

func platformCondition(platforms []string) *types.PlatformCondition {
	if len(platforms) == 0 {
		return nil
	}
	return &types.PlatformCondition{Platforms: cloneStrings(platforms)}
}

// cloneStrings returns an unshared copy of values, or nil when empty.
func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}
