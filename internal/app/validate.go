package app

import (
	"context"
)

// Validate loads every designated manifest and maps it into the project
// graph, reporting the first error.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	manifests, err := s.manifestPaths(req.Path)
	if err != nil {
		return ValidateResult{}, err
	}
	var result ValidateResult
	for _, manifestPath := range manifests {
		mapped, err := s.loadGraph(ctx, manifestPath)
		if err != nil {
			return ValidateResult{}, err
		}
		result.Projects = append(result.Projects, mapped.project.Name)
	}
	return result, nil
}
