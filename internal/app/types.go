package app

import "projgen/internal/types"

// MapperOptions tune the derived-artifact mappers.
type MapperOptions struct {
	DerivedDirectory         string
	PrivacyManifestDirectory string
	Workers                  int
}

type GenerateRequest struct {
	// Path is a Project.yaml file or a directory searched for them.
	Path    string
	DryRun  bool
	Clean   bool
	Options MapperOptions
}

type GeneratedProject struct {
	Name         string
	ManifestPath string
	SideEffects  []types.SideEffectDescriptor
}

type GenerateResult struct {
	Projects []GeneratedProject
	DryRun   bool
}

type ValidateRequest struct {
	Path string
}

type ValidateResult struct {
	Projects []string
}

type InspectRequest struct {
	ManifestPath string
	Target       string
	Options      MapperOptions
}

type InspectResult struct {
	Project string
	Target  types.Target
	// PrivacyManifestPath is set when a privacy manifest is synthesized
	// for the target.
	PrivacyManifestPath string
	SideEffects         []types.SideEffectDescriptor
}
