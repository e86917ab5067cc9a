package ports

import "projgen/internal/manifest"

// ManifestLoaderPort parses project manifests.
type ManifestLoaderPort interface {
	LoadProject(path string) (manifest.Project, error)
}

// ManifestDiscoveryPort finds project manifests below a root directory.
type ManifestDiscoveryPort interface {
	FindManifests(root string) ([]string, error)
}
