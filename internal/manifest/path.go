package manifest

import (
	"strings"

	"gopkg.in/yaml.v3"
)

type PathType string

const (
	PathRelativeToManifest PathType = "relative_to_manifest"
	PathRelativeToRoot     PathType = "relative_to_root"
)

// rootPrefix marks a path as relative to the repository root.
const rootPrefix = "//"

// Path is an unresolved path as written in a manifest.
type Path struct {
	Type     PathType
	Pathname string
}

// ParsePath interprets a manifest string: a leading "//" makes the path
// relative to the root directory, anything else is relative to the
// directory that contains the manifest.
func ParsePath(value string) Path {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, rootPrefix) {
		return Path{Type: PathRelativeToRoot, Pathname: strings.TrimPrefix(value, rootPrefix)}
	}
	return Path{Type: PathRelativeToManifest, Pathname: value}
}

func (p Path) String() string {
	if p.Type == PathRelativeToRoot {
		return rootPrefix + p.Pathname
	}
	return p.Pathname
}

func (p *Path) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return invalidType(node.Line, "expected a path string")
	}
	*p = ParsePath(node.Value)
	return nil
}
