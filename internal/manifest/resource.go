package manifest

import (
	"gopkg.in/yaml.v3"
)

// ResourceFileElement is an entry of a target's resources list. The set of
// implementations is closed: ResourceFile, ResourceFolderReference and
// ResourcePrivacyManifest.
type ResourceFileElement interface {
	isResourceFileElement()
}

type ResourceFile struct {
	Path      Path     `yaml:"file"`
	Tags      []string `yaml:"tags,omitempty"`
	Platforms []string `yaml:"platforms,omitempty"`
}

type ResourceFolderReference struct {
	Path      Path     `yaml:"folder_reference"`
	Tags      []string `yaml:"tags,omitempty"`
	Platforms []string `yaml:"platforms,omitempty"`
}

type ResourcePrivacyManifest struct {
	Tracking           bool              `yaml:"tracking"`
	TrackingDomains    []string          `yaml:"tracking_domains"`
	CollectedDataTypes []PlistDictionary `yaml:"collected_data_types"`
	AccessedAPITypes   []PlistDictionary `yaml:"accessed_api_types"`
}

func (ResourceFile) isResourceFileElement()            {}
func (ResourceFolderReference) isResourceFileElement() {}
func (ResourcePrivacyManifest) isResourceFileElement() {}

var resourceKinds = []string{"file", "folder_reference", "privacy_manifest"}

type privacyManifestResource struct {
	PrivacyManifest ResourcePrivacyManifest `yaml:"privacy_manifest"`
}

func decodeResource(node *yaml.Node) (ResourceFileElement, error) {
	if node.Kind == yaml.AliasNode {
		return decodeResource(node.Alias)
	}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() != "!!str" {
			return nil, invalidType(node.Line, "resource must be a path or a mapping")
		}
		return ResourceFile{Path: ParsePath(node.Value)}, nil
	case yaml.MappingNode:
		present := 0
		for _, kind := range resourceKinds {
			if hasKey(node, kind) {
				present++
			}
		}
		if present > 1 {
			return nil, invalidType(node.Line, "resource must have exactly one of %v", resourceKinds)
		}
		switch {
		case hasKey(node, "file"):
			var resource ResourceFile
			if err := node.Decode(&resource); err != nil {
				return nil, err
			}
			return resource, nil
		case hasKey(node, "folder_reference"):
			var resource ResourceFolderReference
			if err := node.Decode(&resource); err != nil {
				return nil, err
			}
			return resource, nil
		case hasKey(node, "privacy_manifest"):
			var resource privacyManifestResource
			if err := node.Decode(&resource); err != nil {
				return nil, err
			}
			return resource.PrivacyManifest, nil
		default:
			return nil, invalidType(node.Line, "resource must declare file, folder_reference or privacy_manifest")
		}
	default:
		return nil, invalidType(node.Line, "resource must be a path or a mapping")
	}
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}
