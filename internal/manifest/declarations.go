package manifest

import (
	"gopkg.in/yaml.v3"
)

// Declaration keys accepted in manifests. A bare string is shorthand for
// the file form.
const (
	keyFile             = "file"
	keyDictionary       = "dictionary"
	keyExtendingDefault = "extending_default"
)

// InfoPlist declares a target's Info.plist. A nil InfoPlist means none.
type InfoPlist interface {
	isInfoPlist()
}

type InfoPlistFile struct {
	Path Path
}

type InfoPlistDictionary struct {
	Content PlistDictionary
}

// InfoPlistExtendingDefault adds to the generator's default Info.plist
// instead of replacing it.
type InfoPlistExtendingDefault struct {
	Content PlistDictionary
}

func (InfoPlistFile) isInfoPlist()             {}
func (InfoPlistDictionary) isInfoPlist()       {}
func (InfoPlistExtendingDefault) isInfoPlist() {}

// Entitlements declares a target's entitlements.
type Entitlements interface {
	isEntitlements()
}

type EntitlementsFile struct {
	Path Path
}

type EntitlementsDictionary struct {
	Content PlistDictionary
}

func (EntitlementsFile) isEntitlements()       {}
func (EntitlementsDictionary) isEntitlements() {}

// PrivacyManifest declares a target's privacy manifest.
type PrivacyManifest interface {
	isPrivacyManifest()
}

// PrivacyManifestFile points at an existing .xcprivacy file.
type PrivacyManifestFile struct {
	Path Path
}

// PrivacyManifestDictionary holds the manifest content; the generator
// writes the .xcprivacy file at generation time.
type PrivacyManifestDictionary struct {
	Content PlistDictionary
}

func (PrivacyManifestFile) isPrivacyManifest()       {}
func (PrivacyManifestDictionary) isPrivacyManifest() {}

// declaration is the decoded shape shared by the three manifest kinds.
type declaration struct {
	key     string
	path    Path
	content PlistDictionary
}

func decodeDeclaration(node *yaml.Node, allowed ...string) (*declaration, error) {
	if node == nil {
		return nil, nil
	}
	if node.Kind == yaml.AliasNode {
		return decodeDeclaration(node.Alias, allowed...)
	}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil, nil
		}
		if node.ShortTag() != "!!str" {
			return nil, invalidType(node.Line, "expected a path string or a declaration mapping")
		}
		return &declaration{key: keyFile, path: ParsePath(node.Value)}, nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return nil, invalidType(node.Line, "declaration must have exactly one of %v", allowed)
		}
		keyNode, valueNode := node.Content[0], node.Content[1]
		if !contains(allowed, keyNode.Value) {
			return nil, invalidType(keyNode.Line, "unknown declaration %q, expected one of %v", keyNode.Value, allowed)
		}
		if keyNode.Value == keyFile {
			var path Path
			if err := path.UnmarshalYAML(valueNode); err != nil {
				return nil, err
			}
			return &declaration{key: keyFile, path: path}, nil
		}
		content, err := decodePlistDictionary(valueNode)
		if err != nil {
			return nil, err
		}
		return &declaration{key: keyNode.Value, content: content}, nil
	default:
		return nil, invalidType(node.Line, "expected a path string or a declaration mapping")
	}
}

func decodeInfoPlist(node *yaml.Node) (InfoPlist, error) {
	decl, err := decodeDeclaration(node, keyFile, keyDictionary, keyExtendingDefault)
	if err != nil || decl == nil {
		return nil, err
	}
	switch decl.key {
	case keyFile:
		return InfoPlistFile{Path: decl.path}, nil
	case keyDictionary:
		return InfoPlistDictionary{Content: decl.content}, nil
	default:
		return InfoPlistExtendingDefault{Content: decl.content}, nil
	}
}

func decodeEntitlements(node *yaml.Node) (Entitlements, error) {
	decl, err := decodeDeclaration(node, keyFile, keyDictionary)
	if err != nil || decl == nil {
		return nil, err
	}
	if decl.key == keyFile {
		return EntitlementsFile{Path: decl.path}, nil
	}
	return EntitlementsDictionary{Content: decl.content}, nil
}

func decodePrivacyManifest(node *yaml.Node) (PrivacyManifest, error) {
	decl, err := decodeDeclaration(node, keyFile, keyDictionary)
	if err != nil || decl == nil {
		return nil, err
	}
	if decl.key == keyFile {
		return PrivacyManifestFile{Path: decl.path}, nil
	}
	return PrivacyManifestDictionary{Content: decl.content}, nil
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
