package manifest

import (
	"gopkg.in/yaml.v3"
)

// PlistValue is a structured value as written in a project manifest. The
// set of implementations is closed: PlistString, PlistBoolean,
// PlistInteger, PlistReal, PlistArray and PlistDictionary.
type PlistValue interface {
	isPlistValue()
}

type PlistString string

type PlistBoolean bool

type PlistInteger int64

type PlistReal float64

type PlistArray []PlistValue

type PlistEntry struct {
	Key   string
	Value PlistValue
}

// PlistDictionary preserves the key order found in the manifest.
type PlistDictionary []PlistEntry

func (PlistString) isPlistValue()     {}
func (PlistBoolean) isPlistValue()    {}
func (PlistInteger) isPlistValue()    {}
func (PlistReal) isPlistValue()       {}
func (PlistArray) isPlistValue()      {}
func (PlistDictionary) isPlistValue() {}

// UnmarshalYAML decodes a YAML mapping, keeping key order.
func (d *PlistDictionary) UnmarshalYAML(node *yaml.Node) error {
	dictionary, err := decodePlistDictionary(node)
	if err != nil {
		return err
	}
	*d = dictionary
	return nil
}

func decodePlistValue(node *yaml.Node) (PlistValue, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return decodePlistValue(node.Alias)
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return nil, invalidType(node.Line, "empty document")
		}
		return decodePlistValue(node.Content[0])
	case yaml.SequenceNode:
		array := make(PlistArray, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := decodePlistValue(item)
			if err != nil {
				return nil, err
			}
			array = append(array, value)
		}
		return array, nil
	case yaml.MappingNode:
		return decodePlistDictionary(node)
	case yaml.ScalarNode:
		return decodePlistScalar(node)
	default:
		return nil, invalidType(node.Line, "unsupported yaml node")
	}
}

func decodePlistScalar(node *yaml.Node) (PlistValue, error) {
	switch node.ShortTag() {
	case "!!str":
		return PlistString(node.Value), nil
	case "!!bool":
		var value bool
		if err := node.Decode(&value); err != nil {
			return nil, invalidType(node.Line, "%q is not a boolean", node.Value)
		}
		return PlistBoolean(value), nil
	case "!!int":
		var value int64
		if err := node.Decode(&value); err != nil {
			return nil, invalidType(node.Line, "%q is not a 64-bit integer", node.Value)
		}
		return PlistInteger(value), nil
	case "!!float":
		var value float64
		if err := node.Decode(&value); err != nil {
			return nil, invalidType(node.Line, "%q is not a real number", node.Value)
		}
		return PlistReal(value), nil
	default:
		return nil, invalidType(node.Line, "value of type %s cannot be stored in a property list", node.ShortTag())
	}
}

func decodePlistDictionary(node *yaml.Node) (PlistDictionary, error) {
	if node.Kind == yaml.AliasNode {
		return decodePlistDictionary(node.Alias)
	}
	if node.Kind != yaml.MappingNode {
		return nil, invalidType(node.Line, "expected a dictionary")
	}
	dictionary := make(PlistDictionary, 0, len(node.Content)/2)
	seen := map[string]struct{}{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, invalidType(keyNode.Line, "dictionary keys must be strings")
		}
		if _, dup := seen[keyNode.Value]; dup {
			return nil, invalidType(keyNode.Line, "duplicate dictionary key %q", keyNode.Value)
		}
		seen[keyNode.Value] = struct{}{}
		value, err := decodePlistValue(valueNode)
		if err != nil {
			return nil, err
		}
		dictionary = append(dictionary, PlistEntry{Key: keyNode.Value, Value: value})
	}
	return dictionary, nil
}
