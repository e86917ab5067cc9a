package adapters

import (
	"fmt"
	"math"
	"sort"

	"howett.net/plist"

	"projgen/internal/ports"
	"projgen/internal/types"
)

// PlistCodecAdapter reads and writes XML property lists.
type PlistCodecAdapter struct{}

func NewPlistCodecAdapter() PlistCodecAdapter {
	return PlistCodecAdapter{}
}

func (a PlistCodecAdapter) Encode(content types.PlistDictionary) ([]byte, error) {
	if err := checkPlistValue(content, "root"); err != nil {
		return nil, &types.SerializationError{Cause: err}
	}
	data, err := plist.MarshalIndent(content.Native(), plist.XMLFormat, "\t")
	if err != nil {
		return nil, &types.SerializationError{Cause: err}
	}
	return data, nil
}

// Decode parses a property list whose root is a dictionary. Keys of decoded
// dictionaries are sorted since the file format does not keep an order.
func (a PlistCodecAdapter) Decode(data []byte) (types.PlistDictionary, error) {
	var root any
	if _, err := plist.Unmarshal(data, &root); err != nil {
		return nil, &types.SerializationError{Cause: err}
	}
	value, err := fromNative(root)
	if err != nil {
		return nil, &types.SerializationError{Cause: err}
	}
	dictionary, ok := value.(types.PlistDictionary)
	if !ok {
		return nil, &types.SerializationError{Cause: fmt.Errorf("property list root is not a dictionary")}
	}
	return dictionary, nil
}

func checkPlistValue(value types.PlistValue, at string) error {
	switch v := value.(type) {
	case nil:
		return fmt.Errorf("missing value at %s", at)
	case types.PlistReal:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("non-finite real at %s", at)
		}
	case types.PlistArray:
		for i, item := range v {
			if err := checkPlistValue(item, fmt.Sprintf("%s[%d]", at, i)); err != nil {
				return err
			}
		}
	case types.PlistDictionary:
		seen := map[string]struct{}{}
		for _, entry := range v {
			if _, dup := seen[entry.Key]; dup {
				return fmt.Errorf("duplicate key %q at %s", entry.Key, at)
			}
			seen[entry.Key] = struct{}{}
			if err := checkPlistValue(entry.Value, at+"."+entry.Key); err != nil {
				return err
			}
		}
	}
	return nil
}

func fromNative(value any) (types.PlistValue, error) {
	switch v := value.(type) {
	case string:
		return types.PlistString(v), nil
	case bool:
		return types.PlistBoolean(v), nil
	case int64:
		return types.PlistInteger(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows int64", v)
		}
		return types.PlistInteger(int64(v)), nil
	case int:
		return types.PlistInteger(int64(v)), nil
	case float64:
		return types.PlistReal(v), nil
	case float32:
		return types.PlistReal(float64(v)), nil
	case []any:
		array := make(types.PlistArray, 0, len(v))
		for _, item := range v {
			mapped, err := fromNative(item)
			if err != nil {
				return nil, err
			}
			array = append(array, mapped)
		}
		return array, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		dictionary := make(types.PlistDictionary, 0, len(v))
		for _, key := range keys {
			mapped, err := fromNative(v[key])
			if err != nil {
				return nil, err
			}
			dictionary = append(dictionary, types.PlistEntry{Key: key, Value: mapped})
		}
		return dictionary, nil
	default:
		return nil, fmt.Errorf("unsupported property list value of type %T", value)
	}
}

var _ ports.PlistCodecPort = PlistCodecAdapter{}
