package core

import (
	"projgen/internal/manifest"
	"projgen/internal/types"
)

// MapPlistValue converts a manifest value into its graph representation.
// Array element order and dictionary key order are preserved.
func MapPlistValue(value manifest.PlistValue) types.PlistValue {
	switch v := value.(type) {
	case manifest.PlistString:
		return types.PlistString(v)
	case manifest.PlistBoolean:
		return types.PlistBoolean(v)
	case manifest.PlistInteger:
		return types.PlistInteger(v)
	case manifest.PlistReal:
		return types.PlistReal(v)
	case manifest.PlistArray:
		array := make(types.PlistArray, 0, len(v))
		for _, item := range v {
			array = append(array, MapPlistValue(item))
		}
		return array
	case manifest.PlistDictionary:
		return MapPlistDictionary(v)
	default:
		panic("unhandled manifest plist value")
	}
}

// MapPlistDictionary maps every value of a manifest dictionary.
func MapPlistDictionary(dictionary manifest.PlistDictionary) types.PlistDictionary {
	mapped := make(types.PlistDictionary, 0, len(dictionary))
	for _, entry := range dictionary {
		mapped = append(mapped, types.PlistEntry{Key: entry.Key, Value: MapPlistValue(entry.Value)})
	}
	return mapped
}

// ManifestPlistValue is the inverse of MapPlistValue.
func ManifestPlistValue(value types.PlistValue) manifest.PlistValue {
	switch v := value.(type) {
	case types.PlistString:
		return manifest.PlistString(v)
	case types.PlistBoolean:
		return manifest.PlistBoolean(v)
	case types.PlistInteger:
		return manifest.PlistInteger(v)
	case types.PlistReal:
		return manifest.PlistReal(v)
	case types.PlistArray:
		array := make(manifest.PlistArray, 0, len(v))
		for _, item := range v {
			array = append(array, ManifestPlistValue(item))
		}
		return array
	case types.PlistDictionary:
		return ManifestPlistDictionary(v)
	default:
		panic("unhandled graph plist value")
	}
}

// ManifestPlistDictionary is the inverse of MapPlistDictionary.
func ManifestPlistDictionary(dictionary types.PlistDictionary) manifest.PlistDictionary {
	mapped := make(manifest.PlistDictionary, 0, len(dictionary))
	for _, entry := range dictionary {
		mapped = append(mapped, manifest.PlistEntry{Key: entry.Key, Value: ManifestPlistValue(entry.Value)})
	}
	return mapped
}
