package core

import (
	"projgen/internal/manifest"
	"projgen/internal/ports"
	"projgen/internal/types"
)

// MapInfoPlist maps an Info.plist declaration. A nil declaration maps to
// nil.
func MapInfoPlist(declaration manifest.InfoPlist, paths ports.PathResolverPort) (types.InfoPlist, error) {
	switch d := declaration.(type) {
	case nil:
		return nil, nil
	case manifest.InfoPlistFile:
		path, err := paths.Resolve(d.Path)
		if err != nil {
			return nil, err
		}
		return types.InfoPlistFile{Path: path}, nil
	case manifest.InfoPlistDictionary:
		return types.InfoPlistDictionary{Content: MapPlistDictionary(d.Content)}, nil
	case manifest.InfoPlistExtendingDefault:
		return types.InfoPlistExtendingDefault{Content: MapPlistDictionary(d.Content)}, nil
	default:
		panic("unhandled info plist declaration")
	}
}

// MapEntitlements maps an entitlements declaration. A nil declaration maps
// to nil.
func MapEntitlements(declaration manifest.Entitlements, paths ports.PathResolverPort) (types.Entitlements, error) {
	switch d := declaration.(type) {
	case nil:
		return nil, nil
	case manifest.EntitlementsFile:
		path, err := paths.Resolve(d.Path)
		if err != nil {
			return nil, err
		}
		return types.EntitlementsFile{Path: path}, nil
	case manifest.EntitlementsDictionary:
		return types.EntitlementsDictionary{Content: MapPlistDictionary(d.Content)}, nil
	default:
		panic("unhandled entitlements declaration")
	}
}

// MapPrivacyManifest maps a privacy manifest declaration. A nil declaration
// maps to nil.
func MapPrivacyManifest(declaration manifest.PrivacyManifest, paths ports.PathResolverPort) (types.PrivacyManifest, error) {
	switch d := declaration.(type) {
	case nil:
		return nil, nil
	case manifest.PrivacyManifestFile:
		path, err := paths.Resolve(d.Path)
		if err != nil {
			return nil, err
		}
		return types.PrivacyManifestFile{Path: path}, nil
	case manifest.PrivacyManifestDictionary:
		return types.PrivacyManifestDictionary{Content: MapPlistDictionary(d.Content)}, nil
	default:
		panic("unhandled privacy manifest declaration")
	}
}
