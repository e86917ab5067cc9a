package types

// InfoPlist is the resolved Info.plist declaration of a target. A nil
// InfoPlist means the target declares none.
type InfoPlist interface {
	isInfoPlist()
}

// InfoPlistFile points at an existing Info.plist.
type InfoPlistFile struct {
	Path string
}

// InfoPlistDictionary replaces the generated Info.plist content.
type InfoPlistDictionary struct {
	Content PlistDictionary
}

// InfoPlistExtendingDefault is merged over the built-in defaults when the
// Info.plist is serialized.
type InfoPlistExtendingDefault struct {
	Content PlistDictionary
}

func (InfoPlistFile) isInfoPlist()             {}
func (InfoPlistDictionary) isInfoPlist()       {}
func (InfoPlistExtendingDefault) isInfoPlist() {}

// Entitlements is the resolved entitlements declaration of a target.
type Entitlements interface {
	isEntitlements()
}

type EntitlementsFile struct {
	Path string
}

type EntitlementsDictionary struct {
	Content PlistDictionary
}

func (EntitlementsFile) isEntitlements()       {}
func (EntitlementsDictionary) isEntitlements() {}

// PrivacyManifest is the resolved privacy manifest declaration of a target.
type PrivacyManifest interface {
	isPrivacyManifest()
}

// PrivacyManifestFile points at an existing .xcprivacy file.
type PrivacyManifestFile struct {
	Path string
}

// PrivacyManifestDictionary holds inline content; a PrivacyInfo.xcprivacy
// file is synthesized for it at generation time.
type PrivacyManifestDictionary struct {
	Content PlistDictionary
}

func (PrivacyManifestFile) isPrivacyManifest()       {}
func (PrivacyManifestDictionary) isPrivacyManifest() {}
