package types

// Names of the derived-output tree inside a project directory. Generated
// paths are referenced by users' tooling, so changing these values is a
// breaking change of the generator's output layout.
const (
	// DerivedDirectoryName is the tool's private derived-output directory.
	DerivedDirectoryName = "Derived"
	// PrivacyManifestDirectoryName holds one subdirectory per target with a
	// synthesized privacy manifest.
	PrivacyManifestDirectoryName = "PrivacyManifest"
	// PrivacyManifestFileName is the file name Xcode expects for privacy
	// manifests.
	PrivacyManifestFileName = "PrivacyInfo.xcprivacy"
)
