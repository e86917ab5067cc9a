package types

// PlatformCondition restricts a resource to a set of platform filters.
type PlatformCondition struct {
	Platforms []string
}

// ResourceFileElement is a single entry of a target's resource list. The
// set of implementations is closed: ResourceFile, ResourceFolderReference
// and ResourcePrivacyManifest.
type ResourceFileElement interface {
	// ResourcePath is the absolute path of the element, or "" for elements
	// that have no file yet.
	ResourcePath() string
	IsReference() bool
	ResourceTags() []string
	Condition() *PlatformCondition
	isResourceFileElement()
}

// ResourceFile is a file (or glob) to include.
type ResourceFile struct {
	Path               string
	Tags               []string
	InclusionCondition *PlatformCondition
}

// ResourceFolderReference is a directory included as a folder reference.
type ResourceFolderReference struct {
	Path               string
	Tags               []string
	InclusionCondition *PlatformCondition
}

// ResourcePrivacyManifest is a privacy manifest described inline in the
// resource list.
type ResourcePrivacyManifest struct {
	Tracking           bool
	TrackingDomains    []string
	CollectedDataTypes []PlistDictionary
	AccessedAPITypes   []PlistDictionary
}

func NewResourceFile(path string) ResourceFile {
	return ResourceFile{Path: path}
}

func (r ResourceFile) ResourcePath() string          { return r.Path }
func (r ResourceFile) IsReference() bool             { return false }
func (r ResourceFile) ResourceTags() []string        { return r.Tags }
func (r ResourceFile) Condition() *PlatformCondition { return r.InclusionCondition }
func (ResourceFile) isResourceFileElement()          {}

func (r ResourceFolderReference) ResourcePath() string          { return r.Path }
func (r ResourceFolderReference) IsReference() bool             { return true }
func (r ResourceFolderReference) ResourceTags() []string        { return r.Tags }
func (r ResourceFolderReference) Condition() *PlatformCondition { return r.InclusionCondition }
func (ResourceFolderReference) isResourceFileElement()          {}

func (ResourcePrivacyManifest) ResourcePath() string          { return "" }
func (ResourcePrivacyManifest) IsReference() bool             { return false }
func (ResourcePrivacyManifest) ResourceTags() []string        { return nil }
func (ResourcePrivacyManifest) Condition() *PlatformCondition { return nil }
func (ResourcePrivacyManifest) isResourceFileElement()        {}

// ResourceFileElements is an ordered resource list. Operations return new
// lists and never write into the receiver's backing array.
type ResourceFileElements []ResourceFileElement

// Append returns a new list with elements added at the end.
func (r ResourceFileElements) Append(elements ...ResourceFileElement) ResourceFileElements {
	out := make(ResourceFileElements, 0, len(r)+len(elements))
	out = append(out, r...)
	return append(out, elements...)
}

// Remove returns a new list without the first element at path.
func (r ResourceFileElements) Remove(path string) ResourceFileElements {
	out := make(ResourceFileElements, 0, len(r))
	removed := false
	for _, element := range r {
		if !removed && element.ResourcePath() == path {
			removed = true
			continue
		}
		out = append(out, element)
	}
	return out
}

// Paths lists the element paths in order, skipping elements without one.
func (r ResourceFileElements) Paths() []string {
	var paths []string
	for _, element := range r {
		if path := element.ResourcePath(); path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}
