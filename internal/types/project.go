package types

// CoreDataModel is a resolved .xcdatamodeld bundle.
type CoreDataModel struct {
	Path           string
	Versions       []string
	CurrentVersion string
}

// Target is a node of the project graph. Values are treated as immutable
// between pipeline stages; use the With* helpers to derive updated copies.
type Target struct {
	Name            string
	Product         Product
	BundleID        string
	Resources       ResourceFileElements
	InfoPlist       InfoPlist
	Entitlements    Entitlements
	PrivacyManifest PrivacyManifest
	CoreDataModels  []CoreDataModel
}

// WithResources returns a copy of the target with its resource list
// replaced.
func (t Target) WithResources(resources ResourceFileElements) Target {
	t.Resources = resources
	return t
}

// Project is a named collection of targets rooted at Path.
type Project struct {
	Name    string
	Path    string
	Targets []Target
}

// WithTargets returns a copy of the project with its targets replaced.
func (p Project) WithTargets(targets []Target) Project {
	p.Targets = targets
	return p
}

// Target looks a target up by name.
func (p Project) Target(name string) (Target, bool) {
	for _, target := range p.Targets {
		if target.Name == name {
			return target, true
		}
	}
	return Target{}, false
}
