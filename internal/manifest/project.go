package manifest

import (
	"gopkg.in/yaml.v3"
)

type CoreDataModel struct {
	Path Path `yaml:"path"`
	// CurrentVersion is read from the model's .xccurrentversion file when
	// empty.
	CurrentVersion string `yaml:"current_version,omitempty"`
}

type Target struct {
	Name            string
	Product         string
	BundleID        string
	Resources       []ResourceFileElement
	InfoPlist       InfoPlist
	Entitlements    Entitlements
	PrivacyManifest PrivacyManifest
	CoreDataModels  []CoreDataModel
}

type rawTarget struct {
	Name            string          `yaml:"name"`
	Product         string          `yaml:"product"`
	BundleID        string          `yaml:"bundle_id"`
	Resources       []yaml.Node     `yaml:"resources"`
	InfoPlist       *yaml.Node      `yaml:"info_plist"`
	Entitlements    *yaml.Node      `yaml:"entitlements"`
	PrivacyManifest *yaml.Node      `yaml:"privacy_manifest"`
	CoreDataModels  []CoreDataModel `yaml:"core_data_models"`
}

func (t *Target) UnmarshalYAML(node *yaml.Node) error {
	var raw rawTarget
	if err := node.Decode(&raw); err != nil {
		return err
	}
	target := Target{
		Name:           raw.Name,
		Product:        raw.Product,
		BundleID:       raw.BundleID,
		CoreDataModels: raw.CoreDataModels,
	}
	for i := range raw.Resources {
		resource, err := decodeResource(&raw.Resources[i])
		if err != nil {
			return err
		}
		target.Resources = append(target.Resources, resource)
	}
	var err error
	if target.InfoPlist, err = decodeInfoPlist(raw.InfoPlist); err != nil {
		return err
	}
	if target.Entitlements, err = decodeEntitlements(raw.Entitlements); err != nil {
		return err
	}
	if target.PrivacyManifest, err = decodePrivacyManifest(raw.PrivacyManifest); err != nil {
		return err
	}
	*t = target
	return nil
}

// Project is the top-level structure of a Project.yaml manifest.
type Project struct {
	Name    string   `yaml:"name"`
	Targets []Target `yaml:"targets"`
}
