package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"projgen/internal/app"
	"projgen/internal/types"
)

type inspectOptions struct {
	Manifest                 string
	Target                   string
	Dump                     bool
	DerivedDirectory         string
	PrivacyManifestDirectory string
	Workers                  int
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect [path]",
		Short: "Show a mapped target as the generator sees it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", ".", "Project.yaml file or its directory")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Target name, prompted for when omitted")
	cmd.Flags().BoolVar(&opts.Dump, "dump", false, "Dump the full target structure")
	addMapperFlags(cmd, &opts.DerivedDirectory, &opts.PrivacyManifestDirectory, &opts.Workers)
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, args []string, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(withLogger(ctx), app.InspectRequest{
		ManifestPath: manifestArg(cmd, args, opts.Manifest),
		Target:       opts.Target,
		Options:      resolveMapperOptions(cmd, opts.DerivedDirectory, opts.PrivacyManifestDirectory, opts.Workers),
	})
	if err != nil {
		return err
	}
	printInspect(os.Stdout, result, opts.Dump)
	return nil
}

func printInspect(w io.Writer, result app.InspectResult, dump bool) {
	target := result.Target
	fmt.Fprintf(w, "project: %s\n", result.Project)
	fmt.Fprintf(w, "target: %s (%s)\n", target.Name, target.Product)
	if target.BundleID != "" {
		fmt.Fprintf(w, "bundle id: %s\n", target.BundleID)
	}
	fmt.Fprintf(w, "info plist: %s\n", describeDeclaration(target.InfoPlist))
	fmt.Fprintf(w, "entitlements: %s\n", describeDeclaration(target.Entitlements))
	fmt.Fprintf(w, "privacy manifest: %s\n", describeDeclaration(target.PrivacyManifest))
	if result.PrivacyManifestPath != "" {
		fmt.Fprintf(w, "synthesized privacy manifest: %s\n", result.PrivacyManifestPath)
	}
	fmt.Fprintf(w, "resources: %d\n", len(target.Resources))
	for _, path := range target.Resources.Paths() {
		fmt.Fprintf(w, "- %s\n", path)
	}
	for _, model := range target.CoreDataModels {
		fmt.Fprintf(w, "core data model: %s (current %s, %d versions)\n", model.Path, model.CurrentVersion, len(model.Versions))
	}
	if dump {
		config := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true, DisableCapacities: true}
		config.Fdump(w, target)
	}
}

func describeDeclaration(declaration any) string {
	switch d := declaration.(type) {
	case nil:
		return "none"
	case types.InfoPlistFile:
		return "file " + d.Path
	case types.InfoPlistDictionary:
		return fmt.Sprintf("dictionary (%d keys)", len(d.Content))
	case types.InfoPlistExtendingDefault:
		return fmt.Sprintf("extending default (%d keys)", len(d.Content))
	case types.EntitlementsFile:
		return "file " + d.Path
	case types.EntitlementsDictionary:
		return fmt.Sprintf("dictionary (%d keys)", len(d.Content))
	case types.PrivacyManifestFile:
		return "file " + d.Path
	case types.PrivacyManifestDictionary:
		return fmt.Sprintf("dictionary (%d keys)", len(d.Content))
	default:
		return fmt.Sprintf("%T", declaration)
	}
}
