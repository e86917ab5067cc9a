package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"projgen/internal/app"
	"projgen/internal/types"
)

type generateOptions struct {
	Manifest                 string
	DryRun                   bool
	Clean                    bool
	DerivedDirectory         string
	PrivacyManifestDirectory string
	Workers                  int
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [path]",
		Short: "Map project manifests and write derived files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", ".", "Project.yaml file or directory to search")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print side effects without performing them")
	cmd.Flags().BoolVar(&opts.Clean, "clean", false, "Remove previously synthesized privacy manifests first")
	addMapperFlags(cmd, &opts.DerivedDirectory, &opts.PrivacyManifestDirectory, &opts.Workers)
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("clean", cmd.Flags().Lookup("clean"))
	return cmd
}

func addMapperFlags(cmd *cobra.Command, derived *string, privacy *string, workers *int) {
	cmd.Flags().StringVar(derived, "derived-directory", types.DerivedDirectoryName, "Directory for generated files, relative to each project")
	cmd.Flags().StringVar(privacy, "privacy-manifest-directory", types.PrivacyManifestDirectoryName, "Subdirectory of the derived directory for privacy manifests")
	cmd.Flags().IntVar(workers, "workers", 1, "Targets mapped concurrently")
	_ = viper.BindPFlag("derived_directory", cmd.Flags().Lookup("derived-directory"))
	_ = viper.BindPFlag("privacy_manifest_directory", cmd.Flags().Lookup("privacy-manifest-directory"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
}

func resolveMapperOptions(cmd *cobra.Command, derived string, privacy string, workers int) app.MapperOptions {
	return app.MapperOptions{
		DerivedDirectory:         resolveString(cmd, derived, "derived_directory", "derived-directory"),
		PrivacyManifestDirectory: resolveString(cmd, privacy, "privacy_manifest_directory", "privacy-manifest-directory"),
		Workers:                  resolveInt(cmd, workers, "workers", "workers"),
	}
}

func runGenerate(ctx context.Context, cmd *cobra.Command, args []string, opts generateOptions) error {
	service := newAppService()
	result, err := service.Generate(withLogger(ctx), app.GenerateRequest{
		Path:    manifestArg(cmd, args, opts.Manifest),
		DryRun:  resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
		Clean:   resolveBool(cmd, opts.Clean, "clean", "clean"),
		Options: resolveMapperOptions(cmd, opts.DerivedDirectory, opts.PrivacyManifestDirectory, opts.Workers),
	})
	if err != nil {
		return err
	}
	for _, project := range result.Projects {
		fmt.Printf("generated: %s (%d side effects)\n", project.Name, len(project.SideEffects))
		for _, effect := range project.SideEffects {
			fmt.Printf("  %s\n", describeEffect(effect, result.DryRun))
		}
	}
	return nil
}

func describeEffect(effect types.SideEffectDescriptor, dryRun bool) string {
	verb := ""
	switch e := effect.(type) {
	case types.FileDescriptor:
		verb = "write"
		if e.State == types.DescriptorStateAbsent {
			verb = "delete"
		}
	case types.DirectoryDescriptor:
		verb = "mkdir"
		if e.State == types.DescriptorStateAbsent {
			verb = "rmdir"
		}
	default:
		panic(fmt.Sprintf("unhandled side effect %T", effect))
	}
	if dryRun {
		return "would " + verb + " " + effect.EffectPath()
	}
	return verb + " " + effect.EffectPath()
}
