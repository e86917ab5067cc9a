package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"projgen/internal/app"
)

type validateOptions struct {
	Manifest string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Load, validate and map project manifests without writing anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", ".", "Project.yaml file or directory to search")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, args []string, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(withLogger(ctx), app.ValidateRequest{
		Path: manifestArg(cmd, args, opts.Manifest),
	})
	if err != nil {
		return err
	}
	for _, name := range result.Projects {
		fmt.Printf("validated: %s\n", name)
	}
	return nil
}
