package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag values win when set on the command line; otherwise config and
// environment values win over flag defaults.

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) || !viper.IsSet(key) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) || !viper.IsSet(key) {
		return value
	}
	return viper.GetBool(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		if value != 0 {
			return value
		}
		return viper.GetInt(key)
	}
	if flagChanged(cmd, flagName) || !viper.IsSet(key) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

// manifestArg prefers a positional path over the --manifest flag.
func manifestArg(cmd *cobra.Command, args []string, value string) string {
	if len(args) > 0 {
		return args[0]
	}
	return resolveString(cmd, value, "manifest", "manifest")
}
