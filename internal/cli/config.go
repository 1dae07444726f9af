package cli

import (
	"fmt"

	"github.com/mnott/cli/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write the configuration stored at ~/.pai/config.yaml.

Recognized keys: bin_dir, scripts_dir, desc, default_command,
update.check, update.interval_hours.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}

		// The write went through Viper, so check the file still conforms.
		result, err := config.ValidateFile(config.FilePath())
		if err != nil {
			return fmt.Errorf("validating config: %w", err)
		}
		if !result.Valid {
			for _, issue := range result.Issues {
				errorColor.Fprintf(cmd.ErrOrStderr(), "  - %s: %s\n", issue.Path, issue.Message)
			}
			return fmt.Errorf("config is invalid after setting %q; fix or unset the key", key)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.FilePath())
		return nil
	},
}
