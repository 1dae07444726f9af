package cli

import (
	"fmt"

	"github.com/mnott/cli/internal/config"
	"github.com/mnott/cli/internal/layout"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the PAI directory tree",
	Long: `Create the managed directory tree: the config directory, the bin
directory for Tier 1 scripts, the scripts directory for standalone
tools, a commented .env, and a commented config file. Existing items
are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Initializing tree at %s\n", config.Dir())

		if err := layout.InitTree(out); err != nil {
			return fmt.Errorf("initializing tree: %w", err)
		}

		successColor.Fprintln(out, "\nTree initialized.")
		return nil
	},
}
