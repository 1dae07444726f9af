package cli

import (
	"os"

	"github.com/mnott/cli/internal/branding"
	"github.com/mnott/cli/internal/config"
	"github.com/mnott/cli/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds new Typer + Rich command-line scripts from a
proven skeleton and deploys existing scripts into the managed PAI tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnv()
		config.Load()

		// Keep banner noise out of commands whose output gets piped or
		// that manage update state themselves.
		name := cmd.Name()
		if name == "update" || name == "init" || name == "doc" {
			return
		}
		if !updater.CheckEnabled() {
			return
		}

		// Non-blocking banner from the cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
