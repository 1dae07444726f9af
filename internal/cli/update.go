package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/mnott/cli/internal/branding"
	"github.com/mnott/cli/internal/config"
	"github.com/mnott/cli/internal/updater"
	"github.com/spf13/cobra"
)

var updateCheck bool

func init() {
	updateCmd.Flags().BoolVar(&updateCheck, "check", false, "Only check, don't print upgrade instructions")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check GitHub for a newer release",
	Long: `Check GitHub releases for a newer version and print how to upgrade.

  cli update           # check and show upgrade instructions
  cli update --check   # check only`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(os.Stderr, "Checking for updates...")
		u := updater.New(buildVersion)
		release, err := u.CheckLatestVersion()
		if err != nil {
			return fmt.Errorf("checking for updates: %w", err)
		}

		available, err := updater.IsUpdateAvailable(buildVersion, release.Version())
		if err != nil {
			// Dev builds have no comparable version; always offer the release.
			if buildVersion == "dev" {
				available = true
			} else {
				return fmt.Errorf("comparing versions: %w", err)
			}
		}

		// Record the fresh check so the startup banner stays quiet or
		// current without another network round trip.
		_ = updater.SaveCache(config.Dir(), &updater.VersionCache{
			CurrentVersion:  buildVersion,
			LatestVersion:   release.Version(),
			CheckedAt:       time.Now(),
			UpdateAvailable: available,
		})

		if !available {
			fmt.Fprintf(out, "You are on the latest version (%s)\n", buildVersion)
			return nil
		}

		fmt.Fprintf(out, "Update available: %s -> %s\n", buildVersion, release.Version())
		if updateCheck {
			return nil
		}

		fmt.Fprintf(out, "\nDownload: %s\n", release.HTMLURL)
		fmt.Fprintf(out, "Or run:   go install %s@%s\n", branding.GoModule(), release.TagName)
		return nil
	},
}
