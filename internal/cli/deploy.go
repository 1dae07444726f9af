package cli

import (
	"github.com/mnott/cli/internal/deploy"
	"github.com/mnott/cli/internal/layout"
	"github.com/mnott/cli/internal/manifest"
	"github.com/mnott/cli/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	deployName       string
	deployPai        bool
	deployStandalone bool
	deployDesc       string
	deployDeps       string
	deployMove       bool
	deployForce      bool
)

func init() {
	deployCmd.Flags().StringVarP(&deployName, "name", "n", "", "Installed name (default: source filename without extension)")
	deployCmd.Flags().BoolVarP(&deployPai, "pai", "p", false, "Deploy to the PAI bin directory (Tier 1, the default)")
	deployCmd.Flags().BoolVarP(&deployStandalone, "standalone", "s", false, "Deploy as a standalone tool with its own repo (Tier 3)")
	deployCmd.Flags().StringVarP(&deployDesc, "desc", "d", "", "Short description for the generated README (standalone only)")
	deployCmd.Flags().StringVar(&deployDeps, "deps", "", "Comma-separated extra dependencies for requirements.txt (standalone only)")
	deployCmd.Flags().BoolVar(&deployMove, "move", false, "Remove the source file after deploying")
	deployCmd.Flags().BoolVarP(&deployForce, "force", "f", false, "Overwrite if the destination exists")
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy <script>",
	Short: "Deploy an existing script into the managed tree",
	Long: `Deploy an existing script into the managed PAI tree.

The script is copied (or moved, with --move) to the PAI bin directory by
default. With --standalone the script gets its own tool directory with
requirements, README, git repo, and launcher symlink, just like a
freshly scaffolded standalone tool.

Examples:
  cli deploy ./backup.py
  cli deploy ./backup.py --move
  cli deploy scratch.py -n db-sync --standalone --desc "Synchronize the staging database"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]

		name := deployName
		if name == "" {
			name = deploy.NameFromSource(source)
		}

		tier, err := layout.SelectTier(deployPai, deployStandalone)
		if err != nil {
			return err
		}
		// Deploying into the working directory is not a deployment; the
		// default tier is the managed bin directory.
		if tier == layout.TierProject {
			tier = layout.TierBin
		}

		target, err := layout.Resolve(name, tier)
		if err != nil {
			return err
		}
		if err := layout.CheckDestination(target, deployForce); err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if tier == layout.TierStandalone {
			extraDeps, err := manifest.ParseList(deployDeps)
			if err != nil {
				return err
			}
			data, err := buildScriptData(name, deployDesc, "", extraDeps)
			if err != nil {
				return err
			}

			result, err := scaffold.GenerateSupportFiles(data, target.ToolDir)
			if err != nil {
				return err
			}
			for _, f := range result.Files {
				dimColor.Fprintf(out, "Created: %s/%s\n", result.OutputDir, f)
			}
		}

		if err := deploy.Install(source, target, deployMove); err != nil {
			return err
		}
		successColor.Fprintf(out, "Deployed: %s\n", target.ScriptPath)
		if deployMove {
			dimColor.Fprintf(out, "Removed: %s\n", source)
		}

		if tier == layout.TierStandalone {
			initToolRepo(out, target.ToolDir)
			linkLauncher(out, target)
		}

		printSummary(out, target, "deployed")
		return nil
	},
}
