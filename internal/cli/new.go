package cli

import (
	"fmt"
	"io"

	"github.com/mnott/cli/internal/config"
	"github.com/mnott/cli/internal/gitutil"
	"github.com/mnott/cli/internal/layout"
	"github.com/mnott/cli/internal/manifest"
	"github.com/mnott/cli/internal/platform"
	"github.com/mnott/cli/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	newDesc       string
	newPai        bool
	newStandalone bool
	newDeps       string
	newDefault    string
	newForce      bool
)

func init() {
	newCmd.Flags().StringVarP(&newDesc, "desc", "d", "", "Short description of the new tool")
	newCmd.Flags().BoolVarP(&newPai, "pai", "p", false, "Create in the PAI bin directory (Tier 1)")
	newCmd.Flags().BoolVarP(&newStandalone, "standalone", "s", false, "Create as a standalone tool with its own repo (Tier 3)")
	newCmd.Flags().StringVar(&newDeps, "deps", "", "Comma-separated extra dependencies (name, name==1.2.3, name>=1.2)")
	newCmd.Flags().StringVar(&newDefault, "default", "", "Name of the generated default subcommand")
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "Overwrite if the destination exists")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new command-line script from the skeleton",
	Long: `Create a new Typer + Rich command-line script from the built-in skeleton.

By default the script lands in the current directory (Tier 2 - Project).
Use --pai for scripts in the managed bin directory, --standalone for a
full tool directory with requirements, README, git repo, and launcher
symlink.

Examples:
  cli new backup
  cli new db-sync --pai --desc "Synchronize the staging database"
  cli new report --standalone --deps "requests,pandas>=2.0" --default run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		tier, err := layout.SelectTier(newPai, newStandalone)
		if err != nil {
			return err
		}

		target, err := layout.Resolve(name, tier)
		if err != nil {
			return err
		}
		if err := layout.CheckDestination(target, newForce); err != nil {
			return err
		}

		extraDeps, err := manifest.ParseList(newDeps)
		if err != nil {
			return err
		}

		data, err := buildScriptData(name, newDesc, newDefault, extraDeps)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if tier == layout.TierStandalone {
			result, err := scaffold.GenerateProject(data, target.ToolDir)
			if err != nil {
				return err
			}
			printProjectFiles(out, target, result)
			initToolRepo(out, target.ToolDir)
			linkLauncher(out, target)
		} else {
			if _, err := scaffold.GenerateScript(data, target.ScriptPath); err != nil {
				return err
			}
			successColor.Fprintf(out, "Created: %s\n", target.ScriptPath)
		}

		printSummary(out, target, "created")
		return nil
	},
}

// buildScriptData assembles the template values, falling back to the
// config keys desc and default_command where flags were not given.
func buildScriptData(name, desc, defaultCommand string, extraDeps []manifest.Dep) (*scaffold.ScriptData, error) {
	if desc == "" {
		desc = config.Get(config.KeyDesc)
	}
	if defaultCommand == "" {
		defaultCommand = config.Get(config.KeyDefaultCommand)
	}
	if defaultCommand != "" {
		if err := scaffold.ValidateCommandName(defaultCommand); err != nil {
			return nil, err
		}
	}
	return scaffold.NewScriptData(name, desc, defaultCommand, extraDeps), nil
}

// printProjectFiles lists a standalone project's artifacts: supporting
// files in faint, the script itself in green.
func printProjectFiles(w io.Writer, target *layout.Target, result *scaffold.Result) {
	scriptName := target.Name + layout.ScriptExt
	for _, f := range result.Files {
		if f == scriptName {
			continue
		}
		dimColor.Fprintf(w, "Created: %s/%s\n", result.OutputDir, f)
	}
	successColor.Fprintf(w, "Created: %s\n", target.ScriptPath)
}

// initToolRepo turns the tool directory into a git repository. Failure is
// not fatal; the project works without version control.
func initToolRepo(w io.Writer, dir string) {
	if err := gitutil.EnsureGit(); err != nil {
		fmt.Fprintf(w, "Warning: %v\n", err)
		return
	}
	if err := gitutil.InitRepo(dir); err != nil {
		fmt.Fprintf(w, "Warning: git init failed: %v\n", err)
		return
	}
	dimColor.Fprintln(w, "Initialized: git repository")
}

// linkLauncher points the launcher symlink at the script, replacing
// whatever was there before.
func linkLauncher(w io.Writer, target *layout.Target) {
	_ = platform.RemoveSymlink(target.LinkPath)
	if err := platform.CreateSymlink(target.ScriptPath, target.LinkPath); err != nil {
		fmt.Fprintf(w, "Warning: could not create launcher link: %v\n", err)
		return
	}
	successColor.Fprintf(w, "Symlinked: %s -> %s\n", target.LinkPath, target.ScriptPath)
}

// printSummary prints the closing block with location and usage hints.
func printSummary(w io.Writer, target *layout.Target, verb string) {
	fmt.Fprintf(w, "\n%s %s as %s\n\n", boldColor.Sprint(target.Name), verb, target.Tier.Label())
	fmt.Fprintf(w, "%s %s\n", statusColor.Sprint("Location:"), target.ScriptPath)

	if target.Tier == layout.TierStandalone {
		fmt.Fprintf(w, "%s %s --help\n", statusColor.Sprint("Run with:"), target.Name)
		fmt.Fprintf(w, "\n%s\n", statusColor.Sprint("Next steps:"))
		fmt.Fprintf(w, "  cd %s\n", target.ToolDir)
		fmt.Fprintln(w, "  uv pip install -r requirements.txt")
	} else {
		fmt.Fprintf(w, "%s ./%s%s --help\n", statusColor.Sprint("Run with:"), target.Name, layout.ScriptExt)
	}
}
