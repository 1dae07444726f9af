package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mnott/cli/internal/config"
	"github.com/mnott/cli/internal/layout"
	"github.com/mnott/cli/internal/runtime"
	"github.com/spf13/cobra"
)

var (
	checkConfig  bool
	checkRuntime bool
	checkLinks   bool
	doctorFix    bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkConfig, "check-config", false, "Validate the config file against its schema")
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify python3, git, and uv are available")
	doctorCmd.Flags().BoolVar(&checkLinks, "check-links", false, "Verify the managed tree, permissions, and launcher links")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Repair what can be repaired (directories, permissions, links)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the managed tree and its prerequisites",
	Long:  `Run diagnostic checks on the PAI tree, the config file, and the external tools generated scripts depend on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		anyFlag := checkConfig || checkRuntime || checkLinks

		// No specific flag: run everything, reporting but not failing.
		if !anyFlag {
			runtime.CheckTools(cmd.Context(), out)
			if err := runConfigCheck(out); err != nil {
				fmt.Fprintf(out, "[WARN] Config check failed: %v\n", err)
			}
			if err := layout.CheckTree(out, doctorFix); err != nil {
				fmt.Fprintf(out, "[WARN] Tree check failed: %v\n", err)
			}
			return nil
		}

		if checkRuntime {
			runtime.CheckTools(cmd.Context(), out)
		}
		if checkConfig {
			if err := runConfigCheck(out); err != nil {
				return err
			}
		}
		if checkLinks {
			if err := layout.CheckTree(out, doctorFix); err != nil {
				return err
			}
		}
		return nil
	},
}

// runConfigCheck validates ~/.pai/config.yaml against the embedded schema.
func runConfigCheck(w io.Writer) error {
	fmt.Fprintln(w, "Config check:")

	path := config.FilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [SKIP] %s does not exist (defaults in effect)\n", path)
		return nil
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("config validation failed: %w", err)
	}

	if result.Valid {
		fmt.Fprintf(w, "  [ OK ] %s is valid\n", path)
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("config %s has %d validation issue(s)", path, len(result.Issues))
}
