package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/mnott/cli/internal/layout"
	"github.com/spf13/cobra"
)

var (
	listTierFilter string
	listJSON       bool
)

func init() {
	listCmd.Flags().StringVar(&listTierFilter, "tier", "", "Filter by tier (pai, standalone)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one managed script for display.
type listEntry struct {
	Name   string `json:"name"`
	Tier   string `json:"tier"`
	Path   string `json:"path"`
	Status string `json:"status"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scripts in the managed tree",
	Long:  `List scripts in the PAI bin directory and standalone tools in the scripts directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scanned, err := layout.Scan()
		if err != nil {
			return fmt.Errorf("scanning managed tree: %w", err)
		}

		var entries []listEntry
		for _, e := range scanned {
			if listTierFilter != "" && e.Tier.String() != listTierFilter {
				continue
			}
			entries = append(entries, listEntry{
				Name:   e.Name,
				Tier:   e.Tier.String(),
				Path:   e.ScriptPath,
				Status: entryStatus(e),
			})
		}

		if len(entries) == 0 {
			if listTierFilter != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "No managed scripts matching --tier=%s\n", listTierFilter)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No managed scripts yet.")
			}
			return nil
		}

		if listJSON {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tTIER\tPATH\tSTATUS")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Tier, e.Path, e.Status)
		}
		return w.Flush()
	},
}

func entryStatus(e layout.Entry) string {
	switch {
	case e.Missing:
		return "missing"
	case e.Tier == layout.TierStandalone && !e.Linked:
		return "unlinked"
	default:
		return "ok"
	}
}
