package cli

import (
	"fmt"
	"strings"

	"github.com/mnott/cli/internal/branding"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var (
	docTitle string
	docTOC   bool
)

func init() {
	docCmd.Flags().StringVar(&docTitle, "title", "", "The title of the document")
	docCmd.Flags().BoolVar(&docTOC, "toc", false, "Whether to create a table of contents")
	rootCmd.AddCommand(docCmd)
}

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Write markdown documentation for this CLI to stdout",
	Long: `Write markdown documentation for the whole command tree to stdout,
so 'cli doc > README.md' regenerates the manual.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		title := docTitle
		if title == "" {
			title = branding.CLIName()
		}
		fmt.Fprintf(out, "# %s\n\n", title)
		fmt.Fprintf(out, "%s\n\n", branding.Description())

		commands := markdownCommands(rootCmd)

		if docTOC {
			for _, c := range commands {
				path := c.CommandPath()
				fmt.Fprintf(out, "- [%s](#%s)\n", path, strings.ReplaceAll(path, " ", "-"))
			}
			fmt.Fprintln(out)
		}

		for _, c := range commands {
			c.DisableAutoGenTag = true
			if err := doc.GenMarkdown(c, out); err != nil {
				return fmt.Errorf("generating docs for %s: %w", c.CommandPath(), err)
			}
		}
		return nil
	},
}

// markdownCommands returns the root followed by every visible command,
// depth first, in declaration order.
func markdownCommands(root *cobra.Command) []*cobra.Command {
	cmds := []*cobra.Command{root}
	var walk func(*cobra.Command)
	walk = func(c *cobra.Command) {
		for _, sub := range c.Commands() {
			if !sub.IsAvailableCommand() || sub.IsAdditionalHelpTopicCommand() {
				continue
			}
			cmds = append(cmds, sub)
			walk(sub)
		}
	}
	walk(root)
	return cmds
}
