package cli

import (
	"testing"
)

func TestMarkdownCommands(t *testing.T) {
	cmds := markdownCommands(rootCmd)

	if len(cmds) == 0 || cmds[0] != rootCmd {
		t.Fatal("expected the root command first")
	}

	paths := make(map[string]bool, len(cmds))
	for _, c := range cmds {
		if paths[c.CommandPath()] {
			t.Errorf("duplicate command %q", c.CommandPath())
		}
		paths[c.CommandPath()] = true
	}

	for _, want := range []string{
		"cli new",
		"cli deploy",
		"cli doc",
		"cli list",
		"cli init",
		"cli doctor",
		"cli config",
		"cli config get",
		"cli config set",
		"cli version",
		"cli update",
	} {
		if !paths[want] {
			t.Errorf("command %q missing from documentation set", want)
		}
	}
}
