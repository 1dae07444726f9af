package layout

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mnott/cli/internal/config"
	"github.com/mnott/cli/internal/platform"
)

// Default content for ~/.pai/.env.
const envFileContent = `# Environment overrides read at startup. Values set in the shell win.
# PAI_BIN_DIR=~/.pai/bin
# PAI_SCRIPTS_DIR=~/.pai/scripts
`

// Default content for ~/.pai/config.yaml. Everything commented out; the
// built-in defaults apply until a key is set.
const configFileContent = `# bin_dir: ~/.pai/bin
# scripts_dir: ~/.pai/scripts
# desc: A command-line tool
# default_command: example
# update:
#   check: true
#   interval_hours: 24
`

// InitTree creates the managed directory tree with proper permissions.
// It prints progress messages to w. Existing items are skipped with a message.
func InitTree(w io.Writer) error {
	// Create the config directory first so the tree has a root.
	if err := ensureDir(w, config.Dir(), DirPermNormal); err != nil {
		return err
	}

	// Create the flat bin directory.
	if err := ensureDir(w, BinDir(), DirPermNormal); err != nil {
		return err
	}

	// Create the standalone tools directory.
	if err := ensureDir(w, ScriptsDir(), DirPermNormal); err != nil {
		return err
	}

	// Create a commented .env with the supported overrides.
	envPath := filepath.Join(config.Dir(), ".env")
	if err := ensureFile(w, envPath, envFileContent, FilePermSecure); err != nil {
		return err
	}

	// Create a commented config file showing the recognized keys.
	if err := ensureFile(w, config.FilePath(), configFileContent, 0644); err != nil {
		return err
	}

	return nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := platform.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates a file with content if it doesn't exist.
func ensureFile(w io.Writer, path, content string, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
