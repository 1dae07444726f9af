package deploy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mnott/cli/internal/layout"
	"github.com/mnott/cli/internal/platform"
)

// NameFromSource derives the default installed name from a source path:
// the basename without its extension.
func NameFromSource(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Install places the source script at the target's script path, creating
// parent directories and setting the execute bit. With move, the source is
// removed after a successful install.
func Install(sourcePath string, target *layout.Target, move bool) error {
	info, err := os.Stat(sourcePath)
	if err != nil {
		return fmt.Errorf("reading source %s: %w", sourcePath, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("source %s is not a regular file", sourcePath)
	}

	if err := os.MkdirAll(filepath.Dir(target.ScriptPath), 0755); err != nil {
		return fmt.Errorf("creating destination directory: %w", err)
	}

	if move {
		if err := moveFile(sourcePath, target.ScriptPath); err != nil {
			return err
		}
	} else if err := copyFile(sourcePath, target.ScriptPath); err != nil {
		return err
	}

	if err := platform.MakeExecutable(target.ScriptPath); err != nil {
		return fmt.Errorf("marking %s executable: %w", target.ScriptPath, err)
	}
	return nil
}

// moveFile renames when possible and falls back to copy plus remove for
// cross-filesystem moves (and Windows renames over an existing file).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := copyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("removing source %s: %w", src, err)
	}
	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	if err := os.WriteFile(dst, data, srcInfo.Mode()); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
