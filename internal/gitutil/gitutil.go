// Package gitutil wraps the git executable for initializing repositories
// in standalone tool projects.
package gitutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// EnsureGit checks that git is available on PATH.
func EnsureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}

// IsRepo reports whether dir already contains a git repository.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

// InitRepo initializes a git repository in dir. Re-running on an existing
// repository is harmless (git reinitializes in place).
func InitRepo(dir string) error {
	if err := EnsureGit(); err != nil {
		return err
	}

	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("initializing git repository: %w\n%s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
