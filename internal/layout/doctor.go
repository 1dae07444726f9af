package layout

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mnott/cli/internal/platform"
)

// CheckTree validates the managed directory tree, script permissions, and
// launcher links. When fix is true, it attempts to repair issues.
func CheckTree(w io.Writer, fix bool) error {
	fmt.Fprintln(w, "Tree check:")

	missing := false
	missing = checkBaseDir(w, BinDir(), fix) || missing
	missing = checkBaseDir(w, ScriptsDir(), fix) || missing
	if missing && !fix {
		fmt.Fprintln(w, "         Run 'cli init' to create")
		return nil
	}

	entries, err := Scan()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		switch entry.Tier {
		case TierBin:
			checkExecutable(w, entry.ScriptPath, fix)
		case TierStandalone:
			checkStandalone(w, entry, fix)
		}
	}

	return nil
}

// checkBaseDir reports a missing base directory. Returns true if missing.
func checkBaseDir(w io.Writer, path string, fix bool) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		if fix {
			if mkErr := os.MkdirAll(path, DirPermNormal); mkErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", path, mkErr)
				return true
			}
			fmt.Fprintf(w, "  [FIX ] Created %s\n", path)
			return false
		}
		return true
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return true
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s exists but is not a directory\n", path)
		return true
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
	return false
}

// checkExecutable warns when a managed script lost its execute bit.
func checkExecutable(w io.Writer, path string, fix bool) {
	if runtime.GOOS == "windows" {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	if info.Mode().Perm()&0111 != 0 {
		fmt.Fprintf(w, "  [ OK ] %s is executable\n", path)
		return
	}

	fmt.Fprintf(w, "  [WARN] %s is not executable\n", path)
	if fix {
		if err := platform.MakeExecutable(path); err != nil {
			fmt.Fprintf(w, "  [FAIL] Could not fix permissions on %s: %v\n", path, err)
			return
		}
		fmt.Fprintf(w, "  [FIX ] Made %s executable\n", path)
	}
}

// checkStandalone validates a standalone project's script and launcher link.
func checkStandalone(w io.Writer, entry Entry, fix bool) {
	if entry.Missing {
		fmt.Fprintf(w, "  [WARN] %s is missing its script %s\n", entry.Name, entry.ScriptPath)
		return
	}
	checkExecutable(w, entry.ScriptPath, fix)

	if entry.Linked {
		fmt.Fprintf(w, "  [ OK ] %s launcher link resolves\n", entry.Name)
		return
	}

	linkPath := LinkPathFor(entry.Name)
	fmt.Fprintf(w, "  [WARN] %s launcher link missing or dangling\n", entry.Name)
	if fix {
		// Replace whatever is there with a fresh link to the script.
		_ = platform.RemoveSymlink(linkPath)
		if err := platform.CreateSymlink(entry.ScriptPath, linkPath); err != nil {
			fmt.Fprintf(w, "  [FAIL] Could not relink %s: %v\n", linkPath, err)
			return
		}
		fmt.Fprintf(w, "  [FIX ] Linked %s -> %s\n", linkPath, entry.ScriptPath)
	}
}

// LinkPathFor returns the launcher link path for a standalone tool name.
func LinkPathFor(name string) string {
	return filepath.Join(ScriptsDir(), name)
}
