package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mnott/cli/internal/platform"
)

// Entry describes one managed script found in the tree.
type Entry struct {
	Name       string
	Tier       Tier
	ScriptPath string
	Linked     bool // standalone launcher link resolves to the script
	Missing    bool // expected script file absent
}

// Scan inventories the managed tree: flat scripts in the bin directory and
// standalone projects under the scripts directory. Missing base directories
// yield an empty inventory, not an error. Entries are sorted by tier, then
// name.
func Scan() ([]Entry, error) {
	var entries []Entry

	binEntries, err := scanBin(BinDir())
	if err != nil {
		return nil, err
	}
	entries = append(entries, binEntries...)

	standaloneEntries, err := scanStandalone(ScriptsDir())
	if err != nil {
		return nil, err
	}
	entries = append(entries, standaloneEntries...)

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Tier != entries[j].Tier {
			return entries[i].Tier < entries[j].Tier
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// scanBin lists flat tier-1 scripts (*.py files) in the bin directory.
func scanBin(dir string) ([]Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading bin directory: %w", err)
	}

	var entries []Entry
	for _, item := range items {
		if item.IsDir() || !strings.HasSuffix(item.Name(), ScriptExt) {
			continue
		}
		name := strings.TrimSuffix(item.Name(), ScriptExt)
		entries = append(entries, Entry{
			Name:       name,
			Tier:       TierBin,
			ScriptPath: filepath.Join(dir, item.Name()),
		})
	}
	return entries, nil
}

// scanStandalone lists tier-3 projects (dev.* directories) under the
// scripts directory and checks their launcher links.
func scanStandalone(dir string) ([]Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading scripts directory: %w", err)
	}

	var entries []Entry
	for _, item := range items {
		if !item.IsDir() || !strings.HasPrefix(item.Name(), ProjectPrefix) {
			continue
		}
		name := strings.TrimPrefix(item.Name(), ProjectPrefix)

		entry := Entry{
			Name:       name,
			Tier:       TierStandalone,
			ScriptPath: filepath.Join(dir, item.Name(), name+ScriptExt),
		}
		if _, err := os.Stat(entry.ScriptPath); err != nil {
			entry.Missing = true
		}
		entry.Linked = linkResolves(filepath.Join(dir, name), entry.ScriptPath)

		entries = append(entries, entry)
	}
	return entries, nil
}

// linkResolves reports whether the launcher link exists and points at the
// script. Reading the target through platform covers the Windows sidecar
// fallback, where the launcher is a copy rather than a real symlink.
func linkResolves(linkPath, scriptPath string) bool {
	target, err := platform.ReadSymlinkTarget(linkPath)
	if err != nil {
		return false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(linkPath), target)
	}
	resolved, err := filepath.EvalSymlinks(target)
	if err != nil {
		return false
	}
	wantResolved, err := filepath.EvalSymlinks(scriptPath)
	if err != nil {
		// Launcher exists but the script it should point at doesn't.
		return false
	}
	return resolved == wantResolved
}
