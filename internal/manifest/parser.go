package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// namePattern matches Python package names: alphanumeric with inner
// dots, hyphens, and underscores.
var namePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9._-]*[a-z0-9])?$`)

// constraint operators recognized in --deps entries.
var operators = []string{"==", ">="}

// ParseDep parses a single dependency entry such as "requests",
// "requests==2.32.0", or "httpx>=0.27".
func ParseDep(s string) (Dep, error) {
	entry := strings.TrimSpace(s)
	if entry == "" {
		return Dep{}, fmt.Errorf("empty dependency entry")
	}

	name := entry
	constraint := ""
	for _, op := range operators {
		if idx := strings.Index(entry, op); idx >= 0 {
			name = strings.TrimSpace(entry[:idx])
			version := strings.TrimSpace(entry[idx+len(op):])
			if version == "" {
				return Dep{}, fmt.Errorf("dependency %q has operator %s but no version", entry, op)
			}
			if _, err := semver.NewVersion(version); err != nil {
				return Dep{}, fmt.Errorf("dependency %q has invalid version %q: %w", entry, version, err)
			}
			constraint = op + version
			break
		}
	}

	name = strings.ToLower(name)
	if !namePattern.MatchString(name) {
		return Dep{}, fmt.Errorf("invalid dependency name %q", name)
	}

	return Dep{Name: name, Constraint: constraint}, nil
}

// ParseList parses a comma-separated dependency list as passed to --deps.
// Blank entries are skipped. A repeated name keeps the last entry.
func ParseList(s string) ([]Dep, error) {
	var deps []Dep
	index := make(map[string]int)

	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		dep, err := ParseDep(part)
		if err != nil {
			return nil, err
		}
		if i, seen := index[dep.Name]; seen {
			deps[i] = dep
			continue
		}
		index[dep.Name] = len(deps)
		deps = append(deps, dep)
	}

	return deps, nil
}
