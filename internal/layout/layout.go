package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mnott/cli/internal/branding"
	"github.com/mnott/cli/internal/config"
)

// Directory and file name constants for the managed tree.
const (
	BinDirName     = "bin"
	ScriptsDirName = "scripts"
	ProjectPrefix  = "dev."
	ScriptExt      = ".py"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermSecure os.FileMode = 0600
)

// Tier selects one of the three destination categories for a script.
type Tier int

const (
	// TierProject writes into the current working directory.
	TierProject Tier = iota
	// TierBin writes into the flat managed bin directory.
	TierBin
	// TierStandalone creates a project directory plus a launcher symlink.
	TierStandalone
)

// String returns the short identifier used in machine-readable output.
func (t Tier) String() string {
	switch t {
	case TierBin:
		return "pai"
	case TierStandalone:
		return "standalone"
	default:
		return "project"
	}
}

// Label returns the human-readable tier name shown in command output.
func (t Tier) Label() string {
	switch t {
	case TierBin:
		return "PAI (Tier 1)"
	case TierStandalone:
		return "Standalone (Tier 3)"
	default:
		return "Project (Tier 2)"
	}
}

// SelectTier maps the --pai and --standalone flags to a tier.
// Both flags together are an error.
func SelectTier(pai, standalone bool) (Tier, error) {
	if pai && standalone {
		return TierProject, fmt.Errorf("cannot use both --pai and --standalone")
	}
	if standalone {
		return TierStandalone, nil
	}
	if pai {
		return TierBin, nil
	}
	return TierProject, nil
}

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateName checks that a tool name is a filesystem-safe identifier.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("tool name is required")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid tool name %q: use lowercase letters, digits, '-' and '_'", name)
	}
	return nil
}

// BinDir returns the flat managed bin directory (tier 1).
// It checks the PAI_BIN_DIR environment variable first, then the bin_dir
// config key, then falls back to ~/.pai/bin.
func BinDir() string {
	if v := os.Getenv(branding.EnvVar("BIN_DIR")); v != "" {
		return expandHome(v)
	}
	if v := config.Get(config.KeyBinDir); v != "" {
		return expandHome(v)
	}
	return filepath.Join(config.Dir(), BinDirName)
}

// ScriptsDir returns the standalone tools directory (tier 3).
// It checks the PAI_SCRIPTS_DIR environment variable first, then the
// scripts_dir config key, then falls back to ~/.pai/scripts.
func ScriptsDir() string {
	if v := os.Getenv(branding.EnvVar("SCRIPTS_DIR")); v != "" {
		return expandHome(v)
	}
	if v := config.Get(config.KeyScriptsDir); v != "" {
		return expandHome(v)
	}
	return filepath.Join(config.Dir(), ScriptsDirName)
}

// expandHome resolves a leading ~/ against the user home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// Target describes where a script and its supporting files will land.
type Target struct {
	Tier       Tier
	Name       string
	ScriptPath string // final path of the executable script
	ToolDir    string // project directory (standalone tier only)
	LinkPath   string // launcher symlink (standalone tier only)
}

// Resolve computes the destination paths for a named script in a tier.
func Resolve(name string, tier Tier) (*Target, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	switch tier {
	case TierProject:
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		return &Target{
			Tier:       tier,
			Name:       name,
			ScriptPath: filepath.Join(cwd, name+ScriptExt),
		}, nil

	case TierBin:
		return &Target{
			Tier:       tier,
			Name:       name,
			ScriptPath: filepath.Join(BinDir(), name+ScriptExt),
		}, nil

	case TierStandalone:
		base := ScriptsDir()
		toolDir := filepath.Join(base, ProjectPrefix+name)
		return &Target{
			Tier:       tier,
			Name:       name,
			ScriptPath: filepath.Join(toolDir, name+ScriptExt),
			ToolDir:    toolDir,
			LinkPath:   filepath.Join(base, name),
		}, nil
	}

	return nil, fmt.Errorf("unknown tier %d", tier)
}

// ExistsError reports a destination that already exists when overwriting
// was not requested.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("%s already exists. Use --force to overwrite.", e.Path)
}

// CheckDestination returns an *ExistsError if the target's destination
// already exists and force is false. For the standalone tier the project
// directory counts as the destination too.
func CheckDestination(target *Target, force bool) error {
	paths := []string{target.ScriptPath}
	if target.ToolDir != "" {
		paths = append(paths, target.ToolDir)
	}

	for _, p := range paths {
		_, err := os.Lstat(p)
		if err == nil {
			if !force {
				return &ExistsError{Path: p}
			}
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("checking %s: %w", p, err)
		}
	}
	return nil
}
