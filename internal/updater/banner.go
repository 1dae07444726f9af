package updater

import (
	"fmt"
	"io"
	"time"

	"github.com/mnott/cli/internal/branding"
	"github.com/mnott/cli/internal/config"
)

// CheckEnabled reports whether background update checks are turned on.
// Controlled by the update.check config key; defaults to true.
func CheckEnabled() bool {
	return config.GetBool(config.KeyUpdateCheck)
}

// CacheMaxAge returns the configured check interval, falling back to
// DefaultCacheMaxAge when update.interval_hours is unset or nonsense.
func CacheMaxAge() time.Duration {
	hours := config.GetInt(config.KeyUpdateInterval)
	if hours <= 0 {
		return DefaultCacheMaxAge
	}
	return time.Duration(hours) * time.Hour
}

// CheckAndPrintBanner prints an update banner if the cached check says a
// newer release exists. It never blocks: a stale cache is refreshed by a
// background goroutine for the next invocation.
func (u *Updater) CheckAndPrintBanner(w io.Writer, configDir string) {
	cache, err := LoadCache(configDir)
	if err != nil {
		// A corrupt cache should never break a command.
		return
	}

	if cache != nil && cache.UpdateAvailable {
		PrintUpdateBanner(w, cache.CurrentVersion, cache.LatestVersion)
	}

	if IsCacheStale(cache, CacheMaxAge()) {
		go u.RefreshCache(configDir)
	}
}

// PrintUpdateBanner prints the update notification to w.
func PrintUpdateBanner(w io.Writer, current, latest string) {
	fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", current, latest)
	fmt.Fprintf(w, "    Run `%s update` to see how to upgrade\n\n", branding.CLIName())
}

// RefreshCache fetches the latest release and rewrites the cache file.
// Errors are swallowed; the next invocation retries.
func (u *Updater) RefreshCache(configDir string) {
	release, err := u.CheckLatestVersion()
	if err != nil {
		return
	}

	available, err := IsUpdateAvailable(u.currentVersion, release.Version())
	if err != nil {
		return
	}

	_ = SaveCache(configDir, &VersionCache{
		CurrentVersion:  u.currentVersion,
		LatestVersion:   release.Version(),
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	})
}
