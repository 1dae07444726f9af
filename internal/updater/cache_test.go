package updater

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCache_Missing(t *testing.T) {
	cache, err := LoadCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache != nil {
		t.Error("expected nil cache for missing file")
	}
}

func TestSaveAndLoadCache(t *testing.T) {
	tmp := t.TempDir()

	original := &VersionCache{
		CurrentVersion:  "1.1.0",
		LatestVersion:   "1.2.0",
		CheckedAt:       time.Now().Truncate(time.Second),
		UpdateAvailable: true,
	}

	if err := SaveCache(tmp, original); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}

	loaded, err := LoadCache(tmp)
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}

	if loaded.LatestVersion != "1.2.0" {
		t.Errorf("LatestVersion = %q, want %q", loaded.LatestVersion, "1.2.0")
	}
	if loaded.CurrentVersion != "1.1.0" {
		t.Errorf("CurrentVersion = %q, want %q", loaded.CurrentVersion, "1.1.0")
	}
	if !loaded.UpdateAvailable {
		t.Error("UpdateAvailable should be true")
	}
}

func TestSaveCacheCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	if err := SaveCache(dir, &VersionCache{CheckedAt: time.Now()}); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, cacheFileName)); err != nil {
		t.Errorf("cache file not written: %v", err)
	}
}

func TestLoadCache_Corrupted(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, cacheFileName)
	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCache(tmp); err == nil {
		t.Error("expected error for corrupted cache")
	}
}

func TestIsCacheStale(t *testing.T) {
	tests := []struct {
		name     string
		cache    *VersionCache
		maxAge   time.Duration
		expected bool
	}{
		{"nil cache is stale", nil, 24 * time.Hour, true},
		{"fresh cache", &VersionCache{CheckedAt: time.Now()}, 24 * time.Hour, false},
		{"stale cache", &VersionCache{CheckedAt: time.Now().Add(-25 * time.Hour)}, 24 * time.Hour, true},
		{"just past boundary", &VersionCache{CheckedAt: time.Now().Add(-24*time.Hour - time.Second)}, 24 * time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCacheStale(tt.cache, tt.maxAge); got != tt.expected {
				t.Errorf("IsCacheStale = %v, want %v", got, tt.expected)
			}
		})
	}
}
