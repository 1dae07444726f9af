package cli

import (
	"testing"

	"github.com/mnott/cli/internal/config"
	"github.com/mnott/cli/internal/manifest"
	"github.com/spf13/viper"
)

func resetConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestBuildScriptDataFlagWins(t *testing.T) {
	resetConfig(t)
	viper.Set(config.KeyDesc, "From config")

	data, err := buildScriptData("backup", "From flag", "", nil)
	if err != nil {
		t.Fatalf("buildScriptData failed: %v", err)
	}
	if data.Description != "From flag" {
		t.Errorf("Description = %q, want flag value", data.Description)
	}
}

func TestBuildScriptDataConfigFallback(t *testing.T) {
	resetConfig(t)
	viper.Set(config.KeyDesc, "From config")
	viper.Set(config.KeyDefaultCommand, "run")

	data, err := buildScriptData("backup", "", "", nil)
	if err != nil {
		t.Fatalf("buildScriptData failed: %v", err)
	}
	if data.Description != "From config" {
		t.Errorf("Description = %q, want config value", data.Description)
	}
	if data.DefaultCommand != "run" {
		t.Errorf("DefaultCommand = %q, want config value", data.DefaultCommand)
	}
}

func TestBuildScriptDataHardDefaults(t *testing.T) {
	resetConfig(t)

	data, err := buildScriptData("backup", "", "", nil)
	if err != nil {
		t.Fatalf("buildScriptData failed: %v", err)
	}
	if data.Description != "A command-line tool" {
		t.Errorf("Description = %q, want built-in default", data.Description)
	}
	if data.DefaultCommand != "example" {
		t.Errorf("DefaultCommand = %q, want built-in default", data.DefaultCommand)
	}
}

func TestBuildScriptDataRejectsBadCommandName(t *testing.T) {
	resetConfig(t)

	if _, err := buildScriptData("backup", "", "Not-Valid", nil); err == nil {
		t.Error("expected error for invalid command name")
	}

	// A bad value can also arrive via config.
	viper.Set(config.KeyDefaultCommand, "has-hyphens")
	if _, err := buildScriptData("backup", "", "", nil); err == nil {
		t.Error("expected error for invalid command name from config")
	}
}

func TestBuildScriptDataMergesDeps(t *testing.T) {
	resetConfig(t)

	extras := []manifest.Dep{{Name: "requests", Constraint: "==2.32.0"}}
	data, err := buildScriptData("backup", "", "", extras)
	if err != nil {
		t.Fatalf("buildScriptData failed: %v", err)
	}

	found := false
	for _, d := range data.Deps {
		if d.Name == "requests" {
			found = true
		}
	}
	if !found {
		t.Errorf("Deps = %v, missing extra dependency", data.Deps)
	}
	if len(data.Deps) != len(manifest.BaseDeps())+1 {
		t.Errorf("len(Deps) = %d, want base set plus one", len(data.Deps))
	}
}
