//go:build integration

package integration_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mnott/cli/internal/layout"
	"github.com/mnott/cli/internal/platform"
	"github.com/mnott/cli/internal/scaffold"
)

// TestInitThenScan: a fresh tree starts empty and picks up scripts as
// they are generated.
func TestInitThenScan(t *testing.T) {
	env := setupTestEnv(t)

	var buf bytes.Buffer
	if err := layout.InitTree(&buf); err != nil {
		t.Fatalf("InitTree: %v", err)
	}
	assertDirExists(t, env.BinDir)
	assertDirExists(t, env.ScriptsDir)
	assertFileExists(t, filepath.Join(env.Home, ".pai", ".env"))
	assertFileExists(t, filepath.Join(env.Home, ".pai", "config.yaml"))

	entries, err := layout.Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("fresh tree has %d entries, want 0", len(entries))
	}

	// One bin script, one standalone tool.
	binTarget, err := layout.Resolve("backup", layout.TierBin)
	if err != nil {
		t.Fatalf("Resolve(bin): %v", err)
	}
	if _, err := scaffold.GenerateScript(scaffold.NewScriptData("backup", "", "", nil), binTarget.ScriptPath); err != nil {
		t.Fatalf("GenerateScript: %v", err)
	}

	saTarget, err := layout.Resolve("report", layout.TierStandalone)
	if err != nil {
		t.Fatalf("Resolve(standalone): %v", err)
	}
	if _, err := scaffold.GenerateProject(scaffold.NewScriptData("report", "", "", nil), saTarget.ToolDir); err != nil {
		t.Fatalf("GenerateProject: %v", err)
	}
	if err := platform.CreateSymlink(saTarget.ScriptPath, saTarget.LinkPath); err != nil {
		t.Fatalf("CreateSymlink: %v", err)
	}

	entries, err = layout.Scan()
	if err != nil {
		t.Fatalf("Scan (populated): %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("populated tree has %d entries, want 2: %+v", len(entries), entries)
	}
	if entries[0].Name != "backup" || entries[0].Tier != layout.TierBin {
		t.Errorf("entries[0] = %+v, want bin script backup", entries[0])
	}
	if entries[1].Name != "report" || entries[1].Tier != layout.TierStandalone || !entries[1].Linked {
		t.Errorf("entries[1] = %+v, want linked standalone report", entries[1])
	}
}

// TestDoctorFixesBrokenTree: a missing launcher link gets repaired.
func TestDoctorFixesBrokenTree(t *testing.T) {
	setupTestEnv(t)

	var init bytes.Buffer
	if err := layout.InitTree(&init); err != nil {
		t.Fatalf("InitTree: %v", err)
	}

	target, err := layout.Resolve("report", layout.TierStandalone)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, err := scaffold.GenerateProject(scaffold.NewScriptData("report", "", "", nil), target.ToolDir); err != nil {
		t.Fatalf("GenerateProject: %v", err)
	}
	// Launcher never created: doctor should notice and repair it.

	var report bytes.Buffer
	if err := layout.CheckTree(&report, false); err != nil {
		t.Fatalf("CheckTree: %v", err)
	}
	if !strings.Contains(report.String(), "[WARN]") {
		t.Errorf("expected a warning about the missing launcher:\n%s", report.String())
	}

	var fix bytes.Buffer
	if err := layout.CheckTree(&fix, true); err != nil {
		t.Fatalf("CheckTree(fix): %v", err)
	}
	if !strings.Contains(fix.String(), "[FIX ]") {
		t.Errorf("expected a fix line:\n%s", fix.String())
	}

	resolved, err := filepath.EvalSymlinks(target.LinkPath)
	if err != nil {
		t.Fatalf("launcher still broken after fix: %v", err)
	}
	want, err := filepath.EvalSymlinks(target.ScriptPath)
	if err != nil {
		t.Fatalf("EvalSymlinks(script): %v", err)
	}
	if resolved != want {
		t.Errorf("launcher resolves to %s, want %s", resolved, want)
	}
}
