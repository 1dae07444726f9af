package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunConfigCheckMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var buf strings.Builder
	if err := runConfigCheck(&buf); err != nil {
		t.Fatalf("missing config should not fail: %v", err)
	}
	if !strings.Contains(buf.String(), "[SKIP]") {
		t.Errorf("output missing [SKIP]:\n%s", buf.String())
	}
}

func TestRunConfigCheckValid(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".pai")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("bin_dir: ~/.pai/bin\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := runConfigCheck(&buf); err != nil {
		t.Fatalf("valid config should pass: %v", err)
	}
	if !strings.Contains(buf.String(), "[ OK ]") {
		t.Errorf("output missing [ OK ]:\n%s", buf.String())
	}
}

func TestRunConfigCheckInvalid(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".pai")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("no_such_key: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	err := runConfigCheck(&buf)
	if err == nil {
		t.Fatal("invalid config should fail")
	}
	if !strings.Contains(buf.String(), "[FAIL]") {
		t.Errorf("output missing [FAIL]:\n%s", buf.String())
	}
}
