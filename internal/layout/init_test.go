package layout

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitTree(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PAI_BIN_DIR", "")
	t.Setenv("PAI_SCRIPTS_DIR", "")

	var buf bytes.Buffer
	if err := InitTree(&buf); err != nil {
		t.Fatalf("InitTree failed: %v", err)
	}

	for _, dir := range []string{
		filepath.Join(home, ".pai"),
		filepath.Join(home, ".pai", "bin"),
		filepath.Join(home, ".pai", "scripts"),
	} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected %s to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}

	envPath := filepath.Join(home, ".pai", ".env")
	data, err := os.ReadFile(envPath)
	if err != nil {
		t.Fatalf("expected .env to exist: %v", err)
	}
	if !strings.Contains(string(data), "PAI_BIN_DIR") {
		t.Errorf(".env missing override hint:\n%s", data)
	}

	configPath := filepath.Join(home, ".pai", "config.yaml")
	data, err = os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("expected config.yaml to exist: %v", err)
	}
	if !strings.Contains(string(data), "# scripts_dir:") {
		t.Errorf("config.yaml missing commented keys:\n%s", data)
	}

	if !strings.Contains(buf.String(), "[ OK ]") {
		t.Errorf("output missing [ OK ] lines:\n%s", buf.String())
	}
}

func TestInitTreeIdempotent(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PAI_BIN_DIR", "")
	t.Setenv("PAI_SCRIPTS_DIR", "")

	var first bytes.Buffer
	if err := InitTree(&first); err != nil {
		t.Fatalf("first InitTree failed: %v", err)
	}

	var second bytes.Buffer
	if err := InitTree(&second); err != nil {
		t.Fatalf("second InitTree failed: %v", err)
	}

	if !strings.Contains(second.String(), "[SKIP]") {
		t.Errorf("second run should skip existing items:\n%s", second.String())
	}
	if strings.Contains(second.String(), "[ OK ]") {
		t.Errorf("second run should not create anything:\n%s", second.String())
	}
}
