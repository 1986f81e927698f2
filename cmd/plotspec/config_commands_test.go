package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "plotspec", "override.toml")

	if _, err := executeCommand(t, "config", "init", "--path", target); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	contents, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "fwhm_ev") {
		t.Fatalf("sample missing fwhm_ev key: %s", contents)
	}

	// A second init without --overwrite must refuse.
	if _, err := executeCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when override already exists")
	}
	if _, err := executeCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite failed: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.toml")

	out, err := executeCommand(t, "config", "validate", "--override", path)
	if err != nil {
		t.Fatalf("validate on absent file failed: %v", err)
	}
	if !strings.Contains(out, "No override file") {
		t.Fatalf("expected absent-file notice, got %q", out)
	}

	if err := os.WriteFile(path, []byte("unit = \"eV\"\ninterval = 0.005\n"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	out, err = executeCommand(t, "config", "validate", "--override", path)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out, "unit, interval") {
		t.Fatalf("expected set keys in output, got %q", out)
	}

	if err := os.WriteFile(path, []byte("bandwidth = 3\n"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if _, err := executeCommand(t, "config", "validate", "--override", path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}
