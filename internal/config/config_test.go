package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"plotspec/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestFromEnvironmentReadsFlags(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SPECTRUM_HIGH_RES", "1")
	t.Setenv("SPECTRUM_PUBLICATION", "")

	in, err := config.FromEnvironment()
	if err != nil {
		t.Fatalf("FromEnvironment returned error: %v", err)
	}
	if in.WorkingDir == "" || !filepath.IsAbs(in.WorkingDir) {
		t.Fatalf("expected absolute working dir, got %q", in.WorkingDir)
	}
	if !in.HighRes {
		t.Fatal("expected HighRes set from env")
	}
	if in.Publication {
		t.Fatal("expected empty SPECTRUM_PUBLICATION to count as unset")
	}
}

func TestDefaultOverridePath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path, err := config.DefaultOverridePath()
	if err != nil {
		t.Fatalf("DefaultOverridePath returned error: %v", err)
	}
	want := filepath.Join(tempHome, ".config", "plotspec", "override.toml")
	if path != want {
		t.Fatalf("unexpected default override path: got %q want %q", path, want)
	}
}

func TestResolveUsesDefaultOverridePath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	target := filepath.Join(tempHome, ".config", "plotspec", "override.toml")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("create override dir: %v", err)
	}
	if err := os.WriteFile(target, []byte("x_end = 650.0\n"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	cfg, err := config.Resolve(nil, config.Inputs{WorkingDir: "/data/runs/sample_set"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if cfg.XEnd != 650 {
		t.Fatalf("expected x_end 650 from default-path override, got %v", cfg.XEnd)
	}
}

func TestCreateSampleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plotspec", "override.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "legend_names") {
		t.Fatalf("sample override missing legend_names key: %s", contents)
	}

	// The sample ships fully commented out, so the strict schema must
	// accept it as an empty override.
	var ov config.Override
	if err := toml.Unmarshal(contents, &ov); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if len(ov.SetKeys()) != 0 {
		t.Fatalf("expected sample to set no keys, got %v", ov.SetKeys())
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	expanded, err := config.ExpandPath("~/override.toml")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if expanded != filepath.Join(tempHome, "override.toml") {
		t.Fatalf("unexpected expansion: %q", expanded)
	}
}
