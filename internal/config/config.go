package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed sample_override.toml
var sampleOverride string

// Inputs captures everything resolution depends on. Gathering ambient process
// state into one value keeps Resolve testable without mutating the real
// environment.
type Inputs struct {
	// WorkingDir is the absolute path heuristics classify.
	WorkingDir string
	// HighRes tightens the grid spacing per unit (SPECTRUM_HIGH_RES).
	HighRes bool
	// Publication forces SVG output and sharper peaks (SPECTRUM_PUBLICATION).
	Publication bool
	// OverridePath points at the override file. Empty means the fixed
	// per-user default path.
	OverridePath string
}

// FromEnvironment snapshots the process environment into an Inputs value.
// The env flags follow the tool's historical semantics: set-but-empty counts
// as unset.
func FromEnvironment() (Inputs, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Inputs{}, fmt.Errorf("resolve working directory: %w", err)
	}
	abs, err := filepath.Abs(wd)
	if err != nil {
		return Inputs{}, fmt.Errorf("resolve working directory: %w", err)
	}
	return Inputs{
		WorkingDir:  abs,
		HighRes:     os.Getenv("SPECTRUM_HIGH_RES") != "",
		Publication: os.Getenv("SPECTRUM_PUBLICATION") != "",
	}, nil
}

// DefaultOverridePath returns the absolute path of the per-user override file.
func DefaultOverridePath() (string, error) {
	return expandPath(defaultOverridePath)
}

// overridePath resolves which override file a run should consult.
func (in Inputs) overridePath() (string, error) {
	if strings.TrimSpace(in.OverridePath) != "" {
		return expandPath(in.OverridePath)
	}
	return DefaultOverridePath()
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a commented sample override file to the given location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create override directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleOverride), 0o644); err != nil {
		return fmt.Errorf("write sample override: %w", err)
	}
	return nil
}
