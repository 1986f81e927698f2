package config

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"plotspec/internal/spectrum"
)

// modeRules classify the working directory into a spectral mode. Rules are
// checked in declared order and the first match wins; emission beats cd, and
// both beat the uv/vis sub-flag, which is only consulted inside the
// absorption branch.
var modeRules = []struct {
	keywords []string
	mode     spectrum.Mode
}{
	{[]string{"emission", "fluor"}, spectrum.ModeEmission},
	{[]string{"cd", "circular"}, spectrum.ModeCD},
}

// formatRules pick the export format from the directory name. The publication
// rule is checked before presentation.
var formatRules = []struct {
	keywords []string
	format   spectrum.Format
}{
	{[]string{"publication", "paper"}, spectrum.FormatEPS},
	{[]string{"presentation"}, spectrum.FormatPNG},
}

// legendRules map experiment-series directories to trace labels, first match
// wins in declared order.
var legendRules = []struct {
	keywords []string
	labels   []string
}{
	{[]string{"comparison"}, []string{"Control", "Treatment 1", "Treatment 2", "Treatment 3"}},
	{[]string{"time", "kinetic"}, []string{"t=0min", "t=5min", "t=10min", "t=30min", "t=60min"}},
	{[]string{"concentration", "conc"}, []string{"0.1 mM", "0.5 mM", "1.0 mM", "5.0 mM", "10.0 mM"}},
	{[]string{"ph"}, []string{"pH 6", "pH 7", "pH 8", "pH 9"}},
	{[]string{"temperature", "temp"}, []string{"25°C", "35°C", "45°C", "55°C", "65°C"}},
}

var defaultLegends = []string{"Sample A", "Sample B", "Sample C"}

// Resolve derives a fully validated spectrum.Config from the provided inputs.
// The stages run in a fixed order and later stages may overwrite earlier
// ones: directory heuristics, env-flag overrides, the override file, and a
// final clamping pass that always applies. Only a present-but-broken override
// file fails resolution; every other irregularity is silently corrected.
func Resolve(logger *slog.Logger, in Inputs) (*spectrum.Config, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	dir := strings.ToLower(in.WorkingDir)

	cfg := &spectrum.Config{Interactive: true}
	cfg.Mode = classifyMode(dir)

	rd := defaultsFor(cfg.Mode, containsAny(dir, "uv", "vis"))
	cfg.Unit = rd.unit
	cfg.XStart = rd.xStart
	cfg.XEnd = rd.xEnd
	cfg.Interval = rd.interval
	cfg.FWHMeV = rd.fwhmEV

	cfg.OutputFormat = classifyFormat(dir)
	cfg.OutputFilename = cfg.Mode.FilenamePrefix() + "_" + in.WorkingDir
	cfg.LegendNames = classifyLegends(dir)

	if in.HighRes {
		switch cfg.Unit {
		case spectrum.UnitNanometer:
			cfg.Interval = highResIntervalNM
		case spectrum.UnitEV:
			cfg.Interval = highResIntervalEV
		case spectrum.UnitWavenumber:
			cfg.Interval = highResIntervalWavenumber
		}
	}

	// Publication runs after high-res, so its nm interval wins when both
	// flags are set.
	if in.Publication {
		cfg.OutputFormat = spectrum.FormatSVG
		cfg.FWHMeV = publicationFWHMeV
		if cfg.Unit == spectrum.UnitNanometer {
			cfg.Interval = publicationIntervalNM
		}
	}

	if err := applyOverrideFile(cfg, in); err != nil {
		return nil, err
	}

	clamp(cfg)

	logger.Info("resolved working directory", slog.String("dir", in.WorkingDir))
	logger.Info("spectrum config resolved",
		slog.String("mode", string(cfg.Mode)),
		slog.String("unit", string(cfg.Unit)),
		slog.Float64("x_start", cfg.XStart),
		slog.Float64("x_end", cfg.XEnd),
		slog.String("format", string(cfg.OutputFormat)),
	)
	return cfg, nil
}

func classifyMode(dir string) spectrum.Mode {
	for _, rule := range modeRules {
		if containsAny(dir, rule.keywords...) {
			return rule.mode
		}
	}
	return spectrum.ModeAbsorption
}

func classifyFormat(dir string) spectrum.Format {
	for _, rule := range formatRules {
		if containsAny(dir, rule.keywords...) {
			return rule.format
		}
	}
	return spectrum.FormatSVG
}

func classifyLegends(dir string) []string {
	for _, rule := range legendRules {
		if containsAny(dir, rule.keywords...) {
			return append([]string(nil), rule.labels...)
		}
	}
	return append([]string(nil), defaultLegends...)
}

func applyOverrideFile(cfg *spectrum.Config, in Inputs) error {
	path, err := in.overridePath()
	if err != nil {
		return err
	}
	exists, err := statOverride(path)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	ov, err := LoadOverride(path)
	if err != nil {
		return err
	}
	ov.apply(cfg)
	return nil
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// statOverride reports whether an override file is present at path.
func statOverride(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
