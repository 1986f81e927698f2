package config

import "plotspec/internal/spectrum"

// clamp forces cfg into a known-good state. It always runs, including after
// an override file has rewritten arbitrary fields, and never reports what it
// corrected.
func clamp(cfg *spectrum.Config) {
	if !cfg.Mode.Valid() {
		cfg.Mode = spectrum.ModeAbsorption
	}
	if !cfg.Unit.Valid() {
		cfg.Unit = spectrum.UnitNanometer
	}
	if !cfg.OutputFormat.Valid() {
		cfg.OutputFormat = spectrum.FormatSVG
	}
	if cfg.XStart >= cfg.XEnd {
		cfg.XStart, cfg.XEnd = clampRange(cfg.Unit)
	}
	if cfg.FWHMeV <= 0 {
		cfg.FWHMeV = defaultFWHMeV
	}
	if cfg.Interval <= 0 {
		cfg.Interval = clampInterval(cfg.Unit)
	}
}
