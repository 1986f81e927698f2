package config

import "plotspec/internal/spectrum"

const (
	defaultOverridePath = "~/.config/plotspec/override.toml"
	defaultFWHMeV       = 0.5

	// High-resolution grid spacing per unit (SPECTRUM_HIGH_RES).
	highResIntervalNM         = 0.5
	highResIntervalEV         = 0.005
	highResIntervalWavenumber = 2.0

	// Publication overrides (SPECTRUM_PUBLICATION).
	publicationFWHMeV     = 0.1
	publicationIntervalNM = 0.2
)

// rangeDefaults is the (unit, x_start, x_end, interval, fwhm_ev) tuple a mode
// starts from before any env-flag or override adjustments.
type rangeDefaults struct {
	unit     spectrum.Unit
	xStart   float64
	xEnd     float64
	interval float64
	fwhmEV   float64
}

// defaultsFor maps a mode to its starting range. UV-Vis narrows the absorption
// window; the flag is ignored for all other modes.
func defaultsFor(mode spectrum.Mode, uvVis bool) rangeDefaults {
	switch mode {
	case spectrum.ModeEmission:
		return rangeDefaults{spectrum.UnitNanometer, 300, 700, 1.0, 0.2}
	case spectrum.ModeCD, spectrum.ModeCDL:
		return rangeDefaults{spectrum.UnitNanometer, 180, 400, 0.5, 0.3}
	default:
		if uvVis {
			return rangeDefaults{spectrum.UnitNanometer, 200, 800, 1.0, 0.3}
		}
		return rangeDefaults{spectrum.UnitNanometer, 200, 1000, 1.0, 0.5}
	}
}

// clampRange is the known-good axis window restored when x_start >= x_end.
func clampRange(unit spectrum.Unit) (float64, float64) {
	switch unit {
	case spectrum.UnitEV:
		return 1.0, 6.0
	case spectrum.UnitWavenumber:
		return 400, 4000
	default:
		return 200, 1000
	}
}

// clampInterval is the grid spacing restored when interval <= 0.
func clampInterval(unit spectrum.Unit) float64 {
	switch unit {
	case spectrum.UnitEV:
		return 0.01
	case spectrum.UnitWavenumber:
		return 100.0
	default:
		return 1.0
	}
}
