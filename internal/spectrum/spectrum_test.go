package spectrum_test

import (
	"testing"

	"plotspec/internal/spectrum"
)

func TestModeFilenamePrefix(t *testing.T) {
	cases := []struct {
		mode spectrum.Mode
		want string
	}{
		{spectrum.ModeAbsorption, "absorption_spectrum"},
		{spectrum.ModeEmission, "emission_spectrum"},
		{spectrum.ModeCD, "cd_spectrum"},
		{spectrum.ModeCDL, "cd_spectrum"},
		{spectrum.Mode("bogus"), "spectrum_plot"},
	}
	for _, tc := range cases {
		if got := tc.mode.FilenamePrefix(); got != tc.want {
			t.Errorf("FilenamePrefix(%q) = %q, want %q", tc.mode, got, tc.want)
		}
	}
}

func TestEnumValidity(t *testing.T) {
	for _, mode := range []spectrum.Mode{spectrum.ModeAbsorption, spectrum.ModeEmission, spectrum.ModeCD, spectrum.ModeCDL} {
		if !mode.Valid() {
			t.Errorf("expected mode %q to be valid", mode)
		}
	}
	if spectrum.Mode("xyz").Valid() {
		t.Error("expected unknown mode to be invalid")
	}
	if !spectrum.UnitWavenumber.Valid() {
		t.Error("expected cm-1 to be valid")
	}
	if spectrum.Unit("angstrom").Valid() {
		t.Error("expected unknown unit to be invalid")
	}
	if spectrum.Format("bmp").Valid() {
		t.Error("expected unknown format to be invalid")
	}
}

func TestUnitAxisLabel(t *testing.T) {
	if got := spectrum.UnitNanometer.AxisLabel(); got != "Wavelength (nm)" {
		t.Errorf("unexpected nm label: %q", got)
	}
	if got := spectrum.UnitEV.AxisLabel(); got != "Energy (eV)" {
		t.Errorf("unexpected eV label: %q", got)
	}
	if got := spectrum.UnitWavenumber.AxisLabel(); got != "Wavenumber (cm⁻¹)" {
		t.Errorf("unexpected cm-1 label: %q", got)
	}
}

func TestFormatVector(t *testing.T) {
	for _, f := range []spectrum.Format{spectrum.FormatSVG, spectrum.FormatEPS, spectrum.FormatPDF} {
		if !f.Vector() {
			t.Errorf("expected %q to be vector", f)
		}
	}
	for _, f := range []spectrum.Format{spectrum.FormatPNG, spectrum.FormatJPG, spectrum.FormatJPEG} {
		if f.Vector() {
			t.Errorf("expected %q to be raster", f)
		}
	}
}

func TestOutputPath(t *testing.T) {
	cfg := spectrum.Config{OutputFilename: "absorption_spectrum_run1", OutputFormat: spectrum.FormatEPS}
	if got := cfg.OutputPath(); got != "absorption_spectrum_run1.eps" {
		t.Errorf("unexpected output path: %q", got)
	}
}

func TestSampleCount(t *testing.T) {
	cases := []struct {
		name     string
		cfg      spectrum.Config
		expected int
	}{
		{"unit step", spectrum.Config{XStart: 200, XEnd: 800, Interval: 1.0}, 601},
		{"half step", spectrum.Config{XStart: 180, XEnd: 400, Interval: 0.5}, 441},
		{"degenerate interval", spectrum.Config{XStart: 200, XEnd: 800, Interval: 0}, 0},
		{"inverted range", spectrum.Config{XStart: 800, XEnd: 200, Interval: 1.0}, 0},
		{"single point", spectrum.Config{XStart: 500, XEnd: 500, Interval: 1.0}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.SampleCount(); got != tc.expected {
				t.Fatalf("SampleCount() = %d, want %d", got, tc.expected)
			}
		})
	}
}
