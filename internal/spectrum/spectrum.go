package spectrum

// Mode identifies the spectral technique being plotted.
type Mode string

const (
	ModeAbsorption Mode = "abs"
	ModeEmission   Mode = "emi"
	ModeCD         Mode = "cd"
	ModeCDL        Mode = "cdl"
)

// Valid reports whether the mode is one of the recognized techniques.
func (m Mode) Valid() bool {
	switch m {
	case ModeAbsorption, ModeEmission, ModeCD, ModeCDL:
		return true
	}
	return false
}

// FilenamePrefix returns the output-filename prefix for the mode. Unrecognized
// modes fall back to a generic prefix rather than failing.
func (m Mode) FilenamePrefix() string {
	switch m {
	case ModeAbsorption:
		return "absorption_spectrum"
	case ModeEmission:
		return "emission_spectrum"
	case ModeCD, ModeCDL:
		return "cd_spectrum"
	}
	return "spectrum_plot"
}

// Title returns the plot title for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeAbsorption:
		return "Absorption Spectra"
	case ModeEmission:
		return "Emission Spectra"
	case ModeCD, ModeCDL:
		return "Circular Dichroism Spectra"
	}
	return "Spectra"
}

// Unit identifies the x-axis unit.
type Unit string

const (
	UnitNanometer  Unit = "nm"
	UnitEV         Unit = "eV"
	UnitWavenumber Unit = "cm-1"
)

// Valid reports whether the unit is one of the recognized axis units.
func (u Unit) Valid() bool {
	switch u {
	case UnitNanometer, UnitEV, UnitWavenumber:
		return true
	}
	return false
}

// AxisLabel returns the x-axis label for the unit.
func (u Unit) AxisLabel() string {
	switch u {
	case UnitNanometer:
		return "Wavelength (nm)"
	case UnitEV:
		return "Energy (eV)"
	case UnitWavenumber:
		return "Wavenumber (cm⁻¹)"
	}
	return string(u)
}

// Format identifies the rendered output file type.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatJPEG Format = "jpeg"
	FormatEPS  Format = "eps"
	FormatPDF  Format = "pdf"
)

// Valid reports whether the format is one of the supported export types.
func (f Format) Valid() bool {
	switch f {
	case FormatSVG, FormatPNG, FormatJPG, FormatJPEG, FormatEPS, FormatPDF:
		return true
	}
	return false
}

// Vector reports whether the format is exported through the vector pipeline
// rather than a raster screenshot.
func (f Format) Vector() bool {
	switch f {
	case FormatSVG, FormatEPS, FormatPDF:
		return true
	}
	return false
}

// Config holds every plotting parameter the spectrum tool consumes. It is
// produced by the resolver and treated as immutable by downstream code.
type Config struct {
	Mode           Mode     `json:"mode"`
	Unit           Unit     `json:"unit"`
	XStart         float64  `json:"x_start"`
	XEnd           float64  `json:"x_end"`
	Interval       float64  `json:"interval"`
	FWHMeV         float64  `json:"fwhm_ev"`
	OutputFormat   Format   `json:"output_format"`
	OutputFilename string   `json:"output_filename"`
	LegendNames    []string `json:"legend_names"`
	Interactive    bool     `json:"interactive"`
}

// OutputPath joins the extension-less output filename with the export format.
func (c *Config) OutputPath() string {
	return c.OutputFilename + "." + string(c.OutputFormat)
}

// SampleCount returns the number of grid points between XStart and XEnd
// (inclusive) at Interval spacing. The end point tolerates a small epsilon so
// ranges that divide evenly keep their final sample.
func (c *Config) SampleCount() int {
	if c.Interval <= 0 || c.XEnd < c.XStart {
		return 0
	}
	count := 0
	for x := c.XStart; x <= c.XEnd+1e-8; x += c.Interval {
		count++
	}
	return count
}
