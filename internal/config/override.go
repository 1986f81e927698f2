package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"plotspec/internal/spectrum"
)

// Override is the schema of the per-user override file. Every field is
// optional; only keys present in the document replace resolved values. The
// strict decoder rejects keys outside this schema so a typo fails loudly
// instead of silently changing nothing.
type Override struct {
	Mode           *string  `toml:"mode"`
	Unit           *string  `toml:"unit"`
	XStart         *float64 `toml:"x_start"`
	XEnd           *float64 `toml:"x_end"`
	Interval       *float64 `toml:"interval"`
	FWHMeV         *float64 `toml:"fwhm_ev"`
	OutputFormat   *string  `toml:"output_format"`
	OutputFilename *string  `toml:"output_filename"`
	LegendNames    []string `toml:"legend_names"`
}

// LoadOverride parses the override file at path. A syntax error or unknown
// key aborts resolution; there is no partial recovery.
func LoadOverride(path string) (*Override, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open override: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()

	var ov Override
	if err := decoder.Decode(&ov); err != nil {
		return nil, fmt.Errorf("parse override %s: %w", path, err)
	}
	return &ov, nil
}

// apply copies the set fields onto cfg. Mode and unit changes do not
// re-trigger range defaults; the override wins as-is and relies on the clamp
// pass for sanity.
func (o *Override) apply(cfg *spectrum.Config) {
	if o.Mode != nil {
		cfg.Mode = spectrum.Mode(*o.Mode)
	}
	if o.Unit != nil {
		cfg.Unit = spectrum.Unit(*o.Unit)
	}
	if o.XStart != nil {
		cfg.XStart = *o.XStart
	}
	if o.XEnd != nil {
		cfg.XEnd = *o.XEnd
	}
	if o.Interval != nil {
		cfg.Interval = *o.Interval
	}
	if o.FWHMeV != nil {
		cfg.FWHMeV = *o.FWHMeV
	}
	if o.OutputFormat != nil {
		cfg.OutputFormat = spectrum.Format(*o.OutputFormat)
	}
	if o.OutputFilename != nil {
		cfg.OutputFilename = *o.OutputFilename
	}
	if len(o.LegendNames) > 0 {
		cfg.LegendNames = append([]string(nil), o.LegendNames...)
	}
}

// SetKeys lists which override keys the document provided, in schema order.
func (o *Override) SetKeys() []string {
	keys := make([]string, 0, 9)
	if o.Mode != nil {
		keys = append(keys, "mode")
	}
	if o.Unit != nil {
		keys = append(keys, "unit")
	}
	if o.XStart != nil {
		keys = append(keys, "x_start")
	}
	if o.XEnd != nil {
		keys = append(keys, "x_end")
	}
	if o.Interval != nil {
		keys = append(keys, "interval")
	}
	if o.FWHMeV != nil {
		keys = append(keys, "fwhm_ev")
	}
	if o.OutputFormat != nil {
		keys = append(keys, "output_format")
	}
	if o.OutputFilename != nil {
		keys = append(keys, "output_filename")
	}
	if len(o.LegendNames) > 0 {
		keys = append(keys, "legend_names")
	}
	return keys
}
