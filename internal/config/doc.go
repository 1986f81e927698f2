// Package config resolves the plotting configuration for a plotspec run.
//
// Resolution is a pure function of an Inputs snapshot: the working-directory
// path, the SPECTRUM_HIGH_RES and SPECTRUM_PUBLICATION flags, and an optional
// override file. Ordered keyword tables classify the directory name into a
// spectral mode, range defaults, output format, and legend set; the env flags
// and the override file are then applied on top, and a final clamping pass
// guarantees the returned spectrum.Config is always usable.
//
// The override file is a strict TOML document applied field-by-field; unknown
// keys and malformed syntax are rejected rather than executed.
package config
