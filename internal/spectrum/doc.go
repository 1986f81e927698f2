// Package spectrum defines the vocabulary shared by the resolver and the
// plotting stage: spectral modes, x-axis units, output formats, and the
// resolved Config record.
//
// Config is assembled once per invocation by internal/config and is read-only
// afterwards. Helpers on Mode and Unit supply the presentation strings
// (axis labels, plot titles, filename prefixes) the plotting stage needs so
// those mappings live in one place.
package spectrum
