package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"plotspec/internal/config"
	"plotspec/internal/logging"
	"plotspec/internal/spectrum"
)

type rootOptions struct {
	overridePath  string
	logLevel      string
	logFormat     string
	jsonOutput    bool
	noInteractive bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "plotspec [trace files...]",
		Short: "Resolve plotting parameters for the spectrum tool",
		Long: `plotspec derives the plotting configuration for a spectrum run from the
current directory name, the SPECTRUM_HIGH_RES and SPECTRUM_PUBLICATION
environment flags, and an optional per-user override file, then prints the
resolved parameters.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.overridePath, "override", "", "Override file path (default ~/.config/plotspec/override.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "Log format (console or json)")
	rootCmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the resolved configuration as JSON")
	rootCmd.Flags().BoolVar(&opts.noInteractive, "no-interactive", false, "Disable the interactive viewer in the resolved configuration")

	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}

func runResolve(cmd *cobra.Command, args []string, opts *rootOptions) error {
	logger, err := newLogger(opts)
	if err != nil {
		return err
	}

	in, err := config.FromEnvironment()
	if err != nil {
		return err
	}
	in.OverridePath = opts.overridePath

	cfg, err := config.Resolve(logger, in)
	if err != nil {
		return err
	}
	if opts.noInteractive {
		cfg.Interactive = false
	}
	reconcileLegends(cfg, args)

	if opts.jsonOutput {
		return writeJSON(cmd, cfg)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderConfig(cfg, stdoutIsTerminal()))
	return nil
}

func newLogger(opts *rootOptions) (*slog.Logger, error) {
	logger, err := logging.New(logging.Options{Level: opts.logLevel, Format: opts.logFormat})
	if err != nil {
		return nil, err
	}
	return logger.With(slog.String("run_id", uuid.NewString())), nil
}

// reconcileLegends keeps the resolved legend set only when it matches the
// number of trace files; otherwise the file stems become the labels.
func reconcileLegends(cfg *spectrum.Config, traceFiles []string) {
	if len(traceFiles) == 0 || len(cfg.LegendNames) == len(traceFiles) {
		return
	}
	names := make([]string, 0, len(traceFiles))
	for _, file := range traceFiles {
		base := filepath.Base(file)
		names = append(names, strings.TrimSuffix(base, filepath.Ext(base)))
	}
	cfg.LegendNames = names
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
