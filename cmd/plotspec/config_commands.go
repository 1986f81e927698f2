package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"plotspec/internal/config"
)

func newConfigCommand(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Override-file utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(opts))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample override file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultOverridePath()
				if err != nil {
					return fmt.Errorf("determine default override path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve override path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("override file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check override path: %w", err)
				}
			}

			if dir := filepath.Dir(target); dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create override directory %q: %w", dir, err)
				}
			}
			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample override: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample override to %s\n", target)
			fmt.Fprintln(out, "Uncomment keys to replace values the directory heuristics produce.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the override file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing override file")
	return cmd
}

func newConfigValidateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the override file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(opts.overridePath)
			if path == "" {
				defaultPath, err := config.DefaultOverridePath()
				if err != nil {
					return fmt.Errorf("determine default override path: %w", err)
				}
				path = defaultPath
			} else {
				expanded, err := config.ExpandPath(path)
				if err != nil {
					return fmt.Errorf("resolve override path: %w", err)
				}
				path = expanded
			}

			out := cmd.OutOrStdout()
			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Fprintf(out, "No override file at %s; directory heuristics apply unchanged.\n", path)
				return nil
			}

			ov, err := config.LoadOverride(path)
			if err != nil {
				return err
			}
			keys := ov.SetKeys()
			if len(keys) == 0 {
				fmt.Fprintf(out, "Override at %s is valid and sets no keys.\n", path)
				return nil
			}
			fmt.Fprintf(out, "Override at %s is valid and sets: %s\n", path, strings.Join(keys, ", "))
			return nil
		},
	}
}
