package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"plotspec/internal/spectrum"
)

// renderConfig lays the resolved configuration out as a rounded table on a
// terminal and as plain "key: value" lines everywhere else.
func renderConfig(cfg *spectrum.Config, terminal bool) string {
	rows := configRows(cfg)
	if !terminal {
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			lines = append(lines, row[0]+": "+row[1])
		}
		return strings.Join(lines, "\n")
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Parameter", "Value"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func configRows(cfg *spectrum.Config) [][2]string {
	interactive := "yes"
	if !cfg.Interactive {
		interactive = "no"
	}
	return [][2]string{
		{"Mode", fmt.Sprintf("%s (%s)", cfg.Mode, cfg.Mode.Title())},
		{"Unit", fmt.Sprintf("%s (%s)", cfg.Unit, cfg.Unit.AxisLabel())},
		{"Range", fmt.Sprintf("%g - %g %s", cfg.XStart, cfg.XEnd, cfg.Unit)},
		{"Interval", fmt.Sprintf("%g", cfg.Interval)},
		{"FWHM", fmt.Sprintf("%g eV", cfg.FWHMeV)},
		{"Samples", fmt.Sprintf("%d", cfg.SampleCount())},
		{"Output", cfg.OutputPath()},
		{"Legend", strings.Join(cfg.LegendNames, ", ")},
		{"Interactive", interactive},
	}
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
