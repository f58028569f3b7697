package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderTable draws rows as a bordered table.
func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func newYearsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List the model years offered by the picker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			years := opts.cfg.YearRange().Years()
			rows := make([][]string, len(years))
			for i, y := range years {
				rows[i] = []string{strconv.Itoa(y)}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"YEAR"}, rows))
			return nil
		},
	}
}

func newMakesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "makes",
		Short: "List the makes of the configured vehicle type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := opts.client()
			makes, err := client.GetMakes(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list makes: %w", err)
			}

			rows := make([][]string, len(makes))
			for i, mk := range makes {
				rows[i] = []string{strconv.Itoa(mk.ID), mk.Name}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"ID", "MAKE"}, rows))
			fmt.Fprintf(out, "%d makes for vehicle type %q\n", len(makes), client.VehicleType())
			return nil
		},
	}
}

func newModelsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "models <make>",
		Short: "List the models of a make",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			makeName := args[0]
			models, err := opts.client().GetModels(cmd.Context(), makeName)
			if err != nil {
				return fmt.Errorf("failed to list models for %s: %w", makeName, err)
			}

			rows := make([][]string, len(models))
			for i, md := range models {
				rows[i] = []string{strconv.Itoa(md.ID), md.Name, md.MakeName}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"ID", "MODEL", "MAKE"}, rows))
			fmt.Fprintf(out, "%d models for %s\n", len(models), makeName)
			return nil
		},
	}
}
