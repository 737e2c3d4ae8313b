package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"inventory-manager/core/reconcile"
	"inventory-manager/core/sheet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cleanOutput string

// cleanCmd reconciles a marketplace export into a cleaned spreadsheet.
var cleanCmd = &cobra.Command{
	Use:   "clean <input>",
	Short: "Clean a marketplace export (CSV or XLSX)",
	Long: `Clean a marketplace listing export.

Summary rows of variation groups are dropped when their quantity equals the
sum of the variants, a depot_info column is added, prices are written with two
decimals and rows are sorted by item number.

The output format follows the output file extension (.xlsx or .csv).

Examples:
  # Writes export_cleaned.xlsx next to the input
  clean export.csv

  # Choose the output
  clean export.xlsx -o cleaned.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "Output file (default <input>_cleaned.xlsx)")
	RootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	_, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	input := args[0]
	output := cleanOutput
	if output == "" {
		output = defaultCleanOutput(input)
	}

	table, err := sheet.ReadFile(input)
	if err != nil {
		return err
	}

	result := reconcile.ReconcileTable(table)
	printSummary(l, result)

	if err := writeCleaned(output, result.Rows); err != nil {
		return err
	}
	l.Info("Cleaned sheet written", zap.String("output", output), zap.Int("rows", len(result.Rows)))

	if !result.OK() {
		return fmt.Errorf("%d variation groups could not be reconciled", len(result.Errors))
	}
	return nil
}

func defaultCleanOutput(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_cleaned.xlsx"
}

func writeCleaned(path string, rows []reconcile.CleanedRow) error {
	var write func(io.Writer, []reconcile.CleanedRow) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = sheet.WriteCleanedCSV
	case ".xlsx":
		write = sheet.WriteCleanedXLSX
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f, rows); err != nil {
		return err
	}
	return f.Close()
}
