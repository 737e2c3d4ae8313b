package sheet

import (
	"encoding/csv"
	"fmt"
	"io"

	"inventory-manager/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// CleanedSheetName is the worksheet name of cleaned exports.
const CleanedSheetName = "Inventory"

// CleanedHeaders is the column layout of cleaned exports.
var CleanedHeaders = []string{
	"id",
	"Item number",
	"Title",
	"Variation details",
	"Available quantity",
	"Currency",
	"Start price",
	"image_path",
	"depot_info",
}

// CleanedRecords renders cleaned rows in CleanedHeaders order.
func CleanedRecords(rows []reconcile.CleanedRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.ID,
			r.ItemNumber,
			r.Title,
			r.VariationDetails,
			r.AvailableQuantity,
			r.Currency,
			r.StartPrice,
			r.ImagePath,
			r.DepotInfo,
		})
	}
	return records
}

// WriteCleanedXLSX writes reconciled rows as a workbook.
func WriteCleanedXLSX(w io.Writer, rows []reconcile.CleanedRow) error {
	return WriteXLSX(w, CleanedSheetName, CleanedHeaders, CleanedRecords(rows))
}

// WriteCleanedCSV writes reconciled rows as comma separated text.
func WriteCleanedCSV(w io.Writer, rows []reconcile.CleanedRow) error {
	return WriteCSV(w, CleanedHeaders, CleanedRecords(rows))
}

// WriteCSV writes a header row followed by records.
func WriteCSV(w io.Writer, headers []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

// WriteXLSX writes a single-sheet workbook. Every cell is stored as text.
func WriteXLSX(w io.Writer, sheetName string, headers []string, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	if err := sw.SetRow("A1", toCells(headers)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, toCells(record)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
