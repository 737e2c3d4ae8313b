// Package reconcile cleans marketplace listing exports before they are
// re-imported or written back to a spreadsheet.
//
// Marketplace exports list variation products as one row per variation, and
// frequently precede those rows with a summary row for the same item number
// whose quantity is the total of its variations. Importing such a sheet as-is
// double-counts stock. Reconcile detects and drops those summary rows.
//
// # Pipeline
//
// Reconcile is a pure function of its input and runs five steps:
//
//  1. Partition: rows without variation details are standalone and pass
//     through untouched. The rest are grouped by item number, keeping the
//     order in which item numbers and rows were first seen.
//  2. Collapse: in every group with more than one row, the first row is the
//     candidate summary row. It is dropped when its quantity equals the sum of
//     the remaining rows' quantities exactly; otherwise all rows are kept.
//  3. Recombine: standalone rows followed by surviving group rows.
//  4. Decorate: every row carries an empty depot info column. Input values
//     are dropped.
//  5. Normalize: rows are sorted by item number descending as text, and start
//     prices are formatted with exactly two decimals.
//
// # Errors
//
// Three error types describe problems with the input:
//
//   - SchemaError: the source could not be read as a table at all. Raised by
//     readers (see core/sheet); Reconcile never sees such input.
//   - DataError: a group could not be collapsed because a quantity is not a
//     number, or a variation row has no item number. The whole group is left
//     out of the output and the error is reported; other groups continue.
//   - FormatError: a start price is not a number. The raw text is kept and the
//     error is reported as a warning.
//
// # Usage
//
//	table, err := sheet.ReadFile("export.csv")
//	if err != nil {
//	    return err
//	}
//	result := reconcile.ReconcileTable(table)
//	for _, e := range result.Errors {
//	    log.Warn("group skipped", zap.Error(e))
//	}
//	return sheet.WriteCleanedXLSX(out, result.Rows)
package reconcile
