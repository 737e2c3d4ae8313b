// Package exchange moves inventory in and out of spreadsheets.
//
// Clean runs a marketplace export through the row reconciler and hands back
// the cleaned sheet. Import goes one step further: PlanImport converts the
// cleaned rows to items (whole, non-negative quantities, non-negative
// prices, the default currency where none is given) and ApplyImport inserts
// them in a single transaction. Rows that fail conversion are reported with
// their line number, the same way the reconciler reports skipped groups.
//
// Export writes the whole table to a workbook whose headers the sheet reader
// understands, so an export can be edited and imported again. Concurrent
// exports share a single build.
package exchange
