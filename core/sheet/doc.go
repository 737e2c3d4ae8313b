// Package sheet reads and writes the spreadsheets exchanged with the
// marketplace and with the people maintaining the inventory.
//
// # Reading
//
// ReadCSV and ReadXLSX turn a spreadsheet into a reconcile.Table. The first
// non-blank row is the header. Headers are translated to reconcile field names
// ignoring case, spaces, underscores and dashes, so both the marketplace's
// "Item number" and this service's own "item_number" map to the same field.
// Unknown headers are kept as they are. Blank rows are skipped, cell text is
// trimmed, and every record remembers the line it came from.
//
// Any failure to read the source as a table is returned as a
// *reconcile.SchemaError.
//
// # Writing
//
// WriteCleanedXLSX and WriteCleanedCSV write reconciled rows with the column
// layout the marketplace re-import expects. WriteXLSX is the generic writer
// used for full inventory exports. All values are written as text, so item
// numbers and formatted prices survive spreadsheet applications unchanged.
package sheet
