package reconcile

// Field names used by Table records. Readers translate spreadsheet headers to
// these names before handing a table to Reconcile.
const (
	FieldID                = "id"
	FieldItemNumber        = "itemNumber"
	FieldTitle             = "title"
	FieldVariationDetails  = "variationDetails"
	FieldAvailableQuantity = "availableQuantity"
	FieldCurrency          = "currency"
	FieldStartPrice        = "startPrice"
	FieldImagePath         = "image_path"
	FieldDepotInfo         = "depotInfo"
)

// RequiredColumns is the column set every table is completed to before
// reconciliation.
var RequiredColumns = []string{
	FieldID,
	FieldItemNumber,
	FieldTitle,
	FieldVariationDetails,
	FieldAvailableQuantity,
	FieldCurrency,
	FieldStartPrice,
	FieldImagePath,
}

// Record is one data row of a Table.
type Record struct {
	// Line is the 1-based line (or sheet row) the record was read from.
	Line int
	// Cells maps field names to raw cell text.
	Cells map[string]string
}

// Table is an ordered, header-translated view of a spreadsheet.
type Table struct {
	// Columns lists the field names in source order.
	Columns []string
	// Records holds the data rows in source order.
	Records []Record
}

// HasColumn reports whether the table has the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EnsureColumns appends every missing column and fills it with empty cells.
// It returns the names of the columns that were added.
func (t *Table) EnsureColumns(names ...string) []string {
	var added []string
	for _, name := range names {
		if t.HasColumn(name) {
			continue
		}
		t.Columns = append(t.Columns, name)
		added = append(added, name)
		for i := range t.Records {
			if t.Records[i].Cells == nil {
				t.Records[i].Cells = make(map[string]string)
			}
			t.Records[i].Cells[name] = ""
		}
	}
	return added
}

// Rows converts the table records to listing rows.
func (t *Table) Rows() []ListingRow {
	rows := make([]ListingRow, 0, len(t.Records))
	for _, rec := range t.Records {
		c := rec.Cells
		rows = append(rows, ListingRow{
			Line:              rec.Line,
			ID:                c[FieldID],
			ItemNumber:        c[FieldItemNumber],
			Title:             c[FieldTitle],
			VariationDetails:  c[FieldVariationDetails],
			AvailableQuantity: c[FieldAvailableQuantity],
			Currency:          c[FieldCurrency],
			StartPrice:        c[FieldStartPrice],
			DepotInfo:         c[FieldDepotInfo],
			ImagePath:         c[FieldImagePath],
		})
	}
	return rows
}

// ListingRow is one raw row of a marketplace export.
// Quantity and price are kept as cell text so that bad values can be reported
// instead of silently becoming zero.
type ListingRow struct {
	Line              int    `json:"line"`
	ID                string `json:"id"`
	ItemNumber        string `json:"item_number"`
	Title             string `json:"title"`
	VariationDetails  string `json:"variation_details"`
	AvailableQuantity string `json:"available_quantity"`
	Currency          string `json:"currency"`
	StartPrice        string `json:"start_price"`
	DepotInfo         string `json:"depot_info"`
	ImagePath         string `json:"image_path"`
}

// IsVariant reports whether the row belongs to a variation group.
func (r ListingRow) IsVariant() bool {
	return !isBlank(r.VariationDetails)
}

// CleanedRow is a row of the reconciled output.
// StartPrice holds fixed two-decimal text, or the raw text when it was not a
// number.
type CleanedRow struct {
	Line              int    `json:"line"`
	ID                string `json:"id"`
	ItemNumber        string `json:"item_number"`
	Title             string `json:"title"`
	VariationDetails  string `json:"variation_details"`
	AvailableQuantity string `json:"available_quantity"`
	Currency          string `json:"currency"`
	StartPrice        string `json:"start_price"`
	DepotInfo         string `json:"depot_info"`
	ImagePath         string `json:"image_path"`
}

// Result is the output of a reconciliation run.
type Result struct {
	// Rows are the cleaned rows, sorted by item number descending.
	Rows []CleanedRow `json:"rows"`

	// Dropped are the summary rows removed in the collapse step.
	Dropped []ListingRow `json:"dropped"`

	// Errors lists groups that were left out of Rows.
	Errors []*DataError `json:"errors"`

	// Warnings lists prices that could not be formatted.
	Warnings []*FormatError `json:"warnings"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// OK reports whether every group was reconciled.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// Summary provides aggregate counts for a reconciliation run.
type Summary struct {
	// InputRows is the number of rows read.
	InputRows int `json:"input_rows"`

	// StandaloneRows counts rows without variation details.
	StandaloneRows int `json:"standalone_rows"`

	// VariantGroups counts distinct item numbers among variation rows.
	VariantGroups int `json:"variant_groups"`

	// CollapsedGroups counts groups whose summary row was dropped.
	CollapsedGroups int `json:"collapsed_groups"`

	// SkippedGroups counts groups left out because of a DataError.
	SkippedGroups int `json:"skipped_groups"`

	// OutputRows is len(Rows).
	OutputRows int `json:"output_rows"`
}
