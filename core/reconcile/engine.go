package reconcile

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var errNotNumber = errors.New("not a number")

// ReconcileTable completes the table to RequiredColumns and reconciles its
// rows. The table is modified in place by the column completion.
func ReconcileTable(t *Table) *Result {
	t.EnsureColumns(RequiredColumns...)
	return Reconcile(t.Rows())
}

// Reconcile collapses redundant summary rows in variation groups, then
// decorates, formats and sorts the result. It does not modify rows.
func Reconcile(rows []ListingRow) *Result {
	result := &Result{
		Rows:     []CleanedRow{},
		Dropped:  []ListingRow{},
		Errors:   []*DataError{},
		Warnings: []*FormatError{},
		Summary:  Summary{InputRows: len(rows)},
	}

	// Partition
	var standalone []ListingRow
	groups := newGroupIndex()
	for _, row := range rows {
		if !row.IsVariant() {
			standalone = append(standalone, row)
			continue
		}
		groups.add(row)
	}
	result.Summary.StandaloneRows = len(standalone)
	result.Summary.VariantGroups = len(groups.keys)

	// Collapse and recombine
	kept := make([]ListingRow, 0, len(rows))
	kept = append(kept, standalone...)
	for _, key := range groups.keys {
		survivors, dropped, err := collapseGroup(key, groups.rows[key])
		if err != nil {
			result.Errors = append(result.Errors, err)
			result.Summary.SkippedGroups++
			continue
		}
		if dropped != nil {
			result.Dropped = append(result.Dropped, *dropped)
			result.Summary.CollapsedGroups++
		}
		kept = append(kept, survivors...)
	}

	// Decorate and normalize
	for _, row := range kept {
		cleaned, warning := cleanRow(row)
		if warning != nil {
			result.Warnings = append(result.Warnings, warning)
		}
		result.Rows = append(result.Rows, cleaned)
	}

	// Text order, not numeric: "9" > "10" > "2".
	sort.SliceStable(result.Rows, func(i, j int) bool {
		return result.Rows[i].ItemNumber > result.Rows[j].ItemNumber
	})

	result.Summary.OutputRows = len(result.Rows)
	return result
}

// groupIndex groups variation rows by item number, preserving first-seen
// order of keys and of rows within a key.
type groupIndex struct {
	keys []string
	rows map[string][]ListingRow
}

func newGroupIndex() *groupIndex {
	return &groupIndex{rows: make(map[string][]ListingRow)}
}

func (g *groupIndex) add(row ListingRow) {
	key := row.ItemNumber
	if _, ok := g.rows[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.rows[key] = append(g.rows[key], row)
}

// collapseGroup applies the summary-row rule to one group. It returns the
// rows to keep and, when the first row was redundant, the dropped row.
func collapseGroup(itemNumber string, members []ListingRow) ([]ListingRow, *ListingRow, *DataError) {
	if isBlank(itemNumber) {
		return nil, nil, &DataError{
			ItemNumber: itemNumber,
			Line:       members[0].Line,
			Field:      FieldItemNumber,
			Value:      itemNumber,
			Reason:     "variation row has no item number",
		}
	}
	if len(members) == 1 {
		return members, nil, nil
	}

	parent := members[0]
	children := members[1:]

	parentQty, err := parseQuantity(parent)
	if err != nil {
		return nil, nil, err
	}
	childSum := decimal.Zero
	for _, child := range children {
		qty, err := parseQuantity(child)
		if err != nil {
			return nil, nil, err
		}
		childSum = childSum.Add(qty)
	}

	if parentQty.Equal(childSum) {
		return children, &parent, nil
	}
	return members, nil, nil
}

func parseQuantity(row ListingRow) (decimal.Decimal, *DataError) {
	qty, err := parseNumber(row.AvailableQuantity)
	if err != nil {
		return decimal.Zero, &DataError{
			ItemNumber: row.ItemNumber,
			Line:       row.Line,
			Field:      FieldAvailableQuantity,
			Value:      row.AvailableQuantity,
			Reason:     "quantity is not a number",
		}
	}
	return qty, nil
}

func cleanRow(row ListingRow) (CleanedRow, *FormatError) {
	cleaned := CleanedRow{
		Line:              row.Line,
		ID:                row.ID,
		ItemNumber:        strings.TrimSpace(row.ItemNumber),
		Title:             row.Title,
		VariationDetails:  row.VariationDetails,
		AvailableQuantity: row.AvailableQuantity,
		Currency:          row.Currency,
		DepotInfo:         "",
		ImagePath:         row.ImagePath,
	}

	price, err := FormatPrice(row.StartPrice)
	if err != nil {
		cleaned.StartPrice = row.StartPrice
		return cleaned, &FormatError{
			ItemNumber: cleaned.ItemNumber,
			Line:       row.Line,
			Value:      row.StartPrice,
		}
	}
	cleaned.StartPrice = price
	return cleaned, nil
}

// FormatPrice renders a price with exactly two decimals, rounding half away
// from zero on the exact decimal value of the text. Empty text stays empty.
func FormatPrice(raw string) (string, error) {
	if isBlank(raw) {
		return "", nil
	}
	d, err := parseNumber(raw)
	if err != nil {
		return "", err
	}
	return d.StringFixed(2), nil
}

func parseNumber(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, errNotNumber
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errNotNumber
	}
	return d, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
