package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"inventory-manager/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// ErrMissingHeader is wrapped in a SchemaError when a source has no header row.
var ErrMissingHeader = errors.New("missing header row")

// ErrUnsupportedFormat is wrapped in a SchemaError for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrDuplicateColumn is wrapped in a SchemaError when two headers name the
// same field.
var ErrDuplicateColumn = errors.New("duplicate column")

const utf8BOM = "\ufeff"

// headerAliases maps normalized headers to reconcile field names.
var headerAliases = map[string]string{
	"id":                reconcile.FieldID,
	"itemnumber":        reconcile.FieldItemNumber,
	"title":             reconcile.FieldTitle,
	"variationdetails":  reconcile.FieldVariationDetails,
	"availablequantity": reconcile.FieldAvailableQuantity,
	"currency":          reconcile.FieldCurrency,
	"startprice":        reconcile.FieldStartPrice,
	"imagepath":         reconcile.FieldImagePath,
	"depotinfo":         reconcile.FieldDepotInfo,
}

// TranslateHeader returns the reconcile field name for a spreadsheet header,
// or the trimmed header itself when it is not a known column.
func TranslateHeader(header string) string {
	trimmed := strings.TrimSpace(strings.TrimPrefix(header, utf8BOM))
	if field, ok := headerAliases[normalizeHeader(trimmed)]; ok {
		return field
	}
	return trimmed
}

func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		switch r {
		case ' ', '_', '-', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ReadFile reads a CSV or XLSX file, chosen by extension.
func ReadFile(path string) (*reconcile.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &reconcile.SchemaError{Source: path, Err: err}
	}
	defer f.Close()

	return Read(f, path)
}

// Read reads a CSV or XLSX stream. The name is only used to pick the format
// and to label errors.
func Read(r io.Reader, name string) (*reconcile.Table, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return ReadCSV(r, name)
	case ".xlsx", ".xlsm":
		return ReadXLSX(r, name)
	default:
		return nil, &reconcile.SchemaError{Source: name, Err: ErrUnsupportedFormat}
	}
}

// ReadCSV reads a comma separated stream with a header row.
func ReadCSV(r io.Reader, source string) (*reconcile.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	b := &tableBuilder{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &reconcile.SchemaError{Source: source, Err: err}
		}
		line, _ := reader.FieldPos(0)
		b.add(line, row)
	}

	return b.build(source)
}

// ReadXLSX reads the first worksheet of a workbook.
func ReadXLSX(r io.Reader, source string) (*reconcile.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &reconcile.SchemaError{Source: source, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &reconcile.SchemaError{Source: source, Err: fmt.Errorf("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &reconcile.SchemaError{Source: source, Err: fmt.Errorf("failed to read rows: %w", err)}
	}

	b := &tableBuilder{}
	for i, row := range rows {
		b.add(i+1, row)
	}

	return b.build(source)
}

// tableBuilder collects raw rows into a table. The first non-blank row
// becomes the header.
type tableBuilder struct {
	columns []string
	records []reconcile.Record
	err     error
}

func (b *tableBuilder) add(line int, row []string) {
	if b.err != nil || isRowEmpty(row) {
		return
	}

	if b.columns == nil {
		b.columns = make([]string, len(row))
		seen := make(map[string]int, len(row))
		for i, h := range row {
			name := TranslateHeader(h)
			if name == "" {
				name = fmt.Sprintf("Column_%d", i+1)
			}
			if first, ok := seen[name]; ok {
				b.err = fmt.Errorf("%w %q in columns %d and %d", ErrDuplicateColumn, name, first+1, i+1)
				return
			}
			seen[name] = i
			b.columns[i] = name
		}
		return
	}

	cells := make(map[string]string, len(b.columns))
	for i, name := range b.columns {
		if i < len(row) {
			cells[name] = strings.TrimSpace(row[i])
		} else {
			cells[name] = ""
		}
	}
	b.records = append(b.records, reconcile.Record{Line: line, Cells: cells})
}

func (b *tableBuilder) build(source string) (*reconcile.Table, error) {
	if b.err != nil {
		return nil, &reconcile.SchemaError{Source: source, Err: b.err}
	}
	if b.columns == nil {
		return nil, &reconcile.SchemaError{Source: source, Err: ErrMissingHeader}
	}
	records := b.records
	if records == nil {
		records = []reconcile.Record{}
	}
	return &reconcile.Table{Columns: b.columns, Records: records}, nil
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(strings.TrimPrefix(cell, utf8BOM)) != "" {
			return false
		}
	}
	return true
}
