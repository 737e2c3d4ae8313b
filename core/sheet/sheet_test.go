package sheet

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inventory-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const marketplaceCSV = "\ufeffItem number,Title,Variation details,Available quantity,Currency,Start price,Listing status\n" +
	"1001,Linen Shirt,,3,$,19.9,Active\n" +
	"\n" +
	"1002,Cotton Tee,Size=All,10,$,12,Active\n" +
	"1002,Cotton Tee,Size=S,4,$,12,Active\n" +
	"1002,Cotton Tee,Size=M,6,$,12,Active\n"

func TestTranslateHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Item number", reconcile.FieldItemNumber},
		{"item_number", reconcile.FieldItemNumber},
		{"  ITEM NUMBER ", reconcile.FieldItemNumber},
		{"Available quantity", reconcile.FieldAvailableQuantity},
		{"start-price", reconcile.FieldStartPrice},
		{"image_path", reconcile.FieldImagePath},
		{"depot_info", reconcile.FieldDepotInfo},
		{"\ufeffid", reconcile.FieldID},
		{"Listing status", "Listing status"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateHeader(tt.header))
		})
	}
}

func TestReadCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(marketplaceCSV), "export.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{
		reconcile.FieldItemNumber,
		reconcile.FieldTitle,
		reconcile.FieldVariationDetails,
		reconcile.FieldAvailableQuantity,
		reconcile.FieldCurrency,
		reconcile.FieldStartPrice,
		"Listing status",
	}, table.Columns)
	require.Len(t, table.Records, 4)

	first := table.Records[0]
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "1001", first.Cells[reconcile.FieldItemNumber])
	assert.Equal(t, "", first.Cells[reconcile.FieldVariationDetails])

	// The blank line is skipped but still counted.
	assert.Equal(t, 4, table.Records[1].Line)
}

func TestReadCSV_ThenReconcile(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(marketplaceCSV), "export.csv")
	require.NoError(t, err)

	result := reconcile.ReconcileTable(table)

	require.True(t, result.OK())
	require.Len(t, result.Rows, 3)
	assert.Equal(t, "Size=S", result.Rows[0].VariationDetails)
	assert.Equal(t, "Size=M", result.Rows[1].VariationDetails)
	assert.Equal(t, "1001", result.Rows[2].ItemNumber)
	assert.Equal(t, "19.90", result.Rows[2].StartPrice)
}

func TestReadCSV_ShortRowsArePadded(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("Item number,Title,Currency\n7,Cup\n"), "short.csv")
	require.NoError(t, err)

	require.Len(t, table.Records, 1)
	assert.Equal(t, "", table.Records[0].Cells[reconcile.FieldCurrency])
}

func TestReadCSV_SchemaErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"OnlyBlankLines", "\n\n,,\n"},
		{"BrokenQuote", "Item number,Title\n1,\"unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input), "bad.csv")
			require.Error(t, err)

			var schemaErr *reconcile.SchemaError
			assert.True(t, errors.As(err, &schemaErr))
		})
	}
}

func TestReadCSV_DuplicateColumn(t *testing.T) {
	input := "Item number,Title,item_number\n1001,Shirt,1002\n"

	_, err := ReadCSV(strings.NewReader(input), "dup.csv")
	require.Error(t, err)

	var schemaErr *reconcile.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestRead_UnsupportedFormat(t *testing.T) {
	_, err := Read(strings.NewReader("x"), "inventory.pdf")

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadXLSX_Garbage(t *testing.T) {
	_, err := ReadXLSX(strings.NewReader("not a zip"), "bad.xlsx")

	var schemaErr *reconcile.SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestWriteCleanedXLSX_RoundTrip(t *testing.T) {
	rows := []reconcile.CleanedRow{
		{ID: "", ItemNumber: "0042", Title: "Lamp", AvailableQuantity: "2", Currency: "TL", StartPrice: "5.00"},
		{ID: "9", ItemNumber: "0041", Title: "Shade", VariationDetails: "Color=Red", AvailableQuantity: "1", Currency: "TL", StartPrice: "3.50", DepotInfo: "A-1"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCleanedXLSX(&buf, rows))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []string{CleanedSheetName}, f.GetSheetList())
	require.NoError(t, f.Close())

	table, err := ReadXLSX(bytes.NewReader(buf.Bytes()), "cleaned.xlsx")
	require.NoError(t, err)
	require.Len(t, table.Records, 2)

	back := table.Rows()
	// Leading zeros survive because cells are written as text.
	assert.Equal(t, "0042", back[0].ItemNumber)
	assert.Equal(t, "5.00", back[0].StartPrice)
	assert.Equal(t, "Color=Red", back[1].VariationDetails)
	assert.Equal(t, "A-1", back[1].DepotInfo)
	assert.Equal(t, 3, back[1].Line)
}

func TestWriteCleanedCSV(t *testing.T) {
	rows := []reconcile.CleanedRow{
		{ItemNumber: "5", Title: "Bowl, large", AvailableQuantity: "1", Currency: "$", StartPrice: "2.00"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCleanedCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,Item number,Title,Variation details,Available quantity,Currency,Start price,image_path,depot_info", lines[0])
	assert.Equal(t, `,5,"Bowl, large",,1,$,2.00,,`, lines[1])
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(marketplaceCSV), 0o644))

	table, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, table.Records, 4)

	_, err = ReadFile(filepath.Join(dir, "missing.csv"))
	var schemaErr *reconcile.SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}
