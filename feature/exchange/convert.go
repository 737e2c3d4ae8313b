package exchange

import (
	"math"
	"strconv"
	"strings"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/models"

	"github.com/shopspring/decimal"
)

var maxQuantity = decimal.NewFromInt(math.MaxInt32)

// toItem converts a cleaned row into a storable item. The row's id is not
// carried over, imported rows always get fresh ids.
func toItem(row reconcile.CleanedRow, defaultCurrency string) (models.Item, *reconcile.DataError) {
	fail := func(field, value, reason string) (models.Item, *reconcile.DataError) {
		return models.Item{}, &reconcile.DataError{
			ItemNumber: row.ItemNumber,
			Line:       row.Line,
			Field:      field,
			Value:      value,
			Reason:     reason,
		}
	}

	itemNumber := strings.TrimSpace(row.ItemNumber)
	if itemNumber == "" {
		return fail(reconcile.FieldItemNumber, row.ItemNumber, "item number is required")
	}
	title := strings.TrimSpace(row.Title)
	if title == "" {
		return fail(reconcile.FieldTitle, row.Title, "title is required")
	}

	qty, err := decimal.NewFromString(strings.TrimSpace(row.AvailableQuantity))
	if err != nil {
		return fail(reconcile.FieldAvailableQuantity, row.AvailableQuantity, "quantity is not a number")
	}
	if !qty.IsInteger() || qty.IsNegative() {
		return fail(reconcile.FieldAvailableQuantity, row.AvailableQuantity, "quantity must be a whole number of at least 0")
	}
	if qty.GreaterThan(maxQuantity) {
		return fail(reconcile.FieldAvailableQuantity, row.AvailableQuantity, "quantity is too large")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(row.StartPrice))
	if err != nil {
		return fail(reconcile.FieldStartPrice, row.StartPrice, "price is not a number")
	}
	if price.IsNegative() {
		return fail(reconcile.FieldStartPrice, row.StartPrice, "price must not be negative")
	}

	currency := strings.TrimSpace(row.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	return models.Item{
		ItemNumber:        itemNumber,
		Title:             title,
		VariationDetails:  strings.TrimSpace(row.VariationDetails),
		AvailableQuantity: int(qty.IntPart()),
		Currency:          currency,
		StartPrice:        price.InexactFloat64(),
		DepotInfo:         strings.TrimSpace(row.DepotInfo),
		ImagePath:         strings.TrimSpace(row.ImagePath),
	}, nil
}

// exportHeaders match the names the sheet reader translates back, so an
// export can be imported again.
var exportHeaders = []string{
	"id",
	"item_number",
	"title",
	"variation_details",
	"available_quantity",
	"currency",
	"start_price",
	"depot_info",
	"image_path",
	"updated_at",
}

func exportRecords(items []models.Item) [][]string {
	records := make([][]string, 0, len(items))
	for _, it := range items {
		updated := ""
		if !it.UpdatedAt.IsZero() {
			updated = it.UpdatedAt.Format("2006-01-02 15:04:05")
		}
		records = append(records, []string{
			strconv.FormatInt(it.ID, 10),
			it.ItemNumber,
			it.Title,
			it.VariationDetails,
			strconv.Itoa(it.AvailableQuantity),
			it.Currency,
			decimal.NewFromFloat(it.StartPrice).StringFixed(2),
			it.DepotInfo,
			it.ImagePath,
			updated,
		})
	}
	return records
}
