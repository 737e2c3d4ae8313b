package inventory_test

import (
	"context"
	"testing"

	"inventory-manager/core/database"
	"inventory-manager/core/storage/mocks"
	"inventory-manager/feature/inventory"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testConfig = inventory.Config{
	DefaultCurrency:   "$",
	PerPage:           50,
	AllowedExtensions: "png,jpg,jpeg,gif,webp",
	ImagePrefix:       "uploads",
}

func setupService(t *testing.T) (*inventory.Service, *mocks.Client) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	repo := inventory.NewRepository(db)
	_, err = repo.Migrate(context.Background())
	require.NoError(t, err)

	client := new(mocks.Client)
	return inventory.NewService(repo, client, "inventory", testConfig, zap.NewNop()), client
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func validInput(number string) inventory.ItemInput {
	return inventory.ItemInput{
		ItemNumber:        number,
		Title:             "Linen Shirt",
		AvailableQuantity: intPtr(3),
		Currency:          "$",
		StartPrice:        floatPtr(19.9),
	}
}
