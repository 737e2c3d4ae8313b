package inventory

import (
	"context"
	"fmt"
	"testing"

	"inventory-manager/core/database"
	"inventory-manager/feature/inventory/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	repo := NewRepository(db)
	_, err = repo.Migrate(context.Background())
	require.NoError(t, err)
	return repo
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func item(number, title, variation string, qty int, price float64) models.Item {
	return models.Item{
		ItemNumber:        number,
		Title:             title,
		VariationDetails:  variation,
		AvailableQuantity: qty,
		Currency:          "$",
		StartPrice:        price,
	}
}

func TestRepository_MigrateAddsMissingColumns(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	// Schema of databases created before images were supported.
	require.NoError(t, db.Exec("CREATE TABLE inventory (id INTEGER PRIMARY KEY, item_number TEXT NOT NULL, title TEXT NOT NULL, "+
		"variation_details TEXT, available_quantity INTEGER NOT NULL, currency TEXT NOT NULL, start_price REAL NOT NULL, depot_info TEXT)").Error)
	require.NoError(t, db.Exec(`INSERT INTO inventory (id, item_number, title, available_quantity, currency, start_price)
		VALUES (7, '100', 'Old Lamp', 2, '$', 9.5)`).Error)

	repo := NewRepository(db)
	added, err := repo.Migrate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, added, "image_path")
	assert.Contains(t, added, "updated_at")

	existing, err := repo.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Old Lamp", existing.Title)

	added, err = repo.Migrate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, added)
}

func TestRepository_MigrateFreshTable(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	added, err := NewRepository(db).Migrate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, added)

	columns, err := database.ColumnSet(db, models.TableName)
	require.NoError(t, err)
	assert.Contains(t, columns, "image_path")
	assert.Contains(t, columns, "depot_info")
}

func TestRepository_ListPaginates(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	var items []models.Item
	for i := 1; i <= 5; i++ {
		items = append(items, item(fmt.Sprintf("%d", 100+i), fmt.Sprintf("Item %d", i), "", i, 1))
	}
	_, err := repo.CreateBatch(ctx, items)
	require.NoError(t, err)

	page, err := repo.List(ctx, models.ListQuery{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "105", page.Items[0].ItemNumber)
	assert.Equal(t, "104", page.Items[1].ItemNumber)

	last, err := repo.List(ctx, models.ListQuery{Page: 3, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, last.Items, 1)
	assert.Equal(t, "101", last.Items[0].ItemNumber)
}

func TestRepository_ListSearchIsNotPaginated(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	_, err := repo.CreateBatch(ctx, []models.Item{
		item("200", "Blue Shirt", "Size=S", 1, 10),
		item("200", "Blue Shirt", "Size=M", 1, 10),
		item("201", "Red Mug", "", 3, 4),
		item("202", "Shirt Hanger", "", 3, 2),
	})
	require.NoError(t, err)

	page, err := repo.List(ctx, models.ListQuery{Search: "shirt", Page: 4, PerPage: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Items, 3)

	page, err = repo.List(ctx, models.ListQuery{Search: "Size=M", PerPage: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Size=M", page.Items[0].VariationDetails)
}

func TestRepository_ListGrouped(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	_, err := repo.CreateBatch(ctx, []models.Item{
		item("300", "Tee", "Size=S", 4, 10),
		item("300", "Tee", "Size=M", 6, 20),
		item("301", "Cup", "", 2, 3),
	})
	require.NoError(t, err)

	page, err := repo.ListGrouped(ctx, models.ListQuery{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)

	cup := page.Items[0]
	assert.Equal(t, "301", cup.ItemNumber)
	assert.Equal(t, 1, cup.VariantCount)
	assert.Equal(t, "", cup.VariationDetails)

	tee := page.Items[1]
	assert.Equal(t, "300", tee.ItemNumber)
	assert.Equal(t, int64(10), tee.TotalQuantity)
	assert.InDelta(t, 15.0, tee.AveragePrice, 0.001)
	assert.Equal(t, 2, tee.VariantCount)
	assert.Contains(t, tee.VariationDetails, "Size=S")
	assert.Contains(t, tee.VariationDetails, "Size=M")
}

func TestRepository_CreateHonoursFreeID(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	first := item("400", "Vase", "", 1, 5)
	first.ID = 42
	require.NoError(t, repo.Create(ctx, &first))
	assert.Equal(t, int64(42), first.ID)

	clash := item("401", "Bowl", "", 1, 5)
	clash.ID = 42
	require.NoError(t, repo.Create(ctx, &clash))
	assert.NotEqual(t, int64(42), clash.ID)
	assert.Positive(t, clash.ID)

	stored, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Vase", stored.Title)
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	it := item("500", "Chair", "", 1, 30)
	require.NoError(t, repo.Create(ctx, &it))
	require.NoError(t, repo.SetImagePath(ctx, it.ID, "uploads/chair.png"))

	it.Title = "Oak Chair"
	it.AvailableQuantity = 0
	require.NoError(t, repo.Update(ctx, &it))
	assert.Equal(t, "uploads/chair.png", it.ImagePath)

	stored, err := repo.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oak Chair", stored.Title)
	assert.Equal(t, 0, stored.AvailableQuantity)
	assert.Equal(t, "uploads/chair.png", stored.ImagePath)

	missing := item("x", "x", "", 0, 0)
	missing.ID = 9999
	assert.ErrorIs(t, repo.Update(ctx, &missing), ErrNotFound)

	require.NoError(t, repo.Delete(ctx, it.ID))
	assert.ErrorIs(t, repo.Delete(ctx, it.ID), ErrNotFound)
	_, err = repo.Get(ctx, it.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_CheckConstraints(t *testing.T) {
	repo := setupRepository(t)

	bad := item("600", "Broken", "", -1, 1)
	assert.Error(t, repo.Create(context.Background(), &bad))
}

func TestRepository_ListImages(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	_, err := repo.CreateBatch(ctx, []models.Item{
		item("700", "With", "", 1, 1),
		item("701", "Without", "", 1, 1),
	})
	require.NoError(t, err)
	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.NoError(t, repo.SetImagePath(ctx, all[0].ID, "uploads/a.png"))
	assert.ErrorIs(t, repo.SetImagePath(ctx, 9999, "uploads/b.png"), ErrNotFound)

	refs, err := repo.ListImages(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "700", refs[0].ItemNumber)
	assert.Equal(t, "uploads/a.png", refs[0].ImagePath)
}

func TestRepository_CreateBatchIsAtomic(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	n, err := repo.CreateBatch(ctx, []models.Item{
		item("800", "Good", "", 1, 1),
		item("801", "Bad", "", -5, 1),
	})
	assert.Error(t, err)
	assert.Zero(t, n)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	n, err = repo.CreateBatch(ctx, nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestRepository_ListQueryShape(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `inventory` WHERE \\(item_number LIKE \\? OR title LIKE \\? OR variation_details LIKE \\?\\)").
		WithArgs("%lamp%", "%lamp%", "%lamp%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `inventory` WHERE .* ORDER BY id DESC$").
		WithArgs("%lamp%", "%lamp%", "%lamp%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_number", "title"}).AddRow(3, "9", "Desk lamp"))

	page, err := repo.List(context.Background(), models.ListQuery{Search: "lamp", Page: 2, PerPage: 50})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Desk lamp", page.Items[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `inventory` WHERE `inventory`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
