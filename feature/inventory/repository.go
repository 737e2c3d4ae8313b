package inventory

import (
	"context"
	"errors"
	"fmt"

	"inventory-manager/core/database"
	"inventory-manager/feature/inventory/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an item does not exist.
var ErrNotFound = errors.New("item not found")

const batchSize = 500

// Repository persists inventory items.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over an open database.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or extends the inventory table and returns the columns it added.
// Existing rows are kept.
func (r *Repository) Migrate(ctx context.Context) ([]string, error) {
	db := r.db.WithContext(ctx)

	if !db.Migrator().HasTable(&models.Item{}) {
		if err := db.AutoMigrate(&models.Item{}); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", models.TableName, err)
		}
		return nil, nil
	}

	before, err := database.ColumnSet(db, models.TableName)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Item{}); err != nil {
		return nil, fmt.Errorf("failed to migrate %s: %w", models.TableName, err)
	}
	after, err := database.ColumnSet(db, models.TableName)
	if err != nil {
		return nil, err
	}
	return database.AddedColumns(before, after), nil
}

// filtered starts a fresh query over the items matching search.
func (r *Repository) filtered(ctx context.Context, search string) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&models.Item{})
	if search == "" {
		return db
	}
	like := "%" + search + "%"
	return db.Where("item_number LIKE ? OR title LIKE ? OR variation_details LIKE ?", like, like, like)
}

// List returns items newest first. Without a search the result is paginated.
func (r *Repository) List(ctx context.Context, q models.ListQuery) (*models.Page[models.Item], error) {
	var total int64
	if err := r.filtered(ctx, q.Search).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	page := newPage[models.Item](q, total)
	query := r.filtered(ctx, q.Search).Order("id DESC")
	if q.Search == "" {
		query = query.Limit(page.PerPage).Offset((page.Page - 1) * page.PerPage)
	}

	items := []models.Item{}
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	page.Items = items
	return page, nil
}

// ListGrouped returns one row per item number, title, currency and depot.
// Quantities are summed and prices averaged across variants.
func (r *Repository) ListGrouped(ctx context.Context, q models.ListQuery) (*models.Page[models.GroupedItem], error) {
	var total int64
	if err := r.filtered(ctx, q.Search).Distinct("item_number").Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count item numbers: %w", err)
	}

	page := newPage[models.GroupedItem](q, total)
	query := r.filtered(ctx, q.Search).Select(
		"MIN(id) AS id",
		"item_number",
		"title",
		"currency",
		"COALESCE(depot_info, '') AS depot_info",
		"SUM(available_quantity) AS total_quantity",
		"AVG(start_price) AS average_price",
		"COALESCE(GROUP_CONCAT(DISTINCT NULLIF(variation_details, '')), '') AS variation_details",
		"COUNT(*) AS variant_count",
		"COALESCE(MIN(NULLIF(image_path, '')), '') AS image_path",
	).Group("item_number, title, currency, depot_info").Order("id DESC")
	if q.Search == "" {
		query = query.Limit(page.PerPage).Offset((page.Page - 1) * page.PerPage)
	}

	items := []models.GroupedItem{}
	if err := query.Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list grouped items: %w", err)
	}
	page.Items = items
	return page, nil
}

func newPage[T any](q models.ListQuery, total int64) *models.Page[T] {
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 50
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if q.Search != "" {
		page, totalPages = 1, 1
	}
	return &models.Page[T]{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages, Search: q.Search}
}

// Get returns a single item.
func (r *Repository) Get(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return &item, nil
}

// Create inserts an item. A positive ID is kept unless another row already
// uses it, in which case the database assigns a new one.
func (r *Repository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if item.ID > 0 {
			var count int64
			if err := tx.Model(&models.Item{}).Where("id = ?", item.ID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check item id: %w", err)
			}
			if count > 0 {
				item.ID = 0
			}
		} else {
			item.ID = 0
		}
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create item: %w", err)
		}
		return nil
	})
}

var updatableColumns = []string{
	"item_number",
	"title",
	"variation_details",
	"available_quantity",
	"currency",
	"start_price",
	"depot_info",
	"updated_at",
}

// Update overwrites the editable fields of an existing item.
// The image path is left as it is.
func (r *Repository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Item
		if err := tx.First(&existing, item.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load item %d: %w", item.ID, err)
		}
		if err := tx.Model(item).Select(updatableColumns).Updates(item).Error; err != nil {
			return fmt.Errorf("failed to update item %d: %w", item.ID, err)
		}
		item.ImagePath = existing.ImagePath
		return nil
	})
}

// Delete removes an item.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Item{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetImagePath records the object key of an item's image.
func (r *Repository) SetImagePath(ctx context.Context, id int64, path string) error {
	res := r.db.WithContext(ctx).Model(&models.Item{ID: id}).Update("image_path", path)
	if res.Error != nil {
		return fmt.Errorf("failed to set image of item %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListImages returns every item that has an image.
func (r *Repository) ListImages(ctx context.Context) ([]models.ImageRef, error) {
	refs := []models.ImageRef{}
	err := r.db.WithContext(ctx).Model(&models.Item{}).
		Select("id", "item_number", "title", "image_path").
		Where("image_path IS NOT NULL AND image_path <> ''").
		Order("id").
		Scan(&refs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return refs, nil
}

// CreateBatch inserts items in chunks inside one transaction and returns
// how many were inserted. Either every item is stored or none is.
func (r *Repository) CreateBatch(ctx context.Context, items []models.Item) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&items, batchSize).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert %d items: %w", len(items), err)
	}
	return len(items), nil
}

// All returns every item in id order.
func (r *Repository) All(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	return items, nil
}
