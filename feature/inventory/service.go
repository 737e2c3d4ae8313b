package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strconv"
	"strings"

	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	// ErrInvalidItem wraps validation failures of item input.
	ErrInvalidItem = errors.New("invalid item")
	// ErrImageType is returned for uploads with an extension that is not allowed.
	ErrImageType = errors.New("image type not allowed")
	// ErrNoImage is returned when an item has no stored image.
	ErrNoImage = errors.New("item has no image")
)

// ItemInput is the writable part of an item as sent by clients.
type ItemInput struct {
	// ID is honoured on create when it is free.
	ID                int64    `json:"id,omitempty"`
	ItemNumber        string   `json:"item_number"`
	Title             string   `json:"title"`
	VariationDetails  string   `json:"variation_details"`
	AvailableQuantity *int     `json:"available_quantity"`
	Currency          string   `json:"currency"`
	StartPrice        *float64 `json:"start_price"`
	DepotInfo         string   `json:"depot_info"`
}

// Validate checks required fields and value ranges.
func (in ItemInput) Validate() error {
	switch {
	case strings.TrimSpace(in.ItemNumber) == "":
		return fmt.Errorf("%w: item_number is required", ErrInvalidItem)
	case strings.TrimSpace(in.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidItem)
	case strings.TrimSpace(in.Currency) == "":
		return fmt.Errorf("%w: currency is required", ErrInvalidItem)
	case in.AvailableQuantity == nil:
		return fmt.Errorf("%w: available_quantity is required", ErrInvalidItem)
	case *in.AvailableQuantity < 0:
		return fmt.Errorf("%w: available_quantity must not be negative", ErrInvalidItem)
	case in.StartPrice == nil:
		return fmt.Errorf("%w: start_price is required", ErrInvalidItem)
	case *in.StartPrice < 0:
		return fmt.Errorf("%w: start_price must not be negative", ErrInvalidItem)
	}
	return nil
}

func (in ItemInput) toItem() *models.Item {
	return &models.Item{
		ID:                in.ID,
		ItemNumber:        strings.TrimSpace(in.ItemNumber),
		Title:             strings.TrimSpace(in.Title),
		VariationDetails:  strings.TrimSpace(in.VariationDetails),
		AvailableQuantity: *in.AvailableQuantity,
		Currency:          strings.TrimSpace(in.Currency),
		StartPrice:        *in.StartPrice,
		DepotInfo:         strings.TrimSpace(in.DepotInfo),
	}
}

// Service implements the inventory operations behind the HTTP API.
type Service struct {
	repo   *Repository
	client storage.Client
	bucket string
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(repo *Repository, client storage.Client, bucket string, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		client: client,
		bucket: bucket,
		cfg:    cfg,
		logger: logger,
	}
}

// Repository returns the underlying repository.
func (s *Service) Repository() *Repository {
	return s.repo
}

// List returns a page of items.
func (s *Service) List(ctx context.Context, search string, page int) (*models.Page[models.Item], error) {
	return s.repo.List(ctx, s.query(search, page))
}

// ListGrouped returns a page of items grouped by item number.
func (s *Service) ListGrouped(ctx context.Context, search string, page int) (*models.Page[models.GroupedItem], error) {
	return s.repo.ListGrouped(ctx, s.query(search, page))
}

func (s *Service) query(search string, page int) models.ListQuery {
	return models.ListQuery{
		Search:  strings.TrimSpace(search),
		Page:    page,
		PerPage: s.cfg.perPage(),
	}
}

// Get returns a single item.
func (s *Service) Get(ctx context.Context, id int64) (*models.Item, error) {
	return s.repo.Get(ctx, id)
}

// Create validates and stores a new item.
func (s *Service) Create(ctx context.Context, in ItemInput) (*models.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	item := in.toItem()
	requested := item.ID
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	if requested > 0 && item.ID != requested {
		s.logger.Info("Requested item id taken, assigned a new one",
			zap.Int64("requested_id", requested),
			zap.Int64("id", item.ID),
		)
	}
	return item, nil
}

// Update validates and overwrites an existing item.
func (s *Service) Update(ctx context.Context, id int64, in ItemInput) (*models.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	item := in.toItem()
	item.ID = id
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item and, best effort, its image.
func (s *Service) Delete(ctx context.Context, id int64) error {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if item.ImagePath != "" {
		s.removeImage(ctx, item.ImagePath)
	}
	return nil
}

// UploadImage stores an image for an item and records its object key.
// An unknown id gets a placeholder item so the image is never orphaned.
func (s *Service) UploadImage(ctx context.Context, id int64, filename string, r io.Reader, size int64) (*models.Item, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if !s.cfg.IsAllowed(ext) {
		return nil, fmt.Errorf("%w: %q (allowed: %s)", ErrImageType, ext, strings.Join(s.cfg.Extensions(), ", "))
	}

	item, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		item, err = s.createPlaceholder(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	key := s.objectKey(item, ext)
	_, err = s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: ContentType(ext),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	if err := s.repo.SetImagePath(ctx, item.ID, key); err != nil {
		s.removeImage(ctx, key)
		return nil, err
	}

	previous := item.ImagePath
	item.ImagePath = key
	if previous != "" && previous != key {
		s.removeImage(ctx, previous)
	}
	return item, nil
}

func (s *Service) createPlaceholder(ctx context.Context, id int64) (*models.Item, error) {
	item := &models.Item{
		ID:         id,
		ItemNumber: "AUTO" + strconv.FormatInt(id, 10),
		Title:      "Product " + strconv.FormatInt(id, 10),
		Currency:   s.cfg.DefaultCurrency,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.logger.Info("Created placeholder item for image upload", zap.Int64("id", item.ID))
	return item, nil
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// objectKey names an image as product_<item number>_<id>_<8 hex>.<ext>.
func (s *Service) objectKey(item *models.Item, ext string) string {
	itemNumber := strings.Trim(unsafeKeyChars.ReplaceAllString(item.ItemNumber, "_"), "_")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	name := fmt.Sprintf("product_%s_%d_%s.%s", itemNumber, item.ID, suffix, ext)
	if s.cfg.ImagePrefix == "" {
		return name
	}
	return strings.TrimSuffix(s.cfg.ImagePrefix, "/") + "/" + name
}

func (s *Service) removeImage(ctx context.Context, key string) {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		s.logger.Warn("Failed to remove image", zap.String("key", key), zap.Error(err))
	}
}

// OpenImage returns the stored image of an item and its content type.
// The caller closes the reader.
func (s *Service) OpenImage(ctx context.Context, id int64) (io.ReadCloser, string, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if item.ImagePath == "" {
		return nil, "", ErrNoImage
	}

	obj, err := s.client.GetObject(ctx, s.bucket, item.ImagePath, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	return obj, ContentType(path.Ext(item.ImagePath)), nil
}

// Images lists every item that has an image.
func (s *Service) Images(ctx context.Context) ([]models.ImageRef, error) {
	return s.repo.ListImages(ctx)
}

// ContentType maps an image extension to its MIME type.
func ContentType(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
