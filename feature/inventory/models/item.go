package models

import "time"

// TableName is the name of the inventory table.
const TableName = "inventory"

// Item is one listing row of the inventory table.
type Item struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ItemNumber        string    `gorm:"column:item_number;type:text;not null" json:"item_number"`
	Title             string    `gorm:"column:title;type:text;not null" json:"title"`
	VariationDetails  string    `gorm:"column:variation_details;type:text" json:"variation_details"`
	AvailableQuantity int       `gorm:"column:available_quantity;not null;check:chk_inventory_quantity,available_quantity >= 0" json:"available_quantity"`
	Currency          string    `gorm:"column:currency;type:text;not null" json:"currency"`
	StartPrice        float64   `gorm:"column:start_price;not null;check:chk_inventory_price,start_price >= 0" json:"start_price"`
	DepotInfo         string    `gorm:"column:depot_info;type:text" json:"depot_info"`
	ImagePath         string    `gorm:"column:image_path;type:text" json:"image_path"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the GORM table name.
func (Item) TableName() string {
	return TableName
}

// GroupedItem is one item number with its variants folded together.
type GroupedItem struct {
	ID               int64   `gorm:"column:id" json:"id"`
	ItemNumber       string  `gorm:"column:item_number" json:"item_number"`
	Title            string  `gorm:"column:title" json:"title"`
	Currency         string  `gorm:"column:currency" json:"currency"`
	DepotInfo        string  `gorm:"column:depot_info" json:"depot_info"`
	TotalQuantity    int64   `gorm:"column:total_quantity" json:"total_quantity"`
	AveragePrice     float64 `gorm:"column:average_price" json:"average_price"`
	VariationDetails string  `gorm:"column:variation_details" json:"variation_details"`
	VariantCount     int     `gorm:"column:variant_count" json:"variant_count"`
	ImagePath        string  `gorm:"column:image_path" json:"image_path"`
}

// ImageRef points at the stored image of an item.
type ImageRef struct {
	ID         int64  `gorm:"column:id" json:"id"`
	ItemNumber string `gorm:"column:item_number" json:"item_number"`
	Title      string `gorm:"column:title" json:"title"`
	ImagePath  string `gorm:"column:image_path" json:"image_path"`
}

// ListQuery selects a page of the inventory.
type ListQuery struct {
	// Search matches item number, title or variation details. A search
	// returns every match on a single page.
	Search  string
	Page    int
	PerPage int
}

// Page is one page of a listing.
type Page[T any] struct {
	Items      []T    `json:"items"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalPages int    `json:"total_pages"`
	Search     string `json:"search,omitempty"`
}
