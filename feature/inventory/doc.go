// Package inventory manages the listing rows of the inventory table.
//
// # Storage
//
// Repository wraps GORM. Migrate is additive: it creates the table or adds
// the columns a newer build introduced (image_path, updated_at) and reports
// which ones it added, without touching existing rows.
//
// # Listing
//
// List returns items newest first, PerPage at a time. A search matches item
// number, title and variation details with LIKE and returns every match on a
// single page. ListGrouped folds the variants of an item number into one row
// with the summed quantity, the average price and the variant count.
//
// # Creating items
//
// Create keeps a client supplied id when it is free and lets the database
// pick one when it is taken. CreateBatch inserts spreadsheet imports in one
// transaction.
//
// # Images
//
// Images live in the storage bucket under ImagePrefix and are named
// product_<item number>_<id>_<8 hex>.<ext>. Uploading an image for an id that
// does not exist creates a placeholder item (AUTO<id>, "Product <id>") so the
// image is never orphaned. Replacing or deleting an item removes its old image.
//
// # Routes
//
//	GET    /                      status
//	GET    /inventory             list (search, page, group=1)
//	POST   /inventory             create
//	GET    /inventory/:id         get
//	PUT    /inventory/:id         update
//	DELETE /inventory/:id         delete
//	POST   /inventory/:id/image   upload image (multipart "file")
//	GET    /inventory/:id/image   stream image
//	GET    /images                items with images
package inventory
