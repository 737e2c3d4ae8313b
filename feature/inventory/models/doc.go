// Package models defines the persisted inventory row and the read models
// built from it (grouped listings, image references, pages).
package models
