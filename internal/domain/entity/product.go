package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. Code and name are unique across the catalog.
type Product struct {
	ID          int64
	Code        string
	Name        string
	Price       float64
	Description string
	EntryBy     uuid.UUID
	EntryDate   time.Time
	UpdatedBy   *uuid.UUID
	UpdatedDate *time.Time
}

// MarkCreated stamps the creator and creation time.
func (p *Product) MarkCreated(by uuid.UUID, at time.Time) {
	p.EntryBy = by
	p.EntryDate = at
}

// MarkUpdated stamps the last editor and edit time.
func (p *Product) MarkUpdated(by uuid.UUID, at time.Time) {
	p.UpdatedBy = &by
	p.UpdatedDate = &at
}

// ProductSortProperties lists the properties a product page may be ordered by.
var ProductSortProperties = []string{"id", "code", "name", "price", "entryDate", "updatedDate"}
