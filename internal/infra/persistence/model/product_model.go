package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Code        string     `gorm:"type:varchar(8);not null;uniqueIndex:uk_products_code"`
	Name        string     `gorm:"type:varchar(200);not null;uniqueIndex:uk_products_name"`
	Price       float64    `gorm:"not null"`
	Description string     `gorm:"type:varchar(500)"`
	EntryBy     uuid.UUID  `gorm:"type:uuid;not null"`
	EntryDate   time.Time  `gorm:"not null"`
	UpdatedBy   *uuid.UUID `gorm:"type:uuid"`
	UpdatedDate *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
