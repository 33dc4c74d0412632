// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog product. The catalog is read-only input for
// the cart core; products are never mutated through this module.
type Product struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null;size:255" json:"name"`
	UnitPrice    int64          `gorm:"not null" json:"unitPrice"` // Whole currency units
	DiscountRate int            `gorm:"default:0" json:"discountRate"`
	ImageURL     string         `gorm:"size:500" json:"imageUrl"`
	CreatedAt    time.Time      `json:"-"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}
