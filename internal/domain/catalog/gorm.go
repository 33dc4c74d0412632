// internal/domain/catalog/gorm.go
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// GormRepository reads the catalog from the storefront database.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a database-backed catalog repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// List returns every product ordered by id.
func (r *GormRepository) List(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// FindByID returns the product with the given id.
func (r *GormRepository) FindByID(ctx context.Context, productID uint) (*Product, error) {
	var product Product
	err := r.db.WithContext(ctx).First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("product %d not found", productID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product %d: %w", productID, err)
	}
	return &product, nil
}
