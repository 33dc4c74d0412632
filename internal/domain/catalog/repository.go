// internal/domain/catalog/repository.go
package catalog

import "context"

// Repository provides read access to the product catalog.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, productID uint) (*Product, error)
}
