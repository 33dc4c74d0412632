// internal/domain/catalog/memory.go
package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

// MemoryRepository is a process-local catalog used when no database is
// configured, and by the test suite.
type MemoryRepository struct {
	mu       sync.RWMutex
	products map[uint]Product
}

// NewMemoryRepository creates a catalog holding the given products.
func NewMemoryRepository(products []Product) *MemoryRepository {
	m := make(map[uint]Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &MemoryRepository{products: m}
}

// List returns every product ordered by id.
func (r *MemoryRepository) List(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FindByID returns the product with the given id.
func (r *MemoryRepository) FindByID(ctx context.Context, productID uint) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok {
		return nil, apperrors.NotFound("product %d not found", productID)
	}
	return &p, nil
}

// SeedProducts is the default development catalog.
func SeedProducts() []Product {
	return []Product{
		{ID: 1, Name: "PET보틀-정사각(420ml)", UnitPrice: 43400, DiscountRate: 0, ImageURL: "https://cdn.example.com/products/1.jpg"},
		{ID: 2, Name: "PET보틀-밀크티(370ml)", UnitPrice: 73400, DiscountRate: 5, ImageURL: "https://cdn.example.com/products/2.jpg"},
		{ID: 3, Name: "PET보틀-정사각(370ml)", UnitPrice: 41000, DiscountRate: 0, ImageURL: "https://cdn.example.com/products/3.jpg"},
		{ID: 4, Name: "PET보틀-단지(480ml)", UnitPrice: 175000, DiscountRate: 10, ImageURL: "https://cdn.example.com/products/4.jpg"},
		{ID: 5, Name: "PET보틀-납작(260ml)", UnitPrice: 10000, DiscountRate: 0, ImageURL: "https://cdn.example.com/products/5.jpg"},
		{ID: 6, Name: "PET보틀-원형(500ml)", UnitPrice: 89000, DiscountRate: 20, ImageURL: "https://cdn.example.com/products/6.jpg"},
	}
}
