// internal/domain/cart/store.go
package cart

import (
	"context"
	"sync"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

// Store owns the authoritative ordered line list for each shopper. Line ids
// are minted by the store and never reused after removal.
type Store interface {
	List(ctx context.Context, memberID uint) (Snapshot, error)
	// Append adds a new line with quantity 1. It always appends: adding a
	// product already in the cart creates a second line for it.
	Append(ctx context.Context, memberID uint, product catalog.Product) (Item, error)
	// UpdateQuantity replaces the quantity of one line. The snapshot is left
	// unchanged when the line does not exist.
	UpdateQuantity(ctx context.Context, memberID uint, itemID uint, quantity int) (Snapshot, error)
	// Remove deletes exactly one line. Removing from an empty cart or an
	// unknown id fails with NotFound.
	Remove(ctx context.Context, memberID uint, itemID uint) error
}

// MemoryStore keeps carts in process memory, one cart per shopper. It is the
// default store and the one the tests run against.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[uint]*memoryCart
}

type memoryCart struct {
	items  Snapshot
	nextID uint
}

// NewMemoryStore creates an empty in-memory cart store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[uint]*memoryCart)}
}

func (s *MemoryStore) cart(memberID uint) *memoryCart {
	c, ok := s.carts[memberID]
	if !ok {
		c = &memoryCart{nextID: 1}
		s.carts[memberID] = c
	}
	return c
}

// List returns a copy of the shopper's current snapshot.
func (s *MemoryStore) List(ctx context.Context, memberID uint) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[memberID]
	if !ok {
		return Snapshot{}, nil
	}
	out := make(Snapshot, len(c.items))
	copy(out, c.items)
	return out, nil
}

// Append adds a new line for the product with quantity 1.
func (s *MemoryStore) Append(ctx context.Context, memberID uint, product catalog.Product) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(memberID)
	item := Item{ID: c.nextID, Quantity: 1, Product: product}
	c.nextID++
	c.items = append(c.items, item)
	return item, nil
}

// UpdateQuantity sets the quantity of one line.
func (s *MemoryStore) UpdateQuantity(ctx context.Context, memberID uint, itemID uint, quantity int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[memberID]
	if ok {
		for i := range c.items {
			if c.items[i].ID == itemID {
				c.items[i].Quantity = quantity
				out := make(Snapshot, len(c.items))
				copy(out, c.items)
				return out, nil
			}
		}
	}
	return nil, apperrors.NotFound("cart item %d not found", itemID)
}

// Remove deletes one line.
func (s *MemoryStore) Remove(ctx context.Context, memberID uint, itemID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[memberID]
	if !ok || len(c.items) == 0 {
		return apperrors.NotFound("cart is empty")
	}
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("cart item %d not found", itemID)
}
