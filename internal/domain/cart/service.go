// internal/domain/cart/service.go
package cart

import (
	"context"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/member"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

// Service enforces the cart mutation rules over a Store. It is the only
// writer of cart state on the server side.
type Service struct {
	store   Store
	catalog catalog.Repository
	rules   PricingRules
}

// NewService creates a new cart service.
func NewService(store Store, catalogRepo catalog.Repository, rules PricingRules) *Service {
	return &Service{
		store:   store,
		catalog: catalogRepo,
		rules:   rules,
	}
}

// GetCart returns the shopper's current snapshot.
func (s *Service) GetCart(ctx context.Context, memberID uint) (Snapshot, error) {
	return s.store.List(ctx, memberID)
}

// AddItem resolves the product from the catalog and appends a new line with
// quantity 1. Unknown products fail with NotFound and no line is created.
func (s *Service) AddItem(ctx context.Context, memberID uint, productID uint) (Item, error) {
	product, err := s.catalog.FindByID(ctx, productID)
	if err != nil {
		return Item{}, err
	}
	return s.store.Append(ctx, memberID, *product)
}

// UpdateQuantity changes one line's quantity. Non-positive quantities are
// rejected before touching the store.
func (s *Service) UpdateQuantity(ctx context.Context, memberID uint, itemID uint, quantity int) (Snapshot, error) {
	if quantity < 1 {
		return nil, apperrors.BadRequest("quantity must be a positive integer")
	}
	return s.store.UpdateQuantity(ctx, memberID, itemID, quantity)
}

// RemoveItem removes exactly one line.
func (s *Service) RemoveItem(ctx context.Context, memberID uint, itemID uint) error {
	return s.store.Remove(ctx, memberID, itemID)
}

// RemoveItems removes each id independently. Removals already applied are
// not rolled back when a later one fails; the first failure is reported.
func (s *Service) RemoveItems(ctx context.Context, memberID uint, itemIDs []uint) error {
	for _, id := range itemIDs {
		if err := s.store.Remove(ctx, memberID, id); err != nil {
			return err
		}
	}
	return nil
}

// Costs computes the checkout cost summary for the named lines using the
// shopper's rank. Ids no longer present in the cart are excluded from the
// selection before pricing.
func (s *Service) Costs(ctx context.Context, memberID uint, itemIDs []uint, rank member.Rank) (CheckoutCosts, error) {
	snapshot, err := s.store.List(ctx, memberID)
	if err != nil {
		return CheckoutCosts{}, err
	}
	return CalculateCosts(snapshot.Select(itemIDs), rank, s.rules), nil
}

// Rules exposes the pricing rules the service calculates with.
func (s *Service) Rules() PricingRules {
	return s.rules
}
