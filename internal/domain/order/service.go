// internal/domain/order/service.go
package order

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/member"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

// Service handles order creation and history. Orders live for the lifetime
// of the process.
type Service struct {
	carts   *cart.Service
	members *member.Service

	mu       sync.RWMutex
	byMember map[uint][]*Order
	nextID   uint
}

// NewService creates a new order service.
func NewService(carts *cart.Service, members *member.Service) *Service {
	return &Service{
		carts:    carts,
		members:  members,
		byMember: make(map[uint][]*Order),
		nextID:   1,
	}
}

// Create turns a selection plus its cost summary into an order.
//
// The submitted summary must match the server's own recomputation for the
// selected lines and the shopper's current rank; a mismatch means the client
// priced against stale state and is rejected before anything changes. On
// success the ordered lines leave the cart and the order total is added to
// the shopper's cumulative purchase amount.
func (s *Service) Create(ctx context.Context, memberID uint, in CreateOrderInput) (*Order, error) {
	if len(in.CartItemIDs) == 0 {
		return nil, apperrors.Validation("no cart items selected for order")
	}
	seen := make(map[uint]struct{}, len(in.CartItemIDs))
	for _, id := range in.CartItemIDs {
		if _, dup := seen[id]; dup {
			return nil, apperrors.BadRequest("cart item %d is selected more than once", id)
		}
		seen[id] = struct{}{}
	}

	snapshot, err := s.carts.GetCart(ctx, memberID)
	if err != nil {
		return nil, err
	}

	items := make([]OrderItem, 0, len(in.CartItemIDs))
	for _, id := range in.CartItemIDs {
		line, ok := snapshot.Find(id)
		if !ok {
			return nil, apperrors.NotFound("cart item %d not found", id)
		}
		items = append(items, OrderItem{
			CartItemID:   line.ID,
			ProductID:    line.Product.ID,
			Name:         line.Product.Name,
			ImageURL:     line.Product.ImageURL,
			UnitPrice:    line.Product.UnitPrice,
			DiscountRate: line.Product.DiscountRate,
			Quantity:     line.Quantity,
		})
	}

	info, err := s.members.GetInformation(ctx, memberID)
	if err != nil {
		return nil, err
	}

	expected := cart.CalculateCosts(snapshot.Select(in.CartItemIDs), info.Rank, s.carts.Rules())
	if expected != in.CheckoutCosts {
		return nil, apperrors.BadRequest("submitted checkout costs do not match the current cart")
	}

	// The order is recorded only after the cart and the purchase amount have
	// both moved, so a failed removal never leaves a phantom order behind.
	if err := s.carts.RemoveItems(ctx, memberID, in.CartItemIDs); err != nil {
		return nil, err
	}

	if _, err := s.members.RecordPurchase(ctx, memberID, expected.TotalPrice); err != nil {
		return nil, err
	}

	s.mu.Lock()
	o := &Order{
		ID:            s.nextID,
		OrderNumber:   uuid.NewString(),
		MemberID:      memberID,
		Items:         items,
		CheckoutCosts: expected,
		CreatedAt:     time.Now().UTC(),
	}
	s.nextID++
	s.byMember[memberID] = append(s.byMember[memberID], o)
	s.mu.Unlock()

	return o, nil
}

// List returns the shopper's order history, newest first.
func (s *Service) List(ctx context.Context, memberID uint) ([]*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := s.byMember[memberID]
	out := make([]*Order, len(orders))
	copy(out, orders)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Get returns one order by id.
func (s *Service) Get(ctx context.Context, memberID uint, orderID uint) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.byMember[memberID] {
		if o.ID == orderID {
			return o, nil
		}
	}
	return nil, apperrors.NotFound("order %d not found", orderID)
}
