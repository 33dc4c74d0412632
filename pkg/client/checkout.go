// pkg/client/checkout.go
package client

import (
	"context"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/member"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

// CheckoutService drives a shopper session: it is the only writer of the
// local CartState, and every remote call completes before any local write, so
// the visible state only ever reflects a store-confirmed state.
type CheckoutService struct {
	api   *API
	state *CartState

	memberInfo   *member.Information
	orderHistory []order.Order
}

// NewCheckoutService creates a checkout service over the given API client.
func NewCheckoutService(api *API, rules cart.PricingRules) *CheckoutService {
	return &CheckoutService{
		api:   api,
		state: NewCartState(rules),
	}
}

// Login authenticates the shopper for this session.
func (s *CheckoutService) Login(ctx context.Context, username, password string) error {
	return s.api.Login(ctx, username, password)
}

// Cart returns the session's cart state for reads and selection changes.
func (s *CheckoutService) Cart() *CartState {
	return s.state
}

// Refresh reloads the cart snapshot from the store.
func (s *CheckoutService) Refresh(ctx context.Context) error {
	snapshot, err := s.api.CartItems(ctx)
	if err != nil {
		return err
	}
	s.state.replace(snapshot)
	return nil
}

// AddItem adds one unit of the product to the cart. The store-minted line is
// appended locally only after the remote call succeeds.
func (s *CheckoutService) AddItem(ctx context.Context, productID uint) error {
	item, err := s.api.AddCartItem(ctx, productID)
	if err != nil {
		return actionError("장바구니에 상품을 담지 못했습니다", err)
	}
	s.state.appendLine(item)
	return nil
}

// UpdateItemQuantity changes a line's quantity. A quantity below 1 is a
// silent no-op and never reaches the wire.
func (s *CheckoutService) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	if quantity < 1 {
		return nil
	}

	snapshot, err := s.api.UpdateCartItemQuantity(ctx, itemID, quantity)
	if err != nil {
		return actionError("수량을 변경하지 못했습니다", err)
	}
	s.state.replace(snapshot)
	return nil
}

// RemoveItem deletes one cart line, then reconciles the local snapshot with
// a full refresh.
func (s *CheckoutService) RemoveItem(ctx context.Context, itemID uint) error {
	if err := s.api.RemoveCartItem(ctx, itemID); err != nil {
		return actionError("상품을 삭제하지 못했습니다", err)
	}
	return s.Refresh(ctx)
}

// RemoveCheckedItems deletes every checked line with independent requests.
// A failed removal does not roll back the ones already applied; the first
// failure is reported after the reconciling refresh.
func (s *CheckoutService) RemoveCheckedItems(ctx context.Context) error {
	var firstErr error
	for _, id := range s.state.SelectedIDs() {
		if err := s.api.RemoveCartItem(ctx, id); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if err := s.Refresh(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr != nil {
		return actionError("선택한 상품을 삭제하지 못했습니다", firstErr)
	}
	return nil
}

// Costs returns the memoized cost summary for the current selection,
// fetching the shopper's rank first if it is not cached yet.
func (s *CheckoutService) Costs(ctx context.Context) (cart.CheckoutCosts, error) {
	if _, err := s.MemberInformation(ctx); err != nil {
		return cart.CheckoutCosts{}, err
	}
	return s.state.Costs(), nil
}

// OrderCheckedItems submits the checked lines together with the cost summary
// the shopper saw. On success the cart is refreshed, the selection cleared,
// and the member-information and order-history caches invalidated, since the
// purchase may have raised the shopper's rank.
func (s *CheckoutService) OrderCheckedItems(ctx context.Context) (*order.Order, error) {
	ids := s.state.SelectedIDs()
	if len(ids) == 0 {
		return nil, apperrors.Validation("no items selected for order")
	}

	costs, err := s.Costs(ctx)
	if err != nil {
		return nil, err
	}

	o, err := s.api.CreateOrder(ctx, order.CreateOrderInput{
		CartItemIDs:   ids,
		CheckoutCosts: costs,
	})
	if err != nil {
		return nil, actionError("주문을 완료하지 못했습니다", err)
	}

	s.memberInfo = nil
	s.orderHistory = nil
	s.state.ClearSelection()
	if err := s.Refresh(ctx); err != nil {
		return o, err
	}
	return o, nil
}

// MemberInformation returns the shopper's rank information, cached until a
// successful order invalidates it.
func (s *CheckoutService) MemberInformation(ctx context.Context) (member.Information, error) {
	if s.memberInfo != nil {
		return *s.memberInfo, nil
	}

	info, err := s.api.MemberInformation(ctx)
	if err != nil {
		return member.Information{}, err
	}
	s.memberInfo = &info
	s.state.setRank(info.Rank)
	return info, nil
}

// OrderHistory returns the shopper's orders, cached until a successful order
// invalidates it.
func (s *CheckoutService) OrderHistory(ctx context.Context) ([]order.Order, error) {
	if s.orderHistory != nil {
		return s.orderHistory, nil
	}

	orders, err := s.api.Orders(ctx)
	if err != nil {
		return nil, err
	}
	s.orderHistory = orders
	return orders, nil
}

// actionError replaces BadRequest and ServerError messages with the action's
// contextual message, keeping the raw error as the cause. NotFound and
// validation failures pass through untouched.
func actionError(message string, err error) error {
	kind := apperrors.KindOf(err)
	if kind != apperrors.KindBadRequest && kind != apperrors.KindServerError {
		return err
	}
	return &apperrors.Error{Kind: kind, Message: message, Err: err}
}
