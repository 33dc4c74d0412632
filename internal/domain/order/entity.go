// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// Order represents a completed checkout. The cost summary is frozen at
// creation time from the server's own recomputation.
type Order struct {
	ID          uint        `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	MemberID    uint        `json:"-"`
	Items       []OrderItem `json:"orderItems"`

	cart.CheckoutCosts

	CreatedAt time.Time `json:"orderedAt"`
}

// OrderItem is a cart line frozen into an order.
type OrderItem struct {
	CartItemID   uint   `json:"cartItemId"`
	ProductID    uint   `json:"productId"`
	Name         string `json:"name"`
	ImageURL     string `json:"imageUrl"`
	UnitPrice    int64  `json:"unitPrice"`
	DiscountRate int    `json:"discountRate"`
	Quantity     int    `json:"quantity"`
}

// Subtotal returns the undiscounted line price.
func (i OrderItem) Subtotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// CreateOrderInput is the order-creation request: the selected cart line ids
// plus the cost summary the shopper saw when confirming.
type CreateOrderInput struct {
	CartItemIDs []uint `json:"cartItemIds"`

	cart.CheckoutCosts
}
