// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/member"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	carts   *cart.Service
	members *member.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Service, members *member.Service) *CartHandler {
	return &CartHandler{
		carts:   carts,
		members: members,
	}
}

// AddCartItemRequest represents the add-to-cart request body
type AddCartItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
}

// UpdateCartItemRequest represents the quantity update request body
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCartItems handles GET /cart-items
func (h *CartHandler) GetCartItems(c *gin.Context) {
	memberID, _ := middleware.GetMemberIDFromContext(c)

	snapshot, err := h.carts.GetCart(c.Request.Context(), memberID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// AddCartItem handles POST /cart-items. The new line's id travels back in
// the Location header.
func (h *CartHandler) AddCartItem(c *gin.Context) {
	memberID, _ := middleware.GetMemberIDFromContext(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errorMessage": "productId is required",
		})
		return
	}

	item, err := h.carts.AddItem(c.Request.Context(), memberID, req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/cart-items/%d", item.ID))
	c.JSON(http.StatusCreated, item)
}

// UpdateCartItem handles PATCH /cart-items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	memberID, _ := middleware.GetMemberIDFromContext(c)

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errorMessage": "invalid cart item id",
		})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errorMessage": "quantity is required",
		})
		return
	}

	snapshot, err := h.carts.UpdateQuantity(c.Request.Context(), memberID, uint(itemID), req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// RemoveCartItem handles DELETE /cart-items/:id
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	memberID, _ := middleware.GetMemberIDFromContext(c)

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errorMessage": "invalid cart item id",
		})
		return
	}

	if err := h.carts.RemoveItem(c.Request.Context(), memberID, uint(itemID)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCheckoutCosts handles GET /cart-items/costs. The checked line ids
// travel as a comma-separated cartItemIds query parameter; the summary is
// computed with the shopper's current rank.
func (h *CartHandler) GetCheckoutCosts(c *gin.Context) {
	memberID, _ := middleware.GetMemberIDFromContext(c)

	itemIDs, err := parseCartItemIDs(c.Query("cartItemIds"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errorMessage": "invalid cartItemIds",
		})
		return
	}

	info, err := h.members.GetInformation(c.Request.Context(), memberID)
	if err != nil {
		writeError(c, err)
		return
	}

	costs, err := h.carts.Costs(c.Request.Context(), memberID, itemIDs, info.Rank)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, costs)
}

// parseCartItemIDs parses a comma-separated id list. An empty parameter is
// an empty selection, not an error.
func parseCartItemIDs(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
