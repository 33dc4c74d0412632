// internal/interfaces/http/handlers/order.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orders     *order.Service
	pdfService *pdf.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *order.Service, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		orders:     orders,
		pdfService: pdf.NewService(cfg),
	}
}

// CreateOrder handles POST /orders. The new order's id travels back in the
// Location header.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	memberID, _ := middleware.GetMemberIDFromContext(c)

	var req order.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errorMessage": "invalid order request body",
		})
		return
	}

	o, err := h.orders.Create(c.Request.Context(), memberID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/orders/%d", o.ID))
	c.JSON(http.StatusCreated, o)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	memberID, _ := middleware.GetMemberIDFromContext(c)

	orders, err := h.orders.List(c.Request.Context(), memberID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	memberID, _ := middleware.GetMemberIDFromContext(c)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errorMessage": "invalid order id",
		})
		return
	}

	o, err := h.orders.Get(c.Request.Context(), memberID, uint(orderID))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

// GetOrderReceipt handles GET /orders/:id/receipt
func (h *OrderHandler) GetOrderReceipt(c *gin.Context) {
	memberID, _ := middleware.GetMemberIDFromContext(c)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errorMessage": "invalid order id",
		})
		return
	}

	o, err := h.orders.Get(c.Request.Context(), memberID, uint(orderID))
	if err != nil {
		writeError(c, err)
		return
	}

	receipt, err := h.pdfService.GenerateReceipt(o)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", o.ID))
	c.Data(http.StatusOK, "application/pdf", receipt.Bytes())
}
