// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// ProductHandler handles catalog read endpoints
type ProductHandler struct {
	catalog catalog.Repository
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogRepo catalog.Repository) *ProductHandler {
	return &ProductHandler{catalog: catalogRepo}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errorMessage": "invalid product id",
		})
		return
	}

	product, err := h.catalog.FindByID(c.Request.Context(), uint(productID))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
