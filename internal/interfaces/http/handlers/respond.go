// internal/interfaces/http/handlers/respond.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

// writeError translates a typed error into the HTTP status and error body
// of the storefront API.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindBadRequest, apperrors.KindValidation:
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{
		"errorMessage": err.Error(),
	})
}
