// internal/interfaces/http/handlers/member.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/member"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// MemberHandler handles member information endpoints
type MemberHandler struct {
	members *member.Service
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(members *member.Service) *MemberHandler {
	return &MemberHandler{members: members}
}

// GetMemberInformation handles GET /members/me. Rank is derived from the
// cumulative purchase amount on every read.
func (h *MemberHandler) GetMemberInformation(c *gin.Context) {
	memberID, _ := middleware.GetMemberIDFromContext(c)

	info, err := h.members.GetInformation(c.Request.Context(), memberID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}
