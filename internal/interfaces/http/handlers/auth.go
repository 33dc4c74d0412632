// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/member"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	members    *member.Service
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(members *member.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		members:    members,
		jwtManager: auth.NewJWTManager(cfg),
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errorMessage": "username and password are required",
		})
		return
	}

	m, err := h.members.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Do not leak whether the account exists
		c.JSON(http.StatusUnauthorized, gin.H{
			"errorMessage": "invalid username or password",
		})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(m.ID, m.Username)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": token,
	})
}
