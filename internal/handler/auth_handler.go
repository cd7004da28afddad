package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/dto"
	"github.com/launchperks/deals-service/internal/service"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService service.AuthService
	responder   *Responder
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, responder *Responder) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		responder:   responder,
	}
}

// Register handles user registration
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BindError(c, err)
		return
	}

	data, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	h.responder.Created(c, "Registration successful", data)
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BindError(c, err)
		return
	}

	data, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	h.responder.OK(c, "Login successful", data)
}

// Refresh exchanges a refresh token for a new token pair
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.Fail(c, domain.NewValidationError("Refresh token is required"))
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	h.responder.OK(c, "Token refreshed successfully", pair)
}

// Profile returns the authenticated user's public profile
// GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		h.responder.Fail(c, domain.NewAuthenticationError("Authentication required"))
		return
	}

	h.responder.OK(c, "Profile retrieved successfully", dto.ProfileData{User: user.PublicProfile()})
}

// Logout clears the stored refresh token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		h.responder.Fail(c, domain.NewAuthenticationError("Authentication required"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), user); err != nil {
		h.responder.Fail(c, err)
		return
	}

	h.responder.OK(c, "Logout successful", nil)
}
