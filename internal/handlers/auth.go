package handlers

import (
	"net/http"

	"github.com/btuckerc/jeopardy-sub004/internal/models"
	"github.com/btuckerc/jeopardy-sub004/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  *services.AuthService
	guestService *services.GuestService
}

func NewAuthHandler(authService *services.AuthService, guestService *services.GuestService) *AuthHandler {
	return &AuthHandler{authService: authService, guestService: guestService}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ken@example.com"`
	Username string `json:"username" binding:"required,min=3,max=100" example:"ken"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`

	// GuestSessionID claims an anonymous play session in the same flow.
	GuestSessionID string `json:"guest_session_id,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ken@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	Token string       `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  *models.User `json:"user"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account, optionally claiming a guest session, and return a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	user, token, err := h.authService.Register(req.Email, req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	// Best-effort claim: the account exists either way, so a stale or
	// already-claimed session id does not fail registration.
	if req.GuestSessionID != "" {
		h.guestService.ClaimSession(req.GuestSessionID, user.ID)
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} AuthResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error(), Code: "invalid_credentials"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}
