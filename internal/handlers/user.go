package handlers

import (
	"net/http"

	"github.com/btuckerc/jeopardy-sub004/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe godoc
// @Summary      Current user profile
// @Tags         user
// @Security     BearerAuth
// @Success      200 {object} models.User
// @Router       /api/v1/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.userService.GetByID(c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=1,max=100"`
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	user, err := h.userService.UpdateProfile(c.GetUint("user_id"), req.DisplayName)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetSettings godoc
// @Summary      Spoiler settings
// @Tags         user
// @Security     BearerAuth
// @Success      200 {object} services.SpoilerSettings
// @Router       /api/v1/me/settings [get]
func (h *UserHandler) GetSettings(c *gin.Context) {
	settings, err := h.userService.GetSettings(c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *UserHandler) UpdateSettings(c *gin.Context) {
	var req services.SpoilerSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	settings, err := h.userService.UpdateSettings(c.GetUint("user_id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *UserHandler) GetStats(c *gin.Context) {
	stats, err := h.userService.GetStats(c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
