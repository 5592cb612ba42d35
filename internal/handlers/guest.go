package handlers

import (
	"errors"
	"net/http"

	"github.com/btuckerc/jeopardy-sub004/internal/services"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestService *services.GuestService
}

func NewGuestHandler(guestService *services.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

// CreateSession godoc
// @Summary      Start anonymous play
// @Tags         guest
// @Produce      json
// @Success      201 {object} models.GuestSession
// @Router       /api/v1/guest-sessions [post]
func (h *GuestHandler) CreateSession(c *gin.Context) {
	session, err := h.guestService.CreateSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create guest session"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *GuestHandler) GetSession(c *gin.Context) {
	session, err := h.guestService.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *GuestHandler) SubmitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	result, err := h.guestService.RecordAnswer(c.Param("id"), req.QuestionID, req.Answer)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ClaimSession godoc
// @Summary      Attach a guest session to the signed-in account
// @Tags         guest
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Guest session id"
// @Success      200 {object} models.GuestSession
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/guest-sessions/{id}/claim [post]
func (h *GuestHandler) ClaimSession(c *gin.Context) {
	session, err := h.guestService.ClaimSession(c.Param("id"), c.GetUint("user_id"))
	if err != nil {
		if errors.Is(err, services.ErrSessionClaimed) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "already_claimed"})
			return
		}
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
		return
	}
	c.JSON(http.StatusOK, session)
}
