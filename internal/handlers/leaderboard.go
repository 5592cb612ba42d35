package handlers

import (
	"net/http"

	"github.com/btuckerc/jeopardy-sub004/internal/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// TopByPoints godoc
// @Summary      Points leaderboard
// @Tags         leaderboard
// @Produce      json
// @Param        window query string false "today, week, month or all" default(all)
// @Param        limit query int false "Entries to return" default(25)
// @Success      200 {array} services.LeaderboardEntry
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/leaderboard [get]
func (h *LeaderboardHandler) TopByPoints(c *gin.Context) {
	limit, _ := pagination(c, 25, 100)

	entries, err := h.leaderboardService.TopByPoints(c.Request.Context(), c.DefaultQuery("window", services.WindowAll), limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *LeaderboardHandler) TopByStreak(c *gin.Context) {
	limit, _ := pagination(c, 25, 100)

	entries, err := h.leaderboardService.TopByStreak(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
