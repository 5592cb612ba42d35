package handlers

import (
	"net/http"

	"github.com/btuckerc/jeopardy-sub004/internal/services"

	"github.com/gin-gonic/gin"
)

type CronHandler struct {
	cronService *services.CronService
}

func NewCronHandler(cronService *services.CronService) *CronHandler {
	return &CronHandler{cronService: cronService}
}

// RunDailyChallenge godoc
// @Summary      Generate today's challenge
// @Description  Scheduled-job trigger; requires X-Cron-Secret
// @Tags         cron
// @Produce      json
// @Success      200 {object} models.CronJobExecution
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/cron/daily-challenge [post]
func (h *CronHandler) RunDailyChallenge(c *gin.Context) {
	execution, err := h.cronService.RunDailyChallenge()
	if err != nil {
		// The execution row, when present, already records the failure.
		if execution != nil {
			c.JSON(http.StatusInternalServerError, execution)
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, execution)
}

func (h *CronHandler) RunCleanup(c *gin.Context) {
	execution, err := h.cronService.RunCleanup()
	if err != nil {
		if execution != nil {
			c.JSON(http.StatusInternalServerError, execution)
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, execution)
}

func (h *CronHandler) ListExecutions(c *gin.Context) {
	limit, offset := pagination(c, 50, 200)

	executions, total, err := h.cronService.ListExecutions(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list executions"})
		return
	}
	c.JSON(http.StatusOK, PagedResponse{Items: executions, Total: total, Limit: limit, Offset: offset})
}
