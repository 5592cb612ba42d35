package handlers

import (
	"net/http"

	"github.com/btuckerc/jeopardy-sub004/internal/services"

	"github.com/gin-gonic/gin"
)

type DisputeHandler struct {
	disputeService *services.DisputeService
}

func NewDisputeHandler(disputeService *services.DisputeService) *DisputeHandler {
	return &DisputeHandler{disputeService: disputeService}
}

type CreateDisputeRequest struct {
	GameAnswerID uint   `json:"game_answer_id" binding:"required"`
	Reason       string `json:"reason" binding:"required,min=10,max=2000"`
}

// CreateDispute godoc
// @Summary      Dispute a graded answer
// @Tags         disputes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body CreateDisputeRequest true "Dispute"
// @Success      201 {object} models.AnswerDispute
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/disputes [post]
func (h *DisputeHandler) CreateDispute(c *gin.Context) {
	var req CreateDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	dispute, err := h.disputeService.CreateDispute(c.GetUint("user_id"), req.GameAnswerID, req.Reason)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dispute)
}

type CreateReportRequest struct {
	QuestionID  uint   `json:"question_id" binding:"required"`
	IssueType   string `json:"issue_type" binding:"required"`
	Description string `json:"description" binding:"required,min=5,max=2000"`
}

// CreateReport godoc
// @Summary      Report a question issue
// @Description  Open to guests; the reporter is recorded when signed in
// @Tags         disputes
// @Accept       json
// @Produce      json
// @Param        request body CreateReportRequest true "Report"
// @Success      201 {object} models.IssueReport
// @Router       /api/v1/reports [post]
func (h *DisputeHandler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	var userID *uint
	if id := c.GetUint("user_id"); id != 0 {
		userID = &id
	}

	report, err := h.disputeService.CreateReport(userID, req.QuestionID, req.IssueType, req.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, report)
}
