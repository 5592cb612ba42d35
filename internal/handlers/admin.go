package handlers

import (
	"net/http"

	"github.com/btuckerc/jeopardy-sub004/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService    *services.AdminService
	questionService *services.QuestionService
	disputeService  *services.DisputeService
}

func NewAdminHandler(adminService *services.AdminService, questionService *services.QuestionService, disputeService *services.DisputeService) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		questionService: questionService,
		disputeService:  disputeService,
	}
}

// GetStats godoc
// @Summary      Dashboard counters
// @Tags         admin
// @Security     BearerAuth
// @Success      200 {object} services.AdminStats
// @Router       /api/v1/admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetQuestion returns one question with its canonical answer, for review
// screens and dispute handling.
func (h *AdminHandler) GetQuestion(c *gin.Context) {
	questionID, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id", Code: "invalid_request"})
		return
	}

	question, err := h.questionService.GetByID(questionID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *AdminHandler) CreateQuestion(c *gin.Context) {
	var input services.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	question, err := h.questionService.CreateQuestion(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *AdminHandler) UpdateQuestion(c *gin.Context) {
	questionID, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id", Code: "invalid_request"})
		return
	}

	var input services.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	question, err := h.questionService.UpdateQuestion(questionID, input)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *AdminHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id", Code: "invalid_request"})
		return
	}

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "question deleted"})
}

// ExportQuestions godoc
// @Summary      Export the question bank as JSON
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} services.ExportBundle
// @Router       /api/v1/admin/questions/export [get]
func (h *AdminHandler) ExportQuestions(c *gin.Context) {
	bundle, err := h.questionService.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to export questions"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="questions.json"`)
	c.JSON(http.StatusOK, bundle)
}

func (h *AdminHandler) ImportQuestions(c *gin.Context) {
	var bundle services.ExportBundle
	if err := c.ShouldBindJSON(&bundle); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	count, err := h.questionService.Import(bundle)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": count})
}

func (h *AdminHandler) ListDisputes(c *gin.Context) {
	limit, offset := pagination(c, 20, 100)

	disputes, total, err := h.disputeService.ListDisputes(c.Query("status"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list disputes"})
		return
	}
	c.JSON(http.StatusOK, PagedResponse{Items: disputes, Total: total, Limit: limit, Offset: offset})
}

type ResolveDisputeRequest struct {
	Accept     bool   `json:"accept"`
	Resolution string `json:"resolution" binding:"required,min=3,max=2000"`
}

// ResolveDispute godoc
// @Summary      Resolve an answer dispute
// @Description  Accepting regrades the answer and compensates the game score
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Dispute id"
// @Param        request body ResolveDisputeRequest true "Resolution"
// @Success      200 {object} models.AnswerDispute
// @Router       /api/v1/admin/disputes/{id}/resolve [post]
func (h *AdminHandler) ResolveDispute(c *gin.Context) {
	disputeID, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid dispute id", Code: "invalid_request"})
		return
	}

	var req ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	dispute, err := h.disputeService.ResolveDispute(disputeID, c.GetUint("user_id"), req.Accept, req.Resolution)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dispute)
}

func (h *AdminHandler) ListReports(c *gin.Context) {
	limit, offset := pagination(c, 20, 100)

	reports, total, err := h.disputeService.ListReports(c.Query("status"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list reports"})
		return
	}
	c.JSON(http.StatusOK, PagedResponse{Items: reports, Total: total, Limit: limit, Offset: offset})
}

type ResolveReportRequest struct {
	Dismiss bool `json:"dismiss"`
}

func (h *AdminHandler) ResolveReport(c *gin.Context) {
	reportID, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid report id", Code: "invalid_request"})
		return
	}

	var req ResolveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	report, err := h.disputeService.ResolveReport(reportID, req.Dismiss)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
