package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/services"

	"github.com/gin-gonic/gin"
)

type DailyHandler struct {
	dailyService *services.DailyService
}

func NewDailyHandler(dailyService *services.DailyService) *DailyHandler {
	return &DailyHandler{dailyService: dailyService}
}

type DailyChallengeView struct {
	ChallengeDate string       `json:"challenge_date"`
	Question      QuestionView `json:"question"`
	Completed     bool         `json:"completed"`

	// Set only after the caller has completed the challenge.
	CorrectAnswer string `json:"correct_answer,omitempty"`
	WasCorrect    *bool  `json:"was_correct,omitempty"`
}

// GetToday godoc
// @Summary      Today's challenge
// @Description  The rotating daily clue; the answer stays hidden until the caller has played it
// @Tags         daily
// @Produce      json
// @Success      200 {object} DailyChallengeView
// @Router       /api/v1/daily [get]
func (h *DailyHandler) GetToday(c *gin.Context) {
	challenge, err := h.dailyService.GetOrCreate(time.Now())
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
		return
	}

	view := DailyChallengeView{
		ChallengeDate: challenge.ChallengeDate.Format("2006-01-02"),
		Question:      questionView(&challenge.Question),
	}

	if userID := c.GetUint("user_id"); userID != 0 {
		if completion, err := h.dailyService.GetCompletion(challenge.ID, userID); err == nil {
			view.Completed = true
			view.CorrectAnswer = challenge.Question.Answer
			view.WasCorrect = &completion.IsCorrect
		}
	}

	c.JSON(http.StatusOK, view)
}

type DailyAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// SubmitAnswer godoc
// @Summary      Answer today's challenge
// @Tags         daily
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body DailyAnswerRequest true "Answer"
// @Success      200 {object} services.DailyResult
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/daily/answers [post]
func (h *DailyHandler) SubmitAnswer(c *gin.Context) {
	var req DailyAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	result, err := h.dailyService.SubmitAnswer(c.GetUint("user_id"), req.Answer, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrChallengeCompleted) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "already_completed"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *DailyHandler) Leaderboard(c *gin.Context) {
	limit, _ := pagination(c, 50, 200)

	entries, err := h.dailyService.Leaderboard(time.Now(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
