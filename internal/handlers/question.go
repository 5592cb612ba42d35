package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/models"
	"github.com/btuckerc/jeopardy-sub004/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	userService     *services.UserService
}

func NewQuestionHandler(questionService *services.QuestionService, userService *services.UserService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, userService: userService}
}

// QuestionView hides the canonical answer from play responses.
type QuestionView struct {
	ID           uint       `json:"id"`
	CategoryID   uint       `json:"category_id"`
	CategoryName string     `json:"category_name"`
	Text         string     `json:"text"`
	Value        int        `json:"value"`
	Round        string     `json:"round"`
	AirDate      *time.Time `json:"air_date,omitempty"`
	Difficulty   int        `json:"difficulty"`
}

func questionView(q *models.Question) QuestionView {
	return QuestionView{
		ID:           q.ID,
		CategoryID:   q.CategoryID,
		CategoryName: q.Category.Name,
		Text:         q.Text,
		Value:        q.Value,
		Round:        q.Round,
		AirDate:      q.AirDate,
		Difficulty:   q.Difficulty,
	}
}

// RandomQuestion godoc
// @Summary      Random clue
// @Description  One clue matching the filters; signed-in users get their spoiler policy applied
// @Tags         questions
// @Produce      json
// @Param        category_id query int false "Category id"
// @Param        round query string false "jeopardy, double or final"
// @Param        min_value query int false "Minimum clue value"
// @Param        max_value query int false "Maximum clue value"
// @Param        difficulty query int false "Difficulty 1-5"
// @Param        before query string false "Only clues that aired before this date (YYYY-MM-DD)"
// @Success      200 {object} QuestionView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/questions/random [get]
func (h *QuestionHandler) RandomQuestion(c *gin.Context) {
	var filter services.QuestionFilter
	if v, err := strconv.ParseUint(c.Query("category_id"), 10, 64); err == nil {
		filter.CategoryID = uint(v)
	}
	filter.Round = c.Query("round")
	filter.MinValue, _ = strconv.Atoi(c.Query("min_value"))
	filter.MaxValue, _ = strconv.Atoi(c.Query("max_value"))
	filter.Difficulty, _ = strconv.Atoi(c.Query("difficulty"))

	var cutoff *time.Time
	if userID := c.GetUint("user_id"); userID != 0 {
		if user, err := h.userService.GetByID(userID); err == nil {
			cutoff = services.SpoilerCutoff(user, time.Now())
		}
	}

	// An explicit air-date ceiling never loosens the account policy; the
	// stricter of the two wins.
	var requested *time.Time
	if v := c.Query("before"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "before must be YYYY-MM-DD", Code: "invalid_request"})
			return
		}
		requested = &t
	}
	cutoff = services.CombineCutoffs(cutoff, requested)

	question, err := h.questionService.RandomQuestion(filter, cutoff)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
		return
	}
	c.JSON(http.StatusOK, questionView(question))
}

// ListCategories godoc
// @Summary      Categories with question counts
// @Tags         questions
// @Produce      json
// @Param        search query string false "Name filter"
// @Success      200 {object} PagedResponse
// @Router       /api/v1/categories [get]
func (h *QuestionHandler) ListCategories(c *gin.Context) {
	limit, offset := pagination(c, 50, 200)

	categories, total, err := h.questionService.ListCategories(c.Query("search"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, PagedResponse{Items: categories, Total: total, Limit: limit, Offset: offset})
}
