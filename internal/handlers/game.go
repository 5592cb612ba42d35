package handlers

import (
	"errors"
	"net/http"

	"github.com/btuckerc/jeopardy-sub004/internal/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// CreateGame godoc
// @Summary      Start a practice game
// @Tags         games
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body services.GameConfig true "Game configuration"
// @Success      201 {object} models.Game
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var config services.GameConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	game, err := h.gameService.CreateGame(c.GetUint("user_id"), config)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, game)
}

func (h *GameHandler) GetGame(c *gin.Context) {
	gameID, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id", Code: "invalid_request"})
		return
	}

	game, err := h.gameService.GetGame(gameID, c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) ListGames(c *gin.Context) {
	limit, offset := pagination(c, 20, 100)

	games, total, err := h.gameService.ListGames(c.GetUint("user_id"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list games"})
		return
	}
	c.JSON(http.StatusOK, PagedResponse{Items: games, Total: total, Limit: limit, Offset: offset})
}

func (h *GameHandler) GetHistory(c *gin.Context) {
	gameID, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id", Code: "invalid_request"})
		return
	}

	answers, err := h.gameService.GetHistory(gameID, c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
		return
	}
	c.JSON(http.StatusOK, answers)
}

type SubmitAnswerRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// SubmitAnswer godoc
// @Summary      Answer a clue in a game
// @Tags         games
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Game id"
// @Param        request body SubmitAnswerRequest true "Answer"
// @Success      200 {object} services.AnswerResult
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/games/{id}/answers [post]
func (h *GameHandler) SubmitAnswer(c *gin.Context) {
	gameID, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id", Code: "invalid_request"})
		return
	}

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	result, err := h.gameService.SubmitAnswer(gameID, c.GetUint("user_id"), req.QuestionID, req.Answer)
	if err != nil {
		if errors.Is(err, services.ErrQuestionAlreadyAnswered) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "already_answered"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *GameHandler) FinishGame(c *gin.Context) {
	gameID, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id", Code: "invalid_request"})
		return
	}

	game, err := h.gameService.FinishGame(gameID, c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, game)
}
