package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrQuestionAlreadyAnswered = errors.New("question already answered in this game")

type GameService struct {
	db      *gorm.DB
	checker *AnswerChecker
}

func NewGameService(db *gorm.DB, checker *AnswerChecker) *GameService {
	return &GameService{db: db, checker: checker}
}

type GameConfig struct {
	Rounds        []string `json:"rounds,omitempty"`
	CategoryIDs   []uint   `json:"category_ids,omitempty"`
	MinValue      int      `json:"min_value,omitempty"`
	MaxValue      int      `json:"max_value,omitempty"`
	QuestionCount int      `json:"question_count,omitempty"`
}

func (s *GameService) CreateGame(userID uint, config GameConfig) (*models.Game, error) {
	for _, round := range config.Rounds {
		switch round {
		case models.RoundJeopardy, models.RoundDoubleJeopardy, models.RoundFinalJeopardy:
		default:
			return nil, errors.New("unknown round in config: " + round)
		}
	}

	raw, err := json.Marshal(config)
	if err != nil {
		return nil, err
	}

	game := models.Game{
		UserID:    userID,
		Config:    datatypes.JSON(raw),
		Status:    models.GameStatusActive,
		StartedAt: time.Now(),
	}
	if err := s.db.Create(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *GameService) GetGame(gameID, userID uint) (*models.Game, error) {
	var game models.Game
	if err := s.db.Where("id = ? AND user_id = ?", gameID, userID).First(&game).Error; err != nil {
		return nil, errors.New("game not found")
	}
	return &game, nil
}

func (s *GameService) ListGames(userID uint, limit, offset int) ([]models.Game, int64, error) {
	var total int64
	if err := s.db.Model(&models.Game{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var games []models.Game
	err := s.db.Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).Offset(offset).
		Find(&games).Error
	if err != nil {
		return nil, 0, err
	}
	return games, total, nil
}

func (s *GameService) GetHistory(gameID, userID uint) ([]models.GameAnswer, error) {
	if _, err := s.GetGame(gameID, userID); err != nil {
		return nil, err
	}

	var answers []models.GameAnswer
	err := s.db.Where("game_id = ?", gameID).
		Preload("Question").
		Preload("Question.Category").
		Order("answered_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

type AnswerResult struct {
	Correct       bool   `json:"correct"`
	Points        int    `json:"points"`
	CorrectAnswer string `json:"correct_answer"`
	GameScore     int    `json:"game_score"`
}

// SubmitAnswer grades one answer against the clue, logs it and adjusts the
// game score: correct answers add the clue value, wrong ones subtract it.
func (s *GameService) SubmitAnswer(gameID, userID, questionID uint, userAnswer string) (*AnswerResult, error) {
	game, err := s.GetGame(gameID, userID)
	if err != nil {
		return nil, err
	}
	if game.Status != models.GameStatusActive {
		return nil, errors.New("game is not active")
	}

	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, errors.New("question not found")
	}

	correct := s.checker.Check(userAnswer, question.Answer)
	points := question.Value
	if !correct {
		points = -question.Value
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		answer := models.GameAnswer{
			GameID:     gameID,
			QuestionID: questionID,
			UserAnswer: userAnswer,
			IsCorrect:  correct,
			Points:     points,
			AnsweredAt: time.Now(),
		}
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}

		game.Score += points
		game.QuestionsAnswered++
		if correct {
			game.CorrectAnswers++
		}
		return tx.Save(game).Error
	})
	if err != nil {
		// The (game, question) unique index is the authority on repeats, so
		// concurrent submits cannot both score.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrQuestionAlreadyAnswered
		}
		return nil, err
	}

	return &AnswerResult{
		Correct:       correct,
		Points:        points,
		CorrectAnswer: question.Answer,
		GameScore:     game.Score,
	}, nil
}

func (s *GameService) FinishGame(gameID, userID uint) (*models.Game, error) {
	game, err := s.GetGame(gameID, userID)
	if err != nil {
		return nil, err
	}
	if game.Status != models.GameStatusActive {
		return nil, errors.New("game is not active")
	}

	now := time.Now()
	game.Status = models.GameStatusCompleted
	game.CompletedAt = &now
	if err := s.db.Save(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

// AbandonStaleGames marks games that have been active longer than maxAge as
// abandoned. Used by the cleanup job.
func (s *GameService) AbandonStaleGames(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	result := s.db.Model(&models.Game{}).
		Where("status = ? AND started_at < ?", models.GameStatusActive, cutoff).
		Update("status", models.GameStatusAbandoned)
	return result.RowsAffected, result.Error
}
