package services

import (
	"errors"
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSessionClaimed = errors.New("guest session already claimed by another user")

type GuestService struct {
	db      *gorm.DB
	checker *AnswerChecker
}

func NewGuestService(db *gorm.DB, checker *AnswerChecker) *GuestService {
	return &GuestService{db: db, checker: checker}
}

func (s *GuestService) CreateSession() (*models.GuestSession, error) {
	session := models.GuestSession{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now(),
		LastSeenAt: time.Now(),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *GuestService) GetSession(sessionID string) (*models.GuestSession, error) {
	var session models.GuestSession
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		return nil, errors.New("guest session not found")
	}
	return &session, nil
}

// RecordAnswer grades an anonymous answer and folds it into the session
// aggregates. Guest play keeps no per-answer log; only totals survive a later
// claim.
func (s *GuestService) RecordAnswer(sessionID string, questionID uint, userAnswer string) (*AnswerResult, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.ClaimedByUserID != nil {
		return nil, errors.New("guest session already claimed")
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

	session.Score += points
	session.QuestionsAnswered++
	if correct {
		session.CorrectAnswers++
	}
	session.LastSeenAt = time.Now()
	if err := s.db.Save(session).Error; err != nil {
		return nil, err
	}

	return &AnswerResult{
		Correct:       correct,
		Points:        points,
		CorrectAnswer: question.Answer,
		GameScore:     session.Score,
	}, nil
}

// ClaimSession attaches a guest session to an account. Claiming is guarded so
// two users cannot race for the same session; re-claiming by the same user is
// a no-op.
func (s *GuestService) ClaimSession(sessionID string, userID uint) (*models.GuestSession, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.ClaimedByUserID != nil {
		if *session.ClaimedByUserID == userID {
			return session, nil
		}
		return nil, ErrSessionClaimed
	}

	now := time.Now()
	result := s.db.Model(&models.GuestSession{}).
		Where("id = ? AND claimed_by_user_id IS NULL", sessionID).
		Updates(map[string]interface{}{
			"claimed_by_user_id": userID,
			"claimed_at":         now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrSessionClaimed
	}

	session.ClaimedByUserID = &userID
	session.ClaimedAt = &now
	return session, nil
}

// DeleteStaleSessions removes unclaimed sessions idle longer than maxIdle.
func (s *GuestService) DeleteStaleSessions(maxIdle time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxIdle)
	result := s.db.Where("claimed_by_user_id IS NULL AND last_seen_at < ?", cutoff).
		Delete(&models.GuestSession{})
	return result.RowsAffected, result.Error
}
