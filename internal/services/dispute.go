package services

import (
	"errors"
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/models"

	"gorm.io/gorm"
)

type DisputeService struct {
	db *gorm.DB
}

func NewDisputeService(db *gorm.DB) *DisputeService {
	return &DisputeService{db: db}
}

func (s *DisputeService) CreateDispute(userID, gameAnswerID uint, reason string) (*models.AnswerDispute, error) {
	var answer models.GameAnswer
	err := s.db.Joins("JOIN games ON games.id = game_answers.game_id").
		Where("game_answers.id = ? AND games.user_id = ?", gameAnswerID, userID).
		First(&answer).Error
	if err != nil {
		return nil, errors.New("answer not found")
	}
	if answer.IsCorrect {
		return nil, errors.New("answer was already graded correct")
	}

	var existing models.AnswerDispute
	if err := s.db.Where("game_answer_id = ? AND status = ?", gameAnswerID, models.DisputeStatusPending).
		First(&existing).Error; err == nil {
		return nil, errors.New("answer already has a pending dispute")
	}

	dispute := models.AnswerDispute{
		UserID:       userID,
		QuestionID:   answer.QuestionID,
		GameAnswerID: gameAnswerID,
		Reason:       reason,
		Status:       models.DisputeStatusPending,
		CreatedAt:    time.Now(),
	}
	if err := s.db.Create(&dispute).Error; err != nil {
		return nil, err
	}
	return &dispute, nil
}

func (s *DisputeService) ListDisputes(status string, limit, offset int) ([]models.AnswerDispute, int64, error) {
	query := s.db.Model(&models.AnswerDispute{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var disputes []models.AnswerDispute
	err := query.
		Preload("GameAnswer").
		Preload("GameAnswer.Question").
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&disputes).Error
	if err != nil {
		return nil, 0, err
	}
	return disputes, total, nil
}

// ResolveDispute closes a pending dispute. Accepting regrades the disputed
// answer as correct and compensates the game score and counters; the point
// swing is twice the clue value since the wrong answer had been penalized.
func (s *DisputeService) ResolveDispute(disputeID, adminID uint, accept bool, resolution string) (*models.AnswerDispute, error) {
	var dispute models.AnswerDispute
	if err := s.db.Preload("GameAnswer").First(&dispute, disputeID).Error; err != nil {
		return nil, errors.New("dispute not found")
	}
	if dispute.Status != models.DisputeStatusPending {
		return nil, errors.New("dispute already resolved")
	}

	now := time.Now()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		dispute.Resolution = resolution
		dispute.ResolvedByID = &adminID
		dispute.ResolvedAt = &now

		if !accept {
			dispute.Status = models.DisputeStatusRejected
			return tx.Save(&dispute).Error
		}

		dispute.Status = models.DisputeStatusAccepted

		answer := dispute.GameAnswer
		if !answer.IsCorrect {
			var question models.Question
			if err := tx.First(&question, answer.QuestionID).Error; err != nil {
				return err
			}

			oldPoints := answer.Points
			answer.IsCorrect = true
			answer.Points = question.Value
			if err := tx.Save(&answer).Error; err != nil {
				return err
			}

			delta := answer.Points - oldPoints
			if err := tx.Model(&models.Game{}).Where("id = ?", answer.GameID).
				Updates(map[string]interface{}{
					"score":           gorm.Expr("score + ?", delta),
					"correct_answers": gorm.Expr("correct_answers + 1"),
				}).Error; err != nil {
				return err
			}
		}

		return tx.Save(&dispute).Error
	})
	if err != nil {
		return nil, err
	}
	return &dispute, nil
}

func (s *DisputeService) CreateReport(userID *uint, questionID uint, issueType, description string) (*models.IssueReport, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, errors.New("question not found")
	}

	switch issueType {
	case models.IssueTypeTypo, models.IssueTypeWrongAnswer, models.IssueTypeWrongCategory,
		models.IssueTypeBrokenMedia, models.IssueTypeOther:
	default:
		return nil, errors.New("unknown issue type: " + issueType)
	}

	report := models.IssueReport{
		UserID:      userID,
		QuestionID:  questionID,
		IssueType:   issueType,
		Description: description,
		Status:      models.ReportStatusOpen,
		CreatedAt:   time.Now(),
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *DisputeService) ListReports(status string, limit, offset int) ([]models.IssueReport, int64, error) {
	query := s.db.Model(&models.IssueReport{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []models.IssueReport
	err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func (s *DisputeService) ResolveReport(reportID uint, dismiss bool) (*models.IssueReport, error) {
	var report models.IssueReport
	if err := s.db.First(&report, reportID).Error; err != nil {
		return nil, errors.New("report not found")
	}
	if report.Status != models.ReportStatusOpen {
		return nil, errors.New("report already resolved")
	}

	now := time.Now()
	report.Status = models.ReportStatusResolved
	if dismiss {
		report.Status = models.ReportStatusDismissed
	}
	report.ResolvedAt = &now
	if err := s.db.Save(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
