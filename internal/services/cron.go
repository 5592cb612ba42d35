package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/models"

	"gorm.io/gorm"
)

const (
	JobDailyChallenge = "daily_challenge"
	JobCleanup        = "cleanup"

	guestSessionMaxIdle = 30 * 24 * time.Hour
	activeGameMaxAge    = 24 * time.Hour
)

type CronService struct {
	db    *gorm.DB
	daily *DailyService
	games *GameService
	guest *GuestService
}

func NewCronService(db *gorm.DB, daily *DailyService, games *GameService, guest *GuestService) *CronService {
	return &CronService{db: db, daily: daily, games: games, guest: guest}
}

// run executes a named job and records exactly one CronJobExecution row for
// it, failed runs included.
func (s *CronService) run(name string, job func() (string, error)) (*models.CronJobExecution, error) {
	execution := models.CronJobExecution{
		JobName:   name,
		Status:    models.CronStatusRunning,
		StartedAt: time.Now(),
	}
	if err := s.db.Create(&execution).Error; err != nil {
		return nil, err
	}

	detail, jobErr := job()

	now := time.Now()
	execution.FinishedAt = &now
	execution.Detail = detail
	if jobErr != nil {
		execution.Status = models.CronStatusFailed
		execution.Detail = jobErr.Error()
		slog.Error("cron job failed", "job", name, "err", jobErr)
	} else {
		execution.Status = models.CronStatusSucceeded
		slog.Info("cron job finished", "job", name, "detail", detail)
	}

	if err := s.db.Save(&execution).Error; err != nil {
		return nil, err
	}
	return &execution, jobErr
}

// RunDailyChallenge makes sure today's challenge row exists.
func (s *CronService) RunDailyChallenge() (*models.CronJobExecution, error) {
	return s.run(JobDailyChallenge, func() (string, error) {
		challenge, err := s.daily.GetOrCreate(time.Now())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("challenge %d for %s (question %d)",
			challenge.ID, challenge.ChallengeDate.Format("2006-01-02"), challenge.QuestionID), nil
	})
}

// RunCleanup sweeps unclaimed guest sessions and stale active games.
func (s *CronService) RunCleanup() (*models.CronJobExecution, error) {
	return s.run(JobCleanup, func() (string, error) {
		guests, err := s.guest.DeleteStaleSessions(guestSessionMaxIdle)
		if err != nil {
			return "", err
		}
		games, err := s.games.AbandonStaleGames(activeGameMaxAge)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("deleted %d guest sessions, abandoned %d games", guests, games), nil
	})
}

func (s *CronService) ListExecutions(limit, offset int) ([]models.CronJobExecution, int64, error) {
	var total int64
	if err := s.db.Model(&models.CronJobExecution{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var executions []models.CronJobExecution
	err := s.db.Order("started_at DESC").Limit(limit).Offset(offset).Find(&executions).Error
	if err != nil {
		return nil, 0, err
	}
	return executions, total, nil
}
