package services

import (
	"errors"
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(userID uint, displayName string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	user.DisplayName = displayName
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type SpoilerSettings struct {
	SpoilerBlockEnabled bool       `json:"spoiler_block_enabled"`
	SpoilerBlockDate    *time.Time `json:"spoiler_block_date,omitempty"`
}

func (s *UserService) GetSettings(userID uint) (*SpoilerSettings, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &SpoilerSettings{
		SpoilerBlockEnabled: user.SpoilerBlockEnabled,
		SpoilerBlockDate:    user.SpoilerBlockDate,
	}, nil
}

func (s *UserService) UpdateSettings(userID uint, settings SpoilerSettings) (*SpoilerSettings, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	user.SpoilerBlockEnabled = settings.SpoilerBlockEnabled
	user.SpoilerBlockDate = settings.SpoilerBlockDate
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &SpoilerSettings{
		SpoilerBlockEnabled: user.SpoilerBlockEnabled,
		SpoilerBlockDate:    user.SpoilerBlockDate,
	}, nil
}

type UserStats struct {
	TotalPoints       int     `json:"total_points"`
	GamesPlayed       int64   `json:"games_played"`
	QuestionsAnswered int64   `json:"questions_answered"`
	CorrectAnswers    int64   `json:"correct_answers"`
	Accuracy          float64 `json:"accuracy"`
	CurrentStreak     int     `json:"current_streak"`
	LongestStreak     int     `json:"longest_streak"`
}

func (s *UserService) GetStats(userID uint) (*UserStats, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	stats := UserStats{
		CurrentStreak: user.CurrentStreak,
		LongestStreak: user.LongestStreak,
	}

	s.db.Model(&models.Game{}).Where("user_id = ?", userID).Count(&stats.GamesPlayed)

	row := s.db.Table("game_answers").
		Select("COALESCE(SUM(game_answers.points), 0), COUNT(*), COUNT(*) FILTER (WHERE game_answers.is_correct)").
		Joins("JOIN games ON games.id = game_answers.game_id").
		Where("games.user_id = ?", userID).
		Row()
	if err := row.Scan(&stats.TotalPoints, &stats.QuestionsAnswered, &stats.CorrectAnswers); err != nil {
		return nil, err
	}

	// Claimed guest sessions count toward the account's lifetime totals.
	var guest struct {
		Score             int
		QuestionsAnswered int64
		CorrectAnswers    int64
	}
	guestRow := s.db.Model(&models.GuestSession{}).
		Select("COALESCE(SUM(score), 0) AS score, COALESCE(SUM(questions_answered), 0) AS questions_answered, COALESCE(SUM(correct_answers), 0) AS correct_answers").
		Where("claimed_by_user_id = ?", userID).
		Row()
	if err := guestRow.Scan(&guest.Score, &guest.QuestionsAnswered, &guest.CorrectAnswers); err == nil {
		stats.TotalPoints += guest.Score
		stats.QuestionsAnswered += guest.QuestionsAnswered
		stats.CorrectAnswers += guest.CorrectAnswers
	}

	if stats.QuestionsAnswered > 0 {
		stats.Accuracy = float64(stats.CorrectAnswers) / float64(stats.QuestionsAnswered)
	}
	return &stats, nil
}
