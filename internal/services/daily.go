package services

import (
	"errors"
	"math/rand"
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/models"

	"gorm.io/gorm"
)

var ErrChallengeCompleted = errors.New("daily challenge already completed")

// dailySpoilerWindow keeps the rotating challenge clear of recent episodes
// for everyone, independent of per-user settings.
const dailySpoilerWindow = 365 * 24 * time.Hour

type DailyService struct {
	db      *gorm.DB
	checker *AnswerChecker
}

func NewDailyService(db *gorm.DB, checker *AnswerChecker) *DailyService {
	return &DailyService{db: db, checker: checker}
}

func challengeDate(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour)
}

// pickIndex chooses a deterministic offset into n eligible questions for a
// given date, so concurrent get-or-create calls and the cron job agree.
func pickIndex(date time.Time, n int64) int64 {
	if n <= 0 {
		return 0
	}
	seed := date.UTC().Truncate(24 * time.Hour).Unix()
	return rand.New(rand.NewSource(seed)).Int63n(n)
}

// GetOrCreate returns the challenge for the given day, creating it on first
// access.
func (s *DailyService) GetOrCreate(now time.Time) (*models.DailyChallenge, error) {
	date := challengeDate(now)

	var challenge models.DailyChallenge
	err := s.db.Where("challenge_date = ?", date).
		Preload("Question").
		Preload("Question.Category").
		First(&challenge).Error
	if err == nil {
		return &challenge, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cutoff := now.Add(-dailySpoilerWindow)
	eligible := s.db.Model(&models.Question{}).
		Where("air_date IS NULL OR air_date < ?", cutoff)

	var count int64
	if err := eligible.Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.New("no eligible questions for a daily challenge")
	}

	var question models.Question
	err = s.db.Model(&models.Question{}).
		Where("air_date IS NULL OR air_date < ?", cutoff).
		Order("id ASC").
		Offset(int(pickIndex(date, count))).
		First(&question).Error
	if err != nil {
		return nil, err
	}

	challenge = models.DailyChallenge{
		ChallengeDate: date,
		QuestionID:    question.ID,
		CreatedAt:     time.Now(),
	}
	if err := s.db.Create(&challenge).Error; err != nil {
		// Lost a create race: the unique date index means the winner's row
		// is the challenge.
		var winner models.DailyChallenge
		if ferr := s.db.Where("challenge_date = ?", date).
			Preload("Question").
			Preload("Question.Category").
			First(&winner).Error; ferr == nil {
			return &winner, nil
		}
		return nil, err
	}
	challenge.Question = question
	return &challenge, nil
}

func (s *DailyService) GetCompletion(challengeID, userID uint) (*models.UserDailyChallenge, error) {
	var completion models.UserDailyChallenge
	err := s.db.Where("challenge_id = ? AND user_id = ?", challengeID, userID).
		First(&completion).Error
	if err != nil {
		return nil, err
	}
	return &completion, nil
}

type DailyResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
}

// SubmitAnswer grades the user's single attempt at today's challenge and
// advances the daily streak.
func (s *DailyService) SubmitAnswer(userID uint, userAnswer string, now time.Time) (*DailyResult, error) {
	challenge, err := s.GetOrCreate(now)
	if err != nil {
		return nil, err
	}

	if _, err := s.GetCompletion(challenge.ID, userID); err == nil {
		return nil, ErrChallengeCompleted
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	correct := s.checker.Check(userAnswer, challenge.Question.Answer)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		completion := models.UserDailyChallenge{
			UserID:      userID,
			ChallengeID: challenge.ID,
			AnswerGiven: userAnswer,
			IsCorrect:   correct,
			CompletedAt: now,
		}
		if err := tx.Create(&completion).Error; err != nil {
			return err
		}

		user.CurrentStreak = advanceStreak(user.LastChallengeAt, now, user.CurrentStreak)
		if user.CurrentStreak > user.LongestStreak {
			user.LongestStreak = user.CurrentStreak
		}
		t := now
		user.LastChallengeAt = &t
		return tx.Save(&user).Error
	})
	if err != nil {
		// A concurrent submit can slip past the completion lookup; the
		// (user, challenge) unique index still reports it as a repeat.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrChallengeCompleted
		}
		return nil, err
	}

	return &DailyResult{
		Correct:       correct,
		CorrectAnswer: challenge.Question.Answer,
		CurrentStreak: user.CurrentStreak,
		LongestStreak: user.LongestStreak,
	}, nil
}

// advanceStreak implements consecutive-UTC-day streaks: completing the
// challenge the day after the last completion extends the streak, the same
// day keeps it, anything else resets to 1.
func advanceStreak(last *time.Time, now time.Time, current int) int {
	if last == nil || current <= 0 {
		return 1
	}

	lastDay := challengeDate(*last)
	today := challengeDate(now)

	switch today.Sub(lastDay) {
	case 0:
		return current
	case 24 * time.Hour:
		return current + 1
	default:
		return 1
	}
}

type DailyLeaderboardEntry struct {
	Position    int       `json:"position"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	IsCorrect   bool      `json:"is_correct"`
	CompletedAt time.Time `json:"completed_at"`
}

// Leaderboard lists today's completions, correct answers first, earliest
// first within each group.
func (s *DailyService) Leaderboard(now time.Time, limit int) ([]DailyLeaderboardEntry, error) {
	date := challengeDate(now)

	var challenge models.DailyChallenge
	if err := s.db.Where("challenge_date = ?", date).First(&challenge).Error; err != nil {
		return []DailyLeaderboardEntry{}, nil
	}

	var entries []DailyLeaderboardEntry
	err := s.db.Table("user_daily_challenges").
		Select("users.username, users.display_name, user_daily_challenges.is_correct, user_daily_challenges.completed_at").
		Joins("JOIN users ON users.id = user_daily_challenges.user_id").
		Where("user_daily_challenges.challenge_id = ?", challenge.ID).
		Order("user_daily_challenges.is_correct DESC, user_daily_challenges.completed_at ASC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries, nil
}
