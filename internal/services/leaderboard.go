package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const leaderboardCacheTTL = 60 * time.Second

const (
	WindowToday = "today"
	WindowWeek  = "week"
	WindowMonth = "month"
	WindowAll   = "all"
)

type LeaderboardService struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewLeaderboardService accepts a nil cache client; queries then always hit
// the database.
func NewLeaderboardService(db *gorm.DB, cache *redis.Client) *LeaderboardService {
	return &LeaderboardService{db: db, cache: cache}
}

type LeaderboardEntry struct {
	Position    int    `json:"position"`
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Points      int    `json:"points"`
	Answers     int64  `json:"answers"`
}

// WindowStart returns the UTC start of an aggregation window, or nil for the
// all-time window. Weeks start on Monday.
func WindowStart(window string, now time.Time) (*time.Time, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch window {
	case WindowToday:
		return &today, nil
	case WindowWeek:
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return &start, nil
	case WindowMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return &start, nil
	case WindowAll, "":
		return nil, nil
	default:
		return nil, errors.New("unknown window: " + window)
	}
}

func (s *LeaderboardService) TopByPoints(ctx context.Context, window string, limit int) ([]LeaderboardEntry, error) {
	start, err := WindowStart(window, time.Now())
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("leaderboard:points:%s:%d", window, limit)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	query := s.db.Table("game_answers").
		Select("users.id AS user_id, users.username, users.display_name, COALESCE(SUM(game_answers.points), 0) AS points, COUNT(*) AS answers").
		Joins("JOIN games ON games.id = game_answers.game_id").
		Joins("JOIN users ON users.id = games.user_id").
		Group("users.id, users.username, users.display_name").
		Order("points DESC, answers DESC").
		Limit(limit)
	if start != nil {
		query = query.Where("game_answers.answered_at >= ?", *start)
	}

	var entries []LeaderboardEntry
	if err := query.Scan(&entries).Error; err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Position = i + 1
	}

	s.toCache(ctx, cacheKey, entries)
	return entries, nil
}

type StreakEntry struct {
	Position      int    `json:"position"`
	UserID        uint   `json:"user_id"`
	Username      string `json:"username"`
	DisplayName   string `json:"display_name"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
}

func (s *LeaderboardService) TopByStreak(ctx context.Context, limit int) ([]StreakEntry, error) {
	var users []models.User
	err := s.db.Where("current_streak > 0").
		Order("current_streak DESC, longest_streak DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	entries := make([]StreakEntry, len(users))
	for i, u := range users {
		entries[i] = StreakEntry{
			Position:      i + 1,
			UserID:        u.ID,
			Username:      u.Username,
			DisplayName:   u.DisplayName,
			CurrentStreak: u.CurrentStreak,
			LongestStreak: u.LongestStreak,
		}
	}
	return entries, nil
}

func (s *LeaderboardService) fromCache(ctx context.Context, key string) ([]LeaderboardEntry, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var entries []LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (s *LeaderboardService) toCache(ctx context.Context, key string, entries []LeaderboardEntry) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, leaderboardCacheTTL).Err(); err != nil {
		slog.Warn("leaderboard cache write failed", "key", key, "err", err)
	}
}
