package services

import (
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/models"

	"gorm.io/gorm"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

type AdminStats struct {
	Users            int64            `json:"users"`
	RecentSignups    int64            `json:"recent_signups"`
	Questions        int64            `json:"questions"`
	Categories       int64            `json:"categories"`
	Games            int64            `json:"games"`
	GuestSessions    int64            `json:"guest_sessions"`
	DisputesByStatus map[string]int64 `json:"disputes_by_status"`
	OpenReports      int64            `json:"open_reports"`
}

func (s *AdminService) GetStats() (*AdminStats, error) {
	stats := AdminStats{DisputesByStatus: map[string]int64{}}

	s.db.Model(&models.User{}).Count(&stats.Users)
	s.db.Model(&models.User{}).
		Where("created_at >= ?", time.Now().AddDate(0, 0, -7)).
		Count(&stats.RecentSignups)
	s.db.Model(&models.Question{}).Count(&stats.Questions)
	s.db.Model(&models.Category{}).Count(&stats.Categories)
	s.db.Model(&models.Game{}).Count(&stats.Games)
	s.db.Model(&models.GuestSession{}).Count(&stats.GuestSessions)
	s.db.Model(&models.IssueReport{}).
		Where("status = ?", models.ReportStatusOpen).
		Count(&stats.OpenReports)

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := s.db.Model(&models.AnswerDispute{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	for _, c := range counts {
		stats.DisputesByStatus[c.Status] = c.Count
	}

	return &stats, nil
}
