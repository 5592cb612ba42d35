package models

import "time"

// CronJobExecution is an audit row written for every scheduled-job run,
// including failed ones.
type CronJobExecution struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	JobName    string     `gorm:"size:50;not null;index" json:"job_name"`
	Status     string     `gorm:"size:20;not null" json:"status"`
	Detail     string     `gorm:"type:text" json:"detail,omitempty"`
	StartedAt  time.Time  `gorm:"index" json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

const (
	CronStatusRunning   = "running"
	CronStatusSucceeded = "succeeded"
	CronStatusFailed    = "failed"
)
