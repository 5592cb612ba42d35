package models

import "time"

type IssueReport struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	UserID     *uint `gorm:"index" json:"user_id,omitempty"`
	QuestionID uint  `gorm:"not null;index" json:"question_id"`

	IssueType   string `gorm:"size:30;not null" json:"issue_type"`
	Description string `gorm:"type:text;not null" json:"description"`
	Status      string `gorm:"size:20;not null;default:'open';index" json:"status"`

	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

const (
	IssueTypeTypo          = "typo"
	IssueTypeWrongAnswer   = "wrong_answer"
	IssueTypeWrongCategory = "wrong_category"
	IssueTypeBrokenMedia   = "broken_media"
	IssueTypeOther         = "other"

	ReportStatusOpen      = "open"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)
