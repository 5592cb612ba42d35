package models

import "time"

// AnswerDispute is a user's claim that an answer graded incorrect should have
// been accepted. Accepting a dispute regrades the answer and compensates the
// game score.
type AnswerDispute struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	QuestionID   uint       `gorm:"not null;index" json:"question_id"`
	GameAnswerID uint       `gorm:"not null;index" json:"game_answer_id"`
	GameAnswer   GameAnswer `gorm:"foreignKey:GameAnswerID" json:"game_answer,omitempty"`

	Reason     string `gorm:"type:text;not null" json:"reason"`
	Status     string `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Resolution string `gorm:"type:text" json:"resolution,omitempty"`

	ResolvedByID *uint      `json:"resolved_by_id,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

const (
	DisputeStatusPending  = "pending"
	DisputeStatusAccepted = "accepted"
	DisputeStatusRejected = "rejected"
)
