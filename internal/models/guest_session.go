package models

import "time"

// GuestSession is an anonymous play record. It can be claimed by at most one
// authenticated user after sign-up, which copies its aggregates onto the
// account.
type GuestSession struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Score             int `gorm:"not null;default:0" json:"score"`
	QuestionsAnswered int `gorm:"not null;default:0" json:"questions_answered"`
	CorrectAnswers    int `gorm:"not null;default:0" json:"correct_answers"`

	ClaimedByUserID *uint      `gorm:"index" json:"claimed_by_user_id,omitempty"`
	ClaimedAt       *time.Time `json:"claimed_at,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `gorm:"index" json:"last_seen_at"`
}
