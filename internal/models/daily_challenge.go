package models

import "time"

type DailyChallenge struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ChallengeDate time.Time `gorm:"uniqueIndex;not null" json:"challenge_date"`
	QuestionID    uint      `gorm:"not null" json:"question_id"`
	Question      Question  `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type UserDailyChallenge struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_challenge" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ChallengeID uint      `gorm:"not null;uniqueIndex:idx_user_challenge;index" json:"challenge_id"`
	AnswerGiven string    `gorm:"type:text" json:"answer_given"`
	IsCorrect   bool      `gorm:"not null" json:"is_correct"`
	CompletedAt time.Time `gorm:"index" json:"completed_at"`
}
