package models

import (
	"time"

	"gorm.io/datatypes"
)

type Game struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	// Config holds the play setup the user chose (rounds, categories,
	// value range, question count) as a JSON blob.
	Config datatypes.JSON `json:"config"`

	Status            string `gorm:"size:20;not null;default:'active';index" json:"status"`
	Score             int    `gorm:"not null;default:0" json:"score"`
	QuestionsAnswered int    `gorm:"not null;default:0" json:"questions_answered"`
	CorrectAnswers    int    `gorm:"not null;default:0" json:"correct_answers"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

const (
	GameStatusActive    = "active"
	GameStatusCompleted = "completed"
	GameStatusAbandoned = "abandoned"
)

type GameAnswer struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	GameID     uint     `gorm:"not null;uniqueIndex:idx_game_question;index" json:"game_id"`
	QuestionID uint     `gorm:"not null;uniqueIndex:idx_game_question" json:"question_id"`
	Question   Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`

	UserAnswer string    `gorm:"type:text" json:"user_answer"`
	IsCorrect  bool      `gorm:"not null" json:"is_correct"`
	Points     int       `gorm:"not null;default:0" json:"points"`
	AnsweredAt time.Time `gorm:"index" json:"answered_at"`
}
