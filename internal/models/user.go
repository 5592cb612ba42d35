package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	DisplayName  string `gorm:"size:100" json:"display_name"`
	Role         string `gorm:"size:20;not null;default:'user'" json:"role"`

	CurrentStreak   int        `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak   int        `gorm:"not null;default:0" json:"longest_streak"`
	LastChallengeAt *time.Time `json:"last_challenge_at,omitempty"`

	// Spoiler policy: when enabled, questions that aired after the cutoff
	// are never served to this user. A nil cutoff falls back to the start
	// of the current season.
	SpoilerBlockEnabled bool       `gorm:"not null;default:true" json:"spoiler_block_enabled"`
	SpoilerBlockDate    *time.Time `json:"spoiler_block_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
