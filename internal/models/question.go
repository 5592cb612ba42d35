package models

import "time"

type Question struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Text   string `gorm:"type:text;not null" json:"text"`
	Answer string `gorm:"type:text;not null" json:"answer"`
	Value  int    `gorm:"not null;default:200" json:"value"`
	Round  string `gorm:"size:20;not null;default:'jeopardy';index" json:"round"`

	AirDate    *time.Time `gorm:"index" json:"air_date,omitempty"`
	Difficulty int        `gorm:"not null;default:1" json:"difficulty"`

	// SourceID identifies the clue on J-Archive (game_round_col_row) so the
	// loader can upsert the same clue idempotently. Nil for hand-written
	// questions; the unique index only constrains non-null values.
	SourceID *string `gorm:"size:50;uniqueIndex" json:"source_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	RoundJeopardy       = "jeopardy"
	RoundDoubleJeopardy = "double"
	RoundFinalJeopardy  = "final"
)
