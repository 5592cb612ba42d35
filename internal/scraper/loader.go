package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btuckerc/jeopardy-sub004/internal/models"

	"gorm.io/gorm"
)

// Loader upserts scraped games into the question bank. Clues are keyed by
// their J-Archive position (game, round, column, row) so re-running a scrape
// updates rather than duplicates.
type Loader struct {
	db *gorm.DB
}

func NewLoader(db *gorm.DB) *Loader {
	return &Loader{db: db}
}

func (l *Loader) UpsertGame(game *ScrapedGame) (int, error) {
	count := 0
	err := l.db.Transaction(func(tx *gorm.DB) error {
		for _, round := range game.Rounds {
			roundName, tag := roundKey(round.Name)
			if roundName == "" {
				continue
			}
			for _, category := range round.Categories {
				if category.Name == "" {
					continue
				}
				cat, err := l.getOrCreateCategory(tx, category.Name)
				if err != nil {
					return err
				}
				for _, clue := range category.Clues {
					if clue.Text == "" || clue.Answer == "" {
						continue
					}
					sourceID := fmt.Sprintf("%d_%s_%d_%d", game.GameID, tag, clue.Col, clue.Row)
					if err := l.upsertClue(tx, cat.ID, roundName, sourceID, game, clue); err != nil {
						return err
					}
					count++
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (l *Loader) upsertClue(tx *gorm.DB, categoryID uint, round, sourceID string, game *ScrapedGame, clue ScrapedClue) error {
	value := clue.Value
	if value <= 0 {
		value = 200
	}

	question := models.Question{
		CategoryID: categoryID,
		Text:       clue.Text,
		Answer:     clue.Answer,
		Value:      value,
		Round:      round,
		AirDate:    game.AirDate,
		Difficulty: difficultyForRow(clue.Row, round),
		SourceID:   &sourceID,
	}

	var existing models.Question
	err := tx.Where("source_id = ?", sourceID).First(&existing).Error
	if err == nil {
		question.ID = existing.ID
		question.CreatedAt = existing.CreatedAt
		return tx.Save(&question).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&question).Error
}

func (l *Loader) getOrCreateCategory(tx *gorm.DB, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)

	var category models.Category
	err := tx.Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category = models.Category{Name: name, KnowledgeTag: models.KnowledgeTagGeneral}
	if err := tx.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func roundKey(name string) (string, string) {
	switch name {
	case "jeopardy":
		return models.RoundJeopardy, "J"
	case "double":
		return models.RoundDoubleJeopardy, "DJ"
	case "final":
		return models.RoundFinalJeopardy, "FJ"
	default:
		return "", ""
	}
}

func difficultyForRow(row int, round string) int {
	if round == models.RoundFinalJeopardy {
		return 5
	}
	if row < 1 {
		return 1
	}
	if row > 5 {
		return 5
	}
	return row
}
