package services

import (
	"testing"

	"github.com/btuckerc/jeopardy-sub004/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the same schema and error
// translation the server runs with.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Question{},
		&models.Game{},
		&models.GameAnswer{},
		&models.GuestSession{},
		&models.DailyChallenge{},
		&models.UserDailyChallenge{},
		&models.AnswerDispute{},
		&models.IssueReport{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "irrelevant",
		Role:         models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return &user
}

func seedQuestion(t *testing.T, db *gorm.DB, answer string, value int) *models.Question {
	t.Helper()

	category := models.Category{Name: "CATEGORY FOR " + answer, KnowledgeTag: models.KnowledgeTagGeneral}
	if err := db.Where(models.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	question := models.Question{
		CategoryID: category.ID,
		Text:       "clue pointing at " + answer,
		Answer:     answer,
		Value:      value,
		Round:      models.RoundJeopardy,
		Difficulty: 1,
	}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	return &question
}
