package database

import (
	"fmt"
	"log"

	"github.com/btuckerc/jeopardy-sub004/internal/config"
	"github.com/btuckerc/jeopardy-sub004/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the services map to conflict responses.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
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
		&models.CronJobExecution{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}

// ConnectRedis returns nil when no address is configured; callers treat a nil
// client as cache-disabled.
func ConnectRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, leaderboard cache disabled")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
}
