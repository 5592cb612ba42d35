package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/btuckerc/jeopardy-sub004/internal/config"
	"github.com/btuckerc/jeopardy-sub004/internal/database"
	"github.com/btuckerc/jeopardy-sub004/internal/handlers"
	"github.com/btuckerc/jeopardy-sub004/internal/middleware"
	"github.com/btuckerc/jeopardy-sub004/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system env")
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	cache := database.ConnectRedis(cfg)

	checker := services.NewAnswerChecker()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	userService := services.NewUserService(db)
	questionService := services.NewQuestionService(db)
	gameService := services.NewGameService(db, checker)
	guestService := services.NewGuestService(db, checker)
	dailyService := services.NewDailyService(db, checker)
	leaderboardService := services.NewLeaderboardService(db, cache)
	disputeService := services.NewDisputeService(db)
	adminService := services.NewAdminService(db)
	cronService := services.NewCronService(db, dailyService, gameService, guestService)

	authHandler := handlers.NewAuthHandler(authService, guestService)
	userHandler := handlers.NewUserHandler(userService)
	questionHandler := handlers.NewQuestionHandler(questionService, userService)
	gameHandler := handlers.NewGameHandler(gameService)
	guestHandler := handlers.NewGuestHandler(guestService)
	dailyHandler := handlers.NewDailyHandler(dailyService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	disputeHandler := handlers.NewDisputeHandler(disputeService)
	adminHandler := handlers.NewAdminHandler(adminService, questionService, disputeService)
	cronHandler := handlers.NewCronHandler(cronService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Cron-Secret"},
		AllowCredentials: true,
	}))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		me := api.Group("/me")
		me.Use(middleware.JWTAuth(authService))
		{
			me.GET("", userHandler.GetMe)
			me.PUT("", userHandler.UpdateMe)
			me.GET("/settings", userHandler.GetSettings)
			me.PUT("/settings", userHandler.UpdateSettings)
			me.GET("/stats", userHandler.GetStats)
		}

		play := api.Group("")
		play.Use(middleware.OptionalAuth(authService))
		{
			play.GET("/questions/random", questionHandler.RandomQuestion)
			play.GET("/categories", questionHandler.ListCategories)
			play.GET("/daily", dailyHandler.GetToday)
			play.GET("/daily/leaderboard", dailyHandler.Leaderboard)
			play.GET("/leaderboard", leaderboardHandler.TopByPoints)
			play.GET("/leaderboard/streaks", leaderboardHandler.TopByStreak)
			play.POST("/reports", disputeHandler.CreateReport)
		}

		guests := api.Group("/guest-sessions")
		{
			guests.POST("", guestHandler.CreateSession)
			guests.GET("/:id", guestHandler.GetSession)
			guests.POST("/:id/answers", guestHandler.SubmitAnswer)
			guests.POST("/:id/claim", middleware.JWTAuth(authService), guestHandler.ClaimSession)
		}

		games := api.Group("/games")
		games.Use(middleware.JWTAuth(authService))
		{
			games.POST("", gameHandler.CreateGame)
			games.GET("", gameHandler.ListGames)
			games.GET("/:id", gameHandler.GetGame)
			games.GET("/:id/history", gameHandler.GetHistory)
			games.POST("/:id/answers", gameHandler.SubmitAnswer)
			games.POST("/:id/finish", gameHandler.FinishGame)
		}

		daily := api.Group("/daily")
		daily.Use(middleware.JWTAuth(authService))
		{
			daily.POST("/answers", dailyHandler.SubmitAnswer)
		}

		disputes := api.Group("/disputes")
		disputes.Use(middleware.JWTAuth(authService))
		{
			disputes.POST("", disputeHandler.CreateDispute)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(authService), middleware.AdminOnly())
		{
			admin.GET("/stats", adminHandler.GetStats)
			admin.GET("/questions/:id", adminHandler.GetQuestion)
			admin.POST("/questions", adminHandler.CreateQuestion)
			admin.PUT("/questions/:id", adminHandler.UpdateQuestion)
			admin.DELETE("/questions/:id", adminHandler.DeleteQuestion)
			admin.GET("/questions/export", adminHandler.ExportQuestions)
			admin.POST("/questions/import", adminHandler.ImportQuestions)
			admin.GET("/disputes", adminHandler.ListDisputes)
			admin.POST("/disputes/:id/resolve", adminHandler.ResolveDispute)
			admin.GET("/reports", adminHandler.ListReports)
			admin.POST("/reports/:id/resolve", adminHandler.ResolveReport)
			admin.GET("/cron-executions", cronHandler.ListExecutions)
		}

		cron := api.Group("/cron")
		cron.Use(middleware.CronAuth(cfg.CronSecret))
		{
			cron.POST("/daily-challenge", cronHandler.RunDailyChallenge)
			cron.POST("/cleanup", cronHandler.RunCleanup)
		}
	}

	slog.Info("server listening", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
