package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/interntrack/api/internal/auth"
	"github.com/interntrack/api/internal/config"
	"github.com/interntrack/api/internal/constants"
	"github.com/interntrack/api/internal/database"
	"github.com/interntrack/api/internal/handlers"
	"github.com/interntrack/api/internal/mailer"
	"github.com/interntrack/api/internal/middleware"
	"github.com/interntrack/api/internal/repository"
	"github.com/interntrack/api/internal/services"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		logger.Fatal().Err(err).Msg("failed to add indexes")
	}

	// Wire dependencies
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)

	smtpMailer := mailer.NewMailer(cfg, logger)
	emailService := services.NewEmailService(smtpMailer, cfg.AppURL, logger)
	authService := services.NewAuthService(userRepo, emailService)
	reminderService := services.NewReminderService(jobRepo, emailService, logger)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokens)
	jobHandler := handlers.NewJobHandler(emailService)
	activityHandler := handlers.NewActivityHandler()

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "InternTrack API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/forgot-password", authHandler.ForgotPassword)
			authRoutes.POST("/reset-password/:token", authHandler.ResetPassword)
		}

		// Job routes (protected)
		jobs := api.Group("/jobs")
		jobs.Use(middleware.RequireAuth(tokens))
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.POST("", jobHandler.CreateJob)
			jobs.GET("/stats", jobHandler.GetStats)
			jobs.GET("/export", jobHandler.ExportCSV)
			jobs.POST("/import", jobHandler.ImportCSV)
			jobs.PUT("/:id", middleware.RequireJobOwnership(), jobHandler.UpdateJob)
			jobs.DELETE("/:id", middleware.RequireJobOwnership(), jobHandler.DeleteJob)
			jobs.GET("/:id/activities", middleware.RequireJobOwnership(), activityHandler.ListActivities)
			jobs.POST("/:id/activities", middleware.RequireJobOwnership(), activityHandler.CreateActivity)
		}
	}

	// Daily deadline reminder pass at 09:00 server time
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(constants.ReminderCronSpec, reminderService.Run); err != nil {
		logger.Fatal().Err(err).Msg("failed to schedule reminder job")
	}
	scheduler.Start()

	// In development, also run one pass shortly after startup
	if !cfg.IsProduction() {
		go func() {
			time.Sleep(5 * time.Second)
			logger.Info().Msg("running initial deadline check")
			reminderService.Run()
		}()
	}

	// Start server
	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
