package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/wisteria-dev/taskboard-api/internal/auth"
	"github.com/wisteria-dev/taskboard-api/internal/config"
	"github.com/wisteria-dev/taskboard-api/internal/constants"
	"github.com/wisteria-dev/taskboard-api/internal/database"
	"github.com/wisteria-dev/taskboard-api/internal/handlers"
	"github.com/wisteria-dev/taskboard-api/internal/middleware"
	"github.com/wisteria-dev/taskboard-api/internal/repository"
	"github.com/wisteria-dev/taskboard-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Structured logger: human-readable in development, JSON in production
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Signing secret is read once here and handed to the issuer; nothing
	// else touches it.
	issuer := auth.NewTokenIssuer([]byte(cfg.JWTSecret), constants.TokenTTL)

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	noticeRepo := repository.NewNoticeRepository(database.GetDB())
	authService := services.NewAuthService(userRepo)
	notificationService := services.NewNotificationService(noticeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, issuer, cfg.IsProduction(), logger)
	userHandler := handlers.NewUserHandler(authService, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationService, logger)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Taskboard API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		users := api.Group("/user")
		{
			// Public
			users.POST("/register", authHandler.Register)
			users.POST("/login", authHandler.Login)
			users.POST("/logout", authHandler.Logout)

			// Authenticated
			authed := users.Group("")
			authed.Use(middleware.RequireAuth(issuer, userRepo))
			{
				authed.GET("/me", userHandler.GetCurrentUser)
				authed.GET("/get-team", userHandler.GetTeamList)
				authed.GET("/notifications", notificationHandler.ListNotifications)
				authed.PUT("/read-noti", notificationHandler.MarkNotificationRead)
				authed.PUT("/profile", userHandler.UpdateProfile)
				authed.PUT("/change-password", userHandler.ChangePassword)

				// Admin only
				admin := authed.Group("")
				admin.Use(middleware.RequireAdmin())
				{
					admin.PUT("/:id", userHandler.SetActive)
					admin.DELETE("/:id", userHandler.DeleteUser)
				}
			}
		}
	}

	// Start server
	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
