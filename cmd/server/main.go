package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"github.com/chirp-social/chirp/internal/config"
	"github.com/chirp-social/chirp/internal/database"
	"github.com/chirp-social/chirp/internal/handlers"
	"github.com/chirp-social/chirp/internal/middleware"
	"github.com/chirp-social/chirp/internal/repositories"
	"github.com/chirp-social/chirp/internal/services"
	"github.com/chirp-social/chirp/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	logger.Init()
	defer logger.Sync()

	logger.Info("starting chirp server")

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", err)
	}

	if cfg.AppEnv == "production" {
		if err := cfg.ValidateProductionSecurity(); err != nil {
			logger.Fatal("production security validation failed", err)
		}
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("failed to run migrations", err)
	}

	userRepo := repositories.NewUserRepository(db)
	friendshipRepo := repositories.NewFriendshipRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL())
	friendshipService := services.NewFriendshipService(friendshipRepo, userRepo)
	postService := services.NewPostService(postRepo, commentRepo, friendshipRepo, userRepo)
	feedService := services.NewFeedService(postRepo, friendshipRepo, userRepo)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerUser, cfg.RateLimitPerIP, cfg.RateLimitWindowDuration())

	app := fiber.New(fiber.Config{
		AppName: "chirp",
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestid.New())

	handlers.SetupRoutes(
		app,
		cfg.JWTSecret,
		limiter,
		handlers.NewAuthHandler(authService),
		handlers.NewFriendshipHandler(friendshipService),
		handlers.NewPostHandler(postService, feedService),
		handlers.NewCommentHandler(postService),
	)

	go func() {
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			logger.Fatal("server stopped", err)
		}
	}()

	logger.Info("server started", "port", cfg.AppPort, "env", cfg.AppEnv)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down gracefully")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
