package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-assigner/internal/auth"
	"github.com/yukikurage/task-assigner/internal/config"
	"github.com/yukikurage/task-assigner/internal/database"
	"github.com/yukikurage/task-assigner/internal/handlers"
	"github.com/yukikurage/task-assigner/internal/repository"
	"github.com/yukikurage/task-assigner/internal/router"
	"github.com/yukikurage/task-assigner/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	store, err := router.NewSessionStore(cfg)
	if err != nil {
		slog.Error("failed to create session store", "error", err)
		os.Exit(1)
	}

	tokens, err := auth.NewIssuer(auth.IssuerConfig{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	})
	if err != nil {
		slog.Error("failed to create token issuer", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	// Task drafting stays unavailable without an API key.
	var generator services.TaskGenerator
	if cfg.OpenAIAPIKey != "" {
		generator = services.NewAIService(cfg.OpenAIAPIKey)
	}

	r := router.New(router.Options{
		Store:          store,
		Users:          userRepo,
		Tokens:         tokens,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}, router.Handlers{
		Auth:        handlers.NewAuthHandler(services.NewAuthService(userRepo, tokens)),
		Projects:    handlers.NewProjectHandler(services.NewProjectService(projectRepo, userRepo)),
		Tasks:       handlers.NewTaskHandler(services.NewTaskService(taskRepo, projectRepo, userRepo, generator)),
		Submissions: handlers.NewSubmissionHandler(services.NewSubmissionService(submissionRepo, taskRepo, projectRepo)),
	})

	// Start server
	slog.Info("server starting", "port", cfg.Port, "db_driver", cfg.DBDriver, "session_store", cfg.SessionStore)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
