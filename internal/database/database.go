package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/task-assigner/internal/config"
	"github.com/yukikurage/task-assigner/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm dialector for the configured driver.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		return postgres.Open(cfg.DSN()), nil
	case "mysql":
		return mysql.Open(cfg.DSN()), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// Connect opens the database described by cfg.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	level := logger.Info
	if cfg.IsProduction() {
		level = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established", "driver", cfg.DBDriver)
	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	slog.Info("running database migrations")
	err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectContributor{},
		&models.Task{},
		&models.SubmittedTask{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := EnsureIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	slog.Info("database migrations completed")
	return nil
}
