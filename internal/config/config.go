package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultSessionSecret = "default-secret-key-change-me"

type Config struct {
	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"assigner"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"assigner"`
	DBName     string `env:"DB_NAME" envDefault:"task_assigner"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"task_assigner.db"`

	SessionStore  string `env:"SESSION_STORE" envDefault:"redis"`
	RedisHost     string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"default-secret-key-change-me"`

	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	JWTSecret       string        `env:"JWT_SECRET"`
	JWTIssuer       string        `env:"JWT_ISSUER" envDefault:"task-assigner"`
	AccessTokenTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"5m"`
	RefreshTokenTTL time.Duration `env:"JWT_REFRESH_TTL" envDefault:"24h"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
}

// Load reads an optional .env file, parses the environment and validates the result.
func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	switch c.SessionStore {
	case "redis", "cookie":
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.SessionStore)
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be positive, got %s", c.AccessTokenTTL)
	}
	if c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("JWT_REFRESH_TTL must be positive, got %s", c.RefreshTokenTTL)
	}

	if c.IsProduction() && c.SessionSecret == defaultSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be changed in release mode")
	}

	return nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// DSN builds the connection string for the configured driver.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case "mysql":
		// clientFoundRows makes RowsAffected count matched rows, as postgres and sqlite do.
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
			c.DBUser,
			c.DBPassword,
			c.DBHost,
			c.DBPort,
			c.DBName,
		)
	case "sqlite":
		return c.SQLitePath
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost,
			c.DBPort,
			c.DBUser,
			c.DBPassword,
			c.DBName,
			c.DBSSLMode,
		)
	}
}

// RedisAddr returns host:port for the session store.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}
