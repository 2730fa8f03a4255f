package router

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/yukikurage/task-assigner/internal/config"
)

const (
	redisPoolSize     = 10
	sessionMaxAgeSecs = 86400 * 7
)

// NewSessionStore builds the session backend selected by SESSION_STORE.
func NewSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store

	switch cfg.SessionStore {
	case "redis":
		rs, err := redisStore.NewStore(
			redisPoolSize,
			"tcp",
			cfg.RedisAddr(),
			"",
			cfg.RedisPassword,
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis store: %w", err)
		}
		store = rs
	case "cookie":
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.SessionStore)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAgeSecs,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}
