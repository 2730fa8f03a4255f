package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/auth"
	"github.com/yukikurage/task-assigner/internal/constants"
	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/models"
	"github.com/yukikurage/task-assigner/internal/policy"
	"github.com/yukikurage/task-assigner/internal/repository"
	"gorm.io/gorm"
)

const bearerPrefix = "Bearer "

// Authenticate resolves the caller from a Bearer access token or, failing that,
// from the session cookie, and stores the loaded user in the context. Requests
// without credentials pass through anonymously; Authorize decides whether that is
// acceptable. A malformed or expired token is rejected outright.
func Authenticate(users repository.UserRepository, tokens *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			if !strings.HasPrefix(header, bearerPrefix) {
				apierrors.RespondWithError(c, apierrors.ErrInvalidToken)
				return
			}

			userID, _, err := tokens.VerifyAccess(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				apierrors.RespondWithError(c, apierrors.ErrInvalidToken)
				return
			}

			user, err := users.FindByID(userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					apierrors.RespondWithError(c, apierrors.ErrInvalidToken)
					return
				}
				apierrors.Respond(c, err)
				return
			}

			setUser(c, user)
			c.Next()
			return
		}

		session := sessions.Default(c)
		raw, ok := session.Get(constants.SessionKeyUserID).(string)
		if !ok {
			c.Next()
			return
		}

		if userID, err := uuid.Parse(raw); err == nil {
			user, err := users.FindByID(userID)
			if err == nil {
				setUser(c, user)
				c.Next()
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Respond(c, err)
				return
			}
		}

		// The session points at nothing usable; drop it and continue anonymously.
		slog.Warn("discarding stale session", "user_id", raw)
		session.Clear()
		if err := session.Save(); err != nil {
			slog.Warn("failed to clear stale session", "error", err)
		}
		c.Next()
	}
}

// Authorize rejects the request unless the caller satisfies the requirement of op.
func Authorize(op policy.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := CurrentUser(c)
		if err := policy.Authorize(op, user); err != nil {
			slog.Debug("request denied", "operation", op.String(), "kind", apierrors.KindOf(err).String())
			apierrors.Respond(c, err)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by Authenticate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

func setUser(c *gin.Context, user *models.User) {
	c.Set(constants.ContextKeyUser, user)
}
