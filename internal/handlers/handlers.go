package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-assigner/internal/dto"
	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/middleware"
	"github.com/yukikurage/task-assigner/internal/models"
)

const msgInvalidBody = "Invalid request body"

// bindJSON decodes the request body into req. An empty body decodes as an empty
// object so that field validation reports the first missing field.
func bindJSON(c *gin.Context, title string, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.RespondWithError(c, apierrors.Validation(title, msgInvalidBody))
		return false
	}
	return true
}

func respondOK(c *gin.Context, title, message string, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{
		Title:   title,
		Message: message,
		Data:    data,
	})
}

// actor returns the authenticated caller, writing a 401 when there is none.
func actor(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.ErrUnauthenticated)
		return nil, false
	}
	return user, true
}
