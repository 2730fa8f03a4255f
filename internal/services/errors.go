package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/validation"
	"gorm.io/gorm"
)

// Response titles, one per resource.
const (
	TitleAccounts     = "Accounts"
	TitleLogin        = "Login"
	TitleToken        = "Token Refresh"
	TitleProject      = "Project"
	TitleTask         = "Task"
	TitleSubmitTask   = "Submit Task"
	TitleTaskGenerate = "Task Generate"
)

const invalidUUIDMessage = "Invalid UUID"

// invalid converts the first failing rule into a validation error.
func invalid(title string, fe *validation.FieldError) error {
	if fe == nil {
		return nil
	}
	return apierrors.Validation(title, fe.Message).WithField(fe.Field)
}

// parseID parses a UUID already known to be syntactically valid, or reports
// message as a validation error on field.
func parseID(title, field, value, message string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apierrors.Validation(title, message).WithField(field)
	}
	return id, nil
}

// lookupErr maps a repository lookup failure: a missing row becomes a NotFound with
// message, anything else is wrapped as an internal error.
func lookupErr(err error, title, field, message, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierrors.NotFound(title, message).WithField(field)
	}
	return fmt.Errorf("failed to find %s: %w", what, err)
}

func strPtr(s string) *string {
	return &s
}
