package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey is returned for a unique violation on an unrecognised column.
	ErrDuplicateKey = errors.New("repository: duplicate key")
	// ErrDuplicatePhone is returned when the phone unique index rejects a write.
	ErrDuplicatePhone = errors.New("repository: duplicate phone")
	// ErrDuplicateEmail is returned when the email unique index rejects a write.
	ErrDuplicateEmail = errors.New("repository: duplicate email")
	// ErrDuplicateSlug is returned when the slug unique index rejects a write.
	ErrDuplicateSlug = errors.New("repository: duplicate slug")
	// ErrTaskNotFound is returned when an approval references a task that is gone.
	ErrTaskNotFound = errors.New("repository: task not found")
	// ErrSubmissionNotFound is returned when an update matches no submission.
	ErrSubmissionNotFound = errors.New("repository: submission not found")
)

// classifyDuplicate maps a unique index violation onto the column-specific sentinel.
// Other errors are returned unchanged.
func classifyDuplicate(db *gorm.DB, err error) error {
	if err == nil {
		return nil
	}

	translated := err
	if translator, ok := db.Dialector.(gorm.ErrorTranslator); ok {
		translated = translator.Translate(err)
	}
	msg := strings.ToLower(err.Error())
	if !errors.Is(translated, gorm.ErrDuplicatedKey) && !errors.Is(err, gorm.ErrDuplicatedKey) && !looksDuplicate(msg) {
		return err
	}

	switch {
	case strings.Contains(msg, "phone"):
		return fmt.Errorf("%w: %v", ErrDuplicatePhone, err)
	case strings.Contains(msg, "email"):
		return fmt.Errorf("%w: %v", ErrDuplicateEmail, err)
	case strings.Contains(msg, "slug"):
		return fmt.Errorf("%w: %v", ErrDuplicateSlug, err)
	default:
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
}

// looksDuplicate catches drivers whose errors the dialector does not translate.
func looksDuplicate(msg string) bool {
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}
