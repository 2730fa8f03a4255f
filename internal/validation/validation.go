// Package validation holds the field validators shared by every mutation and a
// small first-failure pipeline for running them in a fixed order.
package validation

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/constants"
)

var (
	phonePattern = regexp.MustCompile(`^(?:\+977|977|0)?(?:98[4-7]|97[7-8]|96[4-6]|985|984|980|981|982|961|962|988|960|972|963|973|974|975|976|977|978|983|986)\d{7}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9.-]+$`)
	urlPattern   = regexp.MustCompile(`((http|https)://)(www.)?[a-zA-Z0-9@:%._\+~#?&/=]{2,256}\.[a-z]{2,6}\b([-a-zA-Z0-9@:%._\+~#?&/=]*)`)
)

// ValidatePassword reports whether password is at least eight characters long, drawn
// only from letters, digits and the special set, and contains one of each class.
func ValidatePassword(password string) bool {
	if len(password) < constants.MinPasswordLength {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(constants.PasswordSpecialSet, r):
			special = true
		default:
			return false
		}
	}

	return upper && lower && digit && special
}

// ValidatePhone reports whether phone is a mobile number with a known regional prefix.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateEmail reports whether email has a local@domain.tld shape.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateURL reports whether value contains an http(s) URL.
func ValidateURL(value string) bool {
	return urlPattern.MatchString(value)
}

// ValidateUUID reports whether value parses as a UUID literal.
func ValidateUUID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
