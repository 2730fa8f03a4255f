package validation

import "strings"

// Rule pairs a field with a lazily evaluated check and the message surfaced when
// the check fails.
type Rule struct {
	Field   string
	Valid   func() bool
	Message string
}

// FieldError is the first rule that failed.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// First evaluates rules in order and returns the first failure, or nil.
// Later rules are not evaluated once one fails.
func First(rules ...Rule) *FieldError {
	for _, rule := range rules {
		if !rule.Valid() {
			return &FieldError{Field: rule.Field, Message: rule.Message}
		}
	}
	return nil
}

// Required fails when value is empty after trimming whitespace.
func Required(field, value, message string) Rule {
	return Rule{
		Field:   field,
		Valid:   func() bool { return strings.TrimSpace(value) != "" },
		Message: message,
	}
}

// NotEmpty fails only when value is exactly empty. Whitespace counts as content.
func NotEmpty(field, value, message string) Rule {
	return Rule{
		Field:   field,
		Valid:   func() bool { return value != "" },
		Message: message,
	}
}

// Check wraps a validator so it runs against value.
func Check(field, value string, validator func(string) bool, message string) Rule {
	return Rule{
		Field:   field,
		Valid:   func() bool { return validator(value) },
		Message: message,
	}
}

// Optional runs validator only when value is non-empty.
func Optional(field, value string, validator func(string) bool, message string) Rule {
	return Rule{
		Field:   field,
		Valid:   func() bool { return value == "" || validator(value) },
		Message: message,
	}
}
