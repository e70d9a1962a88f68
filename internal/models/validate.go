package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	TitleMaxLength       = 200
	DescriptionMaxLength = 1000
)

// ValidationError reports malformed task input. The message is meant
// to be shown to the user verbatim, both on the console and over HTTP.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ValidateTitle checks the title against the business rules and
// returns the trimmed form on success. Lengths are counted in
// Unicode code points, not bytes.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", newValidationError("title", "Title cannot be empty.")
	}
	if utf8.RuneCountInString(trimmed) > TitleMaxLength {
		return "", newValidationError("title",
			fmt.Sprintf("Title must be %d characters or less.", TitleMaxLength))
	}
	return trimmed, nil
}

// ValidateDescription checks the optional description. A nil
// description is always valid and no trimming is applied.
func ValidateDescription(description *string) error {
	if description == nil {
		return nil
	}
	if utf8.RuneCountInString(*description) > DescriptionMaxLength {
		return newValidationError("description",
			fmt.Sprintf("Description must be %d characters or less.", DescriptionMaxLength))
	}
	return nil
}
