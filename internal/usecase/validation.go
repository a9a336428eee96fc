package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateRegisterContactInput(input RegisterContactInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if digits := DigitsOnly(input.Phone); input.Phone != "" && !isPlausiblePhone(digits) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	return errors
}

// DigitsOnly strips everything but digits; WebinarJam rejects formatted
// phone numbers.
func DigitsOnly(phone string) string {
	return regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
}

func isPlausiblePhone(digits string) bool {
	return len(digits) >= 7 && len(digits) <= 15
}
