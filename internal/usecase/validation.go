package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateCampaignInput(input CreateCampaignInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.UserID) == "" {
		errors = append(errors, ValidationError{"user_id", "is required"})
	}

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Query) == "" {
		errors = append(errors, ValidationError{"query", "is required"})
	} else if len(input.Query) > 500 {
		errors = append(errors, ValidationError{"query", "must not exceed 500 characters"})
	}

	if input.NotifyEmail != "" {
		if _, err := mail.ParseAddress(input.NotifyEmail); err != nil {
			errors = append(errors, ValidationError{"notify_email", "is invalid"})
		}
	}

	return errors
}
