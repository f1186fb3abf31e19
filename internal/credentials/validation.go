package credentials

import (
	"errors"
	"strings"
)

// Field identifies a required field of the Record.
type Field string

const (
	FieldClientID     Field = "client_id"
	FieldClientSecret Field = "client_secret"
)

var (
	ErrMissingClientID     = errors.New("client ID is required")
	ErrMissingClientSecret = errors.New("client secret is required")
)

// ValidationError is a user-correctable problem with the entered values.
// It keeps the wizard on the current page.
type ValidationError struct {
	Field Field
	Err   error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// Message is the text shown next to the form when advancing is blocked.
func (e *ValidationError) Message() string {
	switch e.Field {
	case FieldClientID:
		return "Client ID is required."
	case FieldClientSecret:
		return "Client Secret is required."
	default:
		return e.Err.Error()
	}
}

// Validate checks the required fields in order, client ID first, and reports
// only the first failure. DefaultURI is never checked.
func Validate(rec Record) error {
	if strings.TrimSpace(rec.ClientID) == "" {
		return &ValidationError{Field: FieldClientID, Err: ErrMissingClientID}
	}
	if strings.TrimSpace(rec.ClientSecret) == "" {
		return &ValidationError{Field: FieldClientSecret, Err: ErrMissingClientSecret}
	}
	return nil
}
