package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared between repositories, services and handlers.
// Handlers map them to HTTP status codes with errors.Is.
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// ValidationKind identifies which validation rule an employee payload broke
type ValidationKind string

const (
	MissingFields       ValidationKind = "missing_fields"
	InvalidFieldTypes   ValidationKind = "invalid_field_types"
	EmptyRequiredFields ValidationKind = "empty_required_fields"
)

// ValidationError is a structured rejection of an employee payload. Fields
// holds the offending field names in the order they were checked.
type ValidationError struct {
	Kind   ValidationKind
	Fields []string
}

// Message returns the human-readable reason without the field list,
// suitable for the "error" key of a response body.
func (e *ValidationError) Message() string {
	switch e.Kind {
	case MissingFields:
		return "missing required fields"
	case InvalidFieldTypes:
		return "fields must be strings"
	case EmptyRequiredFields:
		return "required fields cannot be empty"
	}
	return "invalid payload"
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message(), strings.Join(e.Fields, ", "))
}
