package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the service layer. Handlers map them to HTTP
// status codes; raw storage errors are never forwarded to the caller.
var (
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("caller is not the owner of this record")
	ErrDuplicateRating    = errors.New("user has already rated this cat")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a bad field value in a request
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
