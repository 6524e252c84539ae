package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBoardNotFound      = errors.New("board not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError marks malformed input and names the offending field so the
// transport layer can surface it. MsgKey is a translator message id.
type ValidationError struct {
	Field  string
	MsgKey string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.MsgKey)
}

func NewValidationError(field, msgKey string) *ValidationError {
	return &ValidationError{Field: field, MsgKey: msgKey}
}
