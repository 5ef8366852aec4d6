package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEntityNotFound     *notFoundError
	ErrSessionNotActive   = errors.New("exam session is not in progress")
	ErrSessionOwnership   = errors.New("exam session belongs to another user")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrForbidden          = errors.New("insufficient role for this operation")
	ErrExamInactive       = errors.New("exam is not active")
)

type notFoundError struct {
	EntityType string
	ID         string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID)
}

func NewNotFoundError(entityType string, id fmt.Stringer) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         id.String(),
	}
}

// NewNotFoundErrorByKey is used for entities keyed by a plain string, such as certificates.
func NewNotFoundErrorByKey(entityType string, key string) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         key,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFoundError *notFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}
