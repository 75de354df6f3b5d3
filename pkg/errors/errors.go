package errors

import (
	"errors"
	"fmt"
)

var (
	ErrTargetNotFound     = errors.New("target not found")
	ErrRootDomainNotFound = errors.New("root domain not found")
	ErrSubdomainNotFound  = errors.New("subdomain not found")
)

// ConflictError reports an attempt to create a resource whose name is
// already taken within its scope.
type ConflictError struct {
	Resource string
	Name     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Resource, e.Name)
}

func NewConflictError(resource, name string) *ConflictError {
	return &ConflictError{Resource: resource, Name: name}
}

// ValidationError reports a request rejected before any persistence work.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTargetNotFound) ||
		errors.Is(err, ErrRootDomainNotFound) ||
		errors.Is(err, ErrSubdomainNotFound)
}
