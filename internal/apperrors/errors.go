package apperrors

import "fmt"

// ValidationError rejects malformed or empty input. Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError signals that no row matches the requested id. Maps to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// AuthorizationError signals an owner-token mismatch. Maps to 403.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func NewAuthorization(message string) *AuthorizationError {
	return &AuthorizationError{Message: message}
}

// StorageError wraps a failed query. Maps to 500. Public carries the
// generic text returned to the client; the underlying cause is only
// logged, never sent.
type StorageError struct {
	Public string
	Err    error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Public, e.Err)
	}
	return e.Public
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorage(public string, err error) *StorageError {
	return &StorageError{Public: public, Err: err}
}
