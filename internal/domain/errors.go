package domain

import "errors"

// The service layer reports failures as one of two kinds: ValidationError
// for malformed or inconsistent input, NotFoundError for absent references
// and for permission failures that are deliberately reported as "not found".
// Anything else is treated as an internal failure at the boundary.

type ValidationError struct {
	Msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func (e *ValidationError) Error() string {
	return e.Msg
}

type NotFoundError struct {
	Msg string
}

func NewNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{Msg: msg}
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}
