package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrValidation           = errors.New("validation failed")
	ErrUnknownClient        = errors.New("unknown client")
	ErrClientCreationFailed = errors.New("client creation failed")
)

// ValidationError lists request fields that are absent or carry unacceptable values.
type ValidationError struct {
	Missing []string
	Invalid []string
}

// NewMissingFieldsError reports absent fields.
func NewMissingFieldsError(fields ...string) *ValidationError {
	return &ValidationError{Missing: fields}
}

// NewInvalidFieldsError reports fields with unacceptable values.
func NewInvalidFieldsError(fields ...string) *ValidationError {
	return &ValidationError{Invalid: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, "missing fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	if len(parts) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Empty reports whether no field was flagged.
func (e *ValidationError) Empty() bool {
	return e == nil || (len(e.Missing) == 0 && len(e.Invalid) == 0)
}

// PersistenceError wraps a store failure together with the operation that produced it.
type PersistenceError struct {
	Op  string
	Err error
}

// NewPersistenceError wraps err unless it is nil.
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
