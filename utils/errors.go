package utils

import (
	"errors"
	"fmt"
)

// Error codes for the caller-visible error taxonomy. Conflict is the
// expected outcome of a denied booking, not a bug; RaceLost marks an
// availability decision invalidated by a concurrent write and must be
// retried or surfaced, never swallowed.
const (
	CodeNotFound     = "notFound"
	CodeInvalidInput = "invalidInput"
	CodeConflict     = "conflict"
	CodeRaceLost     = "raceLost"
)

// AppError is a coded service error that handlers map to HTTP statuses.
type AppError struct {
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFound(what string) error {
	return &AppError{Code: CodeNotFound, Message: what + " not found"}
}

func NewInvalidInput(msg string) error {
	return &AppError{Code: CodeInvalidInput, Message: msg}
}

func NewConflict(msg string) error {
	return &AppError{Code: CodeConflict, Message: msg}
}

func NewRaceLost(msg string) error {
	return &AppError{Code: CodeRaceLost, Message: msg}
}

func hasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

func IsNotFound(err error) bool     { return hasCode(err, CodeNotFound) }
func IsInvalidInput(err error) bool { return hasCode(err, CodeInvalidInput) }
func IsConflict(err error) bool     { return hasCode(err, CodeConflict) }
func IsRaceLost(err error) bool     { return hasCode(err, CodeRaceLost) }
