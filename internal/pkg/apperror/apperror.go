package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping and caller handling.
type Kind string

const (
	KindNotEligible            Kind = "NOT_ELIGIBLE"
	KindInvalidStateTransition Kind = "INVALID_STATE_TRANSITION"
	KindInvalidAmount          Kind = "INVALID_AMOUNT"
	KindNotFound               Kind = "NOT_FOUND"
	KindServiceUnavailable     Kind = "SERVICE_UNAVAILABLE"
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotEligible(message string) *AppError {
	return &AppError{Kind: KindNotEligible, Message: message}
}

func InvalidStateTransition(message string) *AppError {
	return &AppError{Kind: KindInvalidStateTransition, Message: message}
}

func InvalidAmount(message string) *AppError {
	return &AppError{Kind: KindInvalidAmount, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func ServiceUnavailable(message string, err error) *AppError {
	return &AppError{Kind: KindServiceUnavailable, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain. Unclassified errors
// report an empty Kind.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
