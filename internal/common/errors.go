package common

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinel categories for the pipeline failure taxonomy. Stage code wraps
// its failures with exactly one of these so the orchestrator can classify
// without knowing stage internals; anything unclassified is treated as
// ErrTransient and retried until the lease backstop gives up.
var (
	ErrTransient         = errors.New("transient failure")
	ErrExtraction        = errors.New("extraction failure")
	ErrValidation        = errors.New("validation failure")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrAlreadyProcessing = errors.New("invoice already processing")
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// RuleViolation is a single validation rule the candidate broke.
type RuleViolation struct {
	Field   string
	Rule    string
	Message string
	Fatal   bool
}

func (v RuleViolation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationError enumerates every violated rule, not just the first.
// It is fatal when at least one violation is fatal.
type ValidationError struct {
	Violations []RuleViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Fatal reports whether any violation forbids the invoice from advancing.
func (e *ValidationError) Fatal() bool {
	for _, v := range e.Violations {
		if v.Fatal {
			return true
		}
	}
	return false
}

// IsTransient reports whether err should be retried with backoff.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrExtraction) || errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrIllegalTransition) || errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrAlreadyProcessing) {
		return false
	}
	// Unclassified errors propagate as transient.
	return true
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
