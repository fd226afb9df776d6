package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrValidation   ErrorCode = "VALIDATION_ERROR"

	// Upstream errors
	ErrUpstreamTimeout       ErrorCode = "UPSTREAM_TIMEOUT"
	ErrUpstreamQuotaExceeded ErrorCode = "UPSTREAM_QUOTA_EXCEEDED"
	ErrUpstreamError         ErrorCode = "UPSTREAM_ERROR"
	ErrTranscriptNotFound    ErrorCode = "TRANSCRIPT_NOT_FOUND"
	ErrTranscriptDisabled    ErrorCode = "TRANSCRIPT_DISABLED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewUpstreamTimeoutError(upstream string, err error) *DomainError {
	return NewError(ErrUpstreamTimeout, fmt.Sprintf("%s did not respond in time", upstream), err)
}

func NewQuotaExceededError(upstream string, err error) *DomainError {
	return NewError(ErrUpstreamQuotaExceeded, fmt.Sprintf("%s quota exceeded, try again later", upstream), err)
}

func NewUpstreamError(upstream string, err error) *DomainError {
	return NewError(ErrUpstreamError, fmt.Sprintf("%s request failed", upstream), err)
}

func NewTranscriptNotFoundError(videoID string) *DomainError {
	return NewError(ErrTranscriptNotFound, fmt.Sprintf("No transcript found for video: %s", videoID), nil)
}

func NewTranscriptDisabledError(videoID string) *DomainError {
	return NewError(ErrTranscriptDisabled, fmt.Sprintf("Transcripts are disabled for video: %s", videoID), nil)
}

// CodeOf returns the ErrorCode carried by err, or ErrInternal.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ErrInternal
}

// ValidationError describes one rejected request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is returned by request validation and rendered as a 400.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "field is required"}
}

func NewInvalidFormatError(field string, value any) ValidationError {
	return ValidationError{Field: field, Message: "invalid format", Value: value}
}

func NewUnsupportedValueError(field string, value any, allowed ...string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		Value:   value,
	}
}
