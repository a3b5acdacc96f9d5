package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Fatal errors: abort the batch before any work starts
	ErrConfiguration ErrorCode = "CONFIGURATION_ERROR"

	// Per-item errors: recorded in the batch summary, the batch continues
	ErrGeneration         ErrorCode = "GENERATION_ERROR"
	ErrTranscriptTooLarge ErrorCode = "TRANSCRIPT_TOO_LARGE"
	ErrWrite              ErrorCode = "WRITE_ERROR"
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

func NewConfigurationError(message string, err error) *DomainError {
	return NewError(ErrConfiguration, message, err)
}

func NewGenerationError(transcriptID string, err error) *DomainError {
	return NewError(ErrGeneration, fmt.Sprintf("quiz generation failed for %s", transcriptID), err)
}

// NewMalformedOutputError is the generation failure raised when the model
// response cannot be parsed or does not satisfy the quiz schema.
func NewMalformedOutputError(transcriptID string, err error) *DomainError {
	return NewError(ErrGeneration, fmt.Sprintf("model returned malformed quiz data for %s", transcriptID), err)
}

// NewTranscriptTooLargeError is a GenerationError subtype for transcripts
// whose prompt would not fit the model's context window.
func NewTranscriptTooLargeError(transcriptID string, tokens, limit int) *DomainError {
	return NewError(ErrTranscriptTooLarge,
		fmt.Sprintf("transcript %s is too large for the model context: %d tokens (limit %d)", transcriptID, tokens, limit), nil)
}

func NewWriteError(transcriptID string, err error) *DomainError {
	return NewError(ErrWrite, fmt.Sprintf("failed to write quiz for %s", transcriptID), err)
}

// CodeOf returns the ErrorCode carried by err, or an empty code when err
// is not a DomainError.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsConfigurationError reports whether err is fatal for the whole batch.
func IsConfigurationError(err error) bool {
	return CodeOf(err) == ErrConfiguration
}
