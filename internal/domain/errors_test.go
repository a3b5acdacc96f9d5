package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewGenerationError("LECTURE01", cause)

	assert.Equal(t, ErrGeneration, err.Code)
	assert.Contains(t, err.Error(), "LECTURE01")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrConfiguration, CodeOf(NewConfigurationError("bad workers", nil)))
	assert.Equal(t, ErrWrite, CodeOf(NewWriteError("A", errors.New("disk full"))))
	assert.Equal(t, ErrTranscriptTooLarge, CodeOf(NewTranscriptTooLargeError("A", 200000, 120000)))
	assert.Equal(t, ErrGeneration, CodeOf(NewMalformedOutputError("A", errors.New("bad json"))))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))

	// code survives wrapping
	wrapped := fmt.Errorf("run aborted: %w", NewConfigurationError("bad workers", nil))
	assert.True(t, IsConfigurationError(wrapped))
}

func TestIsConfigurationError(t *testing.T) {
	assert.True(t, IsConfigurationError(NewConfigurationError("nope", nil)))
	assert.False(t, IsConfigurationError(NewGenerationError("A", errors.New("x"))))
	assert.False(t, IsConfigurationError(nil))
}
