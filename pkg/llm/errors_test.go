package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantType      ErrorType
		wantRetryable bool
	}{
		{"unauthorized", errors.New("401 Unauthorized"), ErrorTypeAuth, false},
		{"invalid key", errors.New("invalid api key provided"), ErrorTypeAuth, false},
		{"model missing", errors.New("the model 'gpt-9' does not exist"), ErrorTypeModel, false},
		{"endpoint 404", errors.New("404 page not found"), ErrorTypeEndpoint, false},
		{"connection refused", errors.New("dial tcp: connection refused"), ErrorTypeEndpoint, true},
		{"timeout", errors.New("context deadline exceeded"), ErrorTypeEndpoint, true},
		{"rate limited", errors.New("429 Too Many Requests"), ErrorTypeUnknown, true},
		{"server error", errors.New("502 Bad Gateway"), ErrorTypeEndpoint, true},
		{"something else", errors.New("unexpected condition"), ErrorTypeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyError(tt.err)
			require.NotNil(t, classified)
			assert.Equal(t, tt.wantType, classified.Type)
			assert.Equal(t, tt.wantRetryable, classified.Retryable)
			assert.ErrorIs(t, classified, tt.err)
		})
	}
}

func TestClassifyError_Nil(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
}

func TestClassifyError_PassesThroughStructured(t *testing.T) {
	original := &Error{Type: ErrorTypeAuth, Message: "authentication failed", Retryable: false}
	wrapped := fmt.Errorf("complete: %w", original)

	assert.Same(t, original, ClassifyError(wrapped))
}

func TestError_Message(t *testing.T) {
	err := &Error{
		Type:       ErrorTypeEndpoint,
		Message:    "server error",
		StatusCode: 503,
		Cause:      errors.New("503 Service Unavailable"),
	}

	assert.Contains(t, err.Error(), "endpoint")
	assert.Contains(t, err.Error(), "HTTP 503")
	assert.Contains(t, err.Error(), "server error")
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&Error{Retryable: true}))
	assert.False(t, IsRetryable(&Error{Retryable: false}))
	assert.False(t, IsRetryable(errors.New("plain error")))
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", &Error{Retryable: true})))
}
