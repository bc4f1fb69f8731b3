package apierrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigurationError
		expected string
	}{
		{
			name:     "with option",
			err:      &ConfigurationError{Option: "retries", Message: "must not be negative"},
			expected: "configuration error: retries: must not be negative",
		},
		{
			name:     "without option",
			err:      &ConfigurationError{Message: "http client is nil"},
			expected: "configuration error: http client is nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestConfigurationError_IsAndUnwrap(t *testing.T) {
	err := &ConfigurationError{Option: "key", Message: "blank", Err: ErrMissingAPIKey}

	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.NotErrorIs(t, err, ErrInvalidHTTPClient)
}

func TestAddressFormatError(t *testing.T) {
	err := &AddressFormatError{Address: "not an address"}

	assert.Equal(t, "invalid address format: not an address", err.Error())
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.NotErrorIs(t, err, ErrInvalidPayload)

	wrapped := fmt.Errorf("format recipients: %w", err)
	var target *AddressFormatError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "not an address", target.Address)
}

func TestPayloadError(t *testing.T) {
	err := &PayloadError{Field: "recipients", Message: "must be a list"}

	assert.Equal(t, "invalid payload: recipients: must be a list", err.Error())
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestEncodingError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("unsupported type: chan int")
		err := &EncodingError{Err: cause}

		assert.Equal(t, "JSON encoding error: unsupported type: chan int", err.Error())
		assert.ErrorIs(t, err, ErrJSONEncoding)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("with message", func(t *testing.T) {
		err := &EncodingError{Message: "malformed UTF-8 characters"}

		assert.Equal(t, "JSON encoding error: malformed UTF-8 characters", err.Error())
		assert.ErrorIs(t, err, ErrJSONEncoding)
	})
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NetworkError{Err: cause, URL: "https://api.sparkpost.com", Attempt: 1}

	assert.Equal(t, "network error: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestStatusSentinel(t *testing.T) {
	tests := []struct {
		status   int
		expected error
	}{
		{200, nil},
		{400, nil},
		{401, ErrUnauthorized},
		{403, ErrForbidden},
		{404, ErrNotFound},
		{422, nil},
		{429, ErrRateLimited},
		{500, ErrServerError},
		{503, ErrServerError},
		{599, ErrServerError},
		{600, nil},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusSentinel(tt.status))
		})
	}
}
