package sparkpost

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrMissingAPIKey,
		ErrInvalidConfiguration,
		ErrInvalidHTTPClient,
		ErrUnsupportedOperation,
		ErrInvalidAddress,
		ErrInvalidPayload,
		ErrJSONEncoding,
		ErrUnauthorized,
		ErrForbidden,
		ErrNotFound,
		ErrRateLimited,
		ErrServerError,
	}

	for _, err := range sentinels {
		assert.NotEmpty(t, err.Error())
	}
}

func TestClientError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ClientError
		expected string
	}{
		{"with message", &ClientError{StatusCode: 401, Message: "Unauthorized."}, "API error 401: Unauthorized."},
		{"without message", &ClientError{StatusCode: 500}, "API error 500"},
		{"transport", &ClientError{Message: "network error: dial tcp"}, "request failed: network error: dial tcp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestClientError_Is(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{401, ErrUnauthorized},
		{403, ErrForbidden},
		{404, ErrNotFound},
		{429, ErrRateLimited},
		{500, ErrServerError},
		{503, ErrServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &ClientError{StatusCode: tt.status})
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}

	assert.NotErrorIs(t, &ClientError{StatusCode: 400}, ErrServerError)
	assert.NotErrorIs(t, &ClientError{StatusCode: 422}, ErrNotFound)
}

func TestClientError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := transportError(&NetworkError{Err: cause, URL: "https://api.sparkpost.com", Attempt: 1}, nil)

	assert.ErrorIs(t, err, cause)
	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
	assert.Equal(t, 1, netErr.Attempt)
}

func TestSparkPostErrorInterface(t *testing.T) {
	errs := []error{
		&ClientError{},
		&ConfigurationError{},
		&AddressFormatError{},
		&PayloadError{},
		&EncodingError{},
		&NetworkError{},
	}

	for _, err := range errs {
		_, ok := err.(SparkPostError)
		assert.True(t, ok, "%T does not implement SparkPostError", err)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"message", 400, `{"errors":[{"message":"invalid data format/type"}]}`, "invalid data format/type"},
		{"message and description", 422, `{"errors":[{"message":"Invalid","description":"bad from"}]}`, "Invalid: bad from"},
		{"raw body", 502, "<html>Bad Gateway</html>", "<html>Bad Gateway</html>"},
		{"empty body", 404, "", http.StatusText(404)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Response{StatusCode: tt.status, body: []byte(tt.body)}
			assert.Equal(t, tt.expected, errorMessage(r))
		})
	}
}
