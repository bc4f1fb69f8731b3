package sparkpost

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sparkpost/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when the API key is missing or blank.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrInvalidConfiguration matches every ConfigurationError.
	ErrInvalidConfiguration = apierrors.ErrInvalidConfiguration

	// ErrInvalidHTTPClient is returned when a nil HTTP client is configured.
	ErrInvalidHTTPClient = apierrors.ErrInvalidHTTPClient

	// ErrUnsupportedOperation is returned when asynchronous dispatch is
	// requested from an HTTP client that cannot do it.
	ErrUnsupportedOperation = apierrors.ErrUnsupportedOperation

	// ErrInvalidAddress is returned when a shorthand address cannot be parsed.
	ErrInvalidAddress = apierrors.ErrInvalidAddress

	// ErrInvalidPayload is returned when a payload has an unexpected shape.
	ErrInvalidPayload = apierrors.ErrInvalidPayload

	// ErrJSONEncoding is returned when a request body cannot be serialized.
	ErrJSONEncoding = apierrors.ErrJSONEncoding

	// ErrUnauthorized matches ClientErrors with status 401.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrForbidden matches ClientErrors with status 403.
	ErrForbidden = apierrors.ErrForbidden

	// ErrNotFound matches ClientErrors with status 404.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited matches ClientErrors with status 429.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServerError matches ClientErrors with a 5xx status.
	ErrServerError = apierrors.ErrServerError
)

// SparkPostError is implemented by all errors produced by this package.
type SparkPostError interface {
	error
	SparkPostError() // marker method
}

type (
	// ConfigurationError reports an invalid option.
	ConfigurationError = apierrors.ConfigurationError
	// AddressFormatError reports a shorthand address that matched neither
	// the bare email form nor the "Name <email>" form.
	AddressFormatError = apierrors.AddressFormatError
	// PayloadError reports a transmission payload of the wrong shape.
	PayloadError = apierrors.PayloadError
	// EncodingError reports a request body that could not be serialized.
	EncodingError = apierrors.EncodingError
	// NetworkError reports a transport failure. Transport failures are
	// never retried.
	NetworkError = apierrors.NetworkError
)

// ClientError is returned for a transport failure or a response with a
// status of 400 or more.
type ClientError struct {
	// StatusCode is zero for transport failures.
	StatusCode int
	Message    string
	// Body is the decoded JSON error body, when there is one.
	Body   map[string]any
	Header http.Header
	// Request is set only when the client runs with Debug enabled.
	Request *RequestValues
	Err     error
}

func (e *ClientError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %s", e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// SparkPostError implements the SparkPostError interface.
func (e *ClientError) SparkPostError() {}

// Unwrap returns the underlying transport error, if any.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ClientError) Is(target error) bool {
	sentinel := apierrors.StatusSentinel(e.StatusCode)
	return sentinel != nil && sentinel == target
}

// transportError wraps a failure that produced no usable response.
func transportError(err error, req *RequestValues) *ClientError {
	return &ClientError{
		Message: err.Error(),
		Request: req,
		Err:     err,
	}
}

// statusError builds a ClientError from an error response.
func statusError(r *Response) *ClientError {
	return &ClientError{
		StatusCode: r.StatusCode,
		Message:    errorMessage(r),
		Body:       r.BodyDecoded(),
		Header:     r.Header,
		Request:    r.Request(),
	}
}

// errorMessage extracts the first error message from an error body of the
// form {"errors":[{"message":"..."}]}, falling back to the raw body and then
// the status text.
func errorMessage(r *Response) string {
	var body struct {
		Errors []struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(r.Body(), &body); err == nil && len(body.Errors) > 0 {
		first := body.Errors[0]
		if first.Description != "" {
			return first.Message + ": " + first.Description
		}
		if first.Message != "" {
			return first.Message
		}
	}
	if raw := strings.TrimSpace(string(r.Body())); raw != "" {
		return raw
	}
	return http.StatusText(r.StatusCode)
}

// isClientError reports whether err came out of dispatch rather than out of
// request building.
func isClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}
