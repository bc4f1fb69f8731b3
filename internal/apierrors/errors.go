// Package apierrors provides shared error types for the SparkPost client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key (or a blank one) is provided.
	ErrMissingAPIKey = errors.New("you must provide an API key")

	// ErrInvalidConfiguration is returned for any rejected configuration value.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidHTTPClient is returned when a nil or unusable HTTP client is set.
	ErrInvalidHTTPClient = errors.New("invalid http client")

	// ErrUnsupportedOperation is returned when an asynchronous request is made
	// with an HTTP client that cannot send asynchronously.
	ErrUnsupportedOperation = errors.New("your http client does not support asynchronous requests")

	// ErrInvalidAddress is returned when a shorthand address cannot be parsed.
	ErrInvalidAddress = errors.New("invalid address format")

	// ErrInvalidPayload is returned when a transmission payload has the wrong shape.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrJSONEncoding is returned when a request body cannot be encoded.
	ErrJSONEncoding = errors.New("JSON encoding error")

	// ErrUnauthorized is returned when the API key is rejected (401).
	ErrUnauthorized = errors.New("invalid or unauthorized API key")

	// ErrForbidden is returned when the API key lacks a permission (403).
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when the requested resource does not exist (404).
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded (429).
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServerError is returned for 5xx responses that outlived the retry budget.
	ErrServerError = errors.New("server error")
)

// ConfigurationError reports a rejected option value.
type ConfigurationError struct {
	Option  string
	Message string
	Err     error
}

// SparkPostError marks the error as originating from this client.
func (e *ConfigurationError) SparkPostError() {}

func (e *ConfigurationError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Option, e.Message)
}

// Unwrap returns the underlying sentinel, if any.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
// Every configuration error matches ErrInvalidConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// AddressFormatError indicates a shorthand address matched neither the
// bare-email nor the `Name <email>` form.
type AddressFormatError struct {
	Address string
}

// SparkPostError marks the error as originating from this client.
func (e *AddressFormatError) SparkPostError() {}

func (e *AddressFormatError) Error() string {
	return fmt.Sprintf("invalid address format: %s", e.Address)
}

// Is implements errors.Is for sentinel error matching.
func (e *AddressFormatError) Is(target error) bool {
	return target == ErrInvalidAddress
}

// PayloadError indicates a transmission payload field has an unexpected shape.
type PayloadError struct {
	Field   string
	Message string
}

// SparkPostError marks the error as originating from this client.
func (e *PayloadError) SparkPostError() {}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("invalid payload: %s: %s", e.Field, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *PayloadError) Is(target error) bool {
	return target == ErrInvalidPayload
}

// EncodingError wraps a failure to serialize a request body.
type EncodingError struct {
	Message string
	Err     error
}

// SparkPostError marks the error as originating from this client.
func (e *EncodingError) SparkPostError() {}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("JSON encoding error: %v", e.Err)
	}
	return fmt.Sprintf("JSON encoding error: %s", e.Message)
}

// Unwrap returns the encoder's error.
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncodingError) Is(target error) bool {
	return target == ErrJSONEncoding
}

// NetworkError represents a transport-level failure. It is never retried.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

// SparkPostError marks the error as originating from this client.
func (e *NetworkError) SparkPostError() {}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusSentinel returns the sentinel matching an HTTP status code, or nil.
func StatusSentinel(statusCode int) error {
	switch {
	case statusCode == 401:
		return ErrUnauthorized
	case statusCode == 403:
		return ErrForbidden
	case statusCode == 404:
		return ErrNotFound
	case statusCode == 429:
		return ErrRateLimited
	case statusCode >= 500 && statusCode <= 599:
		return ErrServerError
	}
	return nil
}
