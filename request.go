package sparkpost

import (
	"context"
	"net/http"

	"github.com/sparkpost/client-go/future"
)

// Payload is a JSON-shaped request payload. For GET requests it becomes the
// query string; for every other method it is the JSON body.
type Payload = map[string]any

// Headers are custom request headers. Authorization, Content-Type and
// User-Agent are always set by the client and cannot be overridden.
type Headers = map[string]string

// Request sends a request to uri, a path relative to /api/{version}/. With
// the Async option the returned promise settles in the background; otherwise
// the request completes before Request returns and the promise is already
// settled.
//
// Errors detected before anything is sent are returned directly: payload
// encoding failures and ErrUnsupportedOperation. Failures after that settle
// the promise with a *ClientError.
func (c *Client) Request(ctx context.Context, method, uri string, payload Payload, headers Headers) (*Promise, error) {
	opts, _ := c.snapshot()
	if opts.Async {
		return c.AsyncRequest(ctx, method, uri, payload, headers)
	}

	resp, err := c.SyncRequest(ctx, method, uri, payload, headers)
	if err != nil && !isClientError(err) {
		return nil, err
	}
	var req *RequestValues
	if resp != nil {
		req = resp.Request()
	} else if ce, ok := err.(*ClientError); ok {
		req = ce.Request
	}
	return settledPromise(resp, err, req), nil
}

// SyncRequest sends a request and blocks until it completes, re-sending on
// 5xx while the retry budget lasts. A final status of 400 or more, or a
// transport failure, is returned as a *ClientError.
func (c *Client) SyncRequest(ctx context.Context, method, uri string, payload Payload, headers Headers) (*Response, error) {
	opts, apiClient := c.snapshot()

	values, err := apiClient.BuildValues(method, uri, payload, headers)
	if err != nil {
		return nil, err
	}

	resp, err := apiClient.Do(ctx, values)
	return complete(resp, err, debugValues(opts, values))
}

// AsyncRequest sends a request without blocking. It fails with
// ErrUnsupportedOperation, without sending, when the HTTP client does not
// implement AsyncHTTPClient.
func (c *Client) AsyncRequest(ctx context.Context, method, uri string, payload Payload, headers Headers) (*Promise, error) {
	opts, apiClient := c.snapshot()
	if !apiClient.SupportsAsync() {
		return nil, ErrUnsupportedOperation
	}

	values, err := apiClient.BuildValues(method, uri, payload, headers)
	if err != nil {
		return nil, err
	}

	f, err := apiClient.DoAsync(ctx, values)
	if err != nil {
		return nil, err
	}

	req := debugValues(opts, values)
	wrapped := future.Then(f, func(resp *http.Response, err error) (*Response, error) {
		return complete(resp, err, req)
	})
	return newPromise(wrapped, req), nil
}

// BuildRequest builds the *http.Request a call would send, without sending
// it.
func (c *Client) BuildRequest(ctx context.Context, method, uri string, payload Payload, headers Headers) (*http.Request, error) {
	_, apiClient := c.snapshot()

	values, err := apiClient.BuildValues(method, uri, payload, headers)
	if err != nil {
		return nil, err
	}
	return apiClient.NewRequest(ctx, values)
}

func debugValues(opts Options, values *RequestValues) *RequestValues {
	if opts.Debug {
		return values
	}
	return nil
}

// complete turns the outcome of a dispatch into a Response or a ClientError.
func complete(resp *http.Response, err error, req *RequestValues) (*Response, error) {
	if err != nil {
		return nil, transportError(err, req)
	}

	r, err := newResponse(resp, req)
	if err != nil {
		ce := transportError(err, req)
		ce.StatusCode = resp.StatusCode
		ce.Header = resp.Header
		return nil, ce
	}
	if r.StatusCode >= http.StatusBadRequest {
		return nil, statusError(r)
	}
	return r, nil
}
