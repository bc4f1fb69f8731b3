package api

import (
	"context"
	"io"
	"net/http"

	"github.com/sparkpost/client-go/future"
	"github.com/sparkpost/client-go/internal/apierrors"
)

// Do sends v and blocks until a final response arrives. Responses with a
// retryable status are discarded and the request is re-sent until the retry
// budget runs out; the last response is returned whatever its status.
// Transport failures are returned as *apierrors.NetworkError and never retried.
func (c *Client) Do(ctx context.Context, v *RequestValues) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		req, err := c.NewRequest(ctx, v)
		if err != nil {
			return nil, err
		}

		c.logAttempt(ctx, v, attempt)
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, &apierrors.NetworkError{Err: err, URL: v.URL, Attempt: attempt + 1}
		}

		if !c.retry.ShouldRetry(attempt, resp.StatusCode) {
			return resp, nil
		}
		if err := c.backoff(ctx, v, resp, attempt); err != nil {
			return nil, err
		}
	}
}

// DoAsync sends v without blocking and returns a future for the final
// response, with the same retry policy as Do. It fails immediately with
// apierrors.ErrUnsupportedOperation when the HTTP client cannot send
// asynchronously; nothing is sent in that case.
func (c *Client) DoAsync(ctx context.Context, v *RequestValues) (*future.Future[*http.Response], error) {
	ac, ok := c.httpClient.(AsyncDoer)
	if !ok {
		return nil, apierrors.ErrUnsupportedOperation
	}

	// Build the first request up front so malformed values fail synchronously.
	first, err := c.NewRequest(ctx, v)
	if err != nil {
		return nil, err
	}

	f, resolve := future.New[*http.Response]()
	go func() {
		resolve(c.sendAsync(ctx, ac, v, first))
	}()
	return f, nil
}

func (c *Client) sendAsync(ctx context.Context, ac AsyncDoer, v *RequestValues, req *http.Request) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			var err error
			if req, err = c.NewRequest(ctx, v); err != nil {
				return nil, err
			}
		}

		c.logAttempt(ctx, v, attempt)
		resp, err := ac.DoAsync(req).Wait()
		if err != nil {
			return nil, &apierrors.NetworkError{Err: err, URL: v.URL, Attempt: attempt + 1}
		}

		if !c.retry.ShouldRetry(attempt, resp.StatusCode) {
			return resp, nil
		}
		if err := c.backoff(ctx, v, resp, attempt); err != nil {
			return nil, err
		}
	}
}

// backoff discards a retryable response and waits before the next attempt.
func (c *Client) backoff(ctx context.Context, v *RequestValues, resp *http.Response, attempt int) error {
	drain(resp)

	c.logger.WarnContext(ctx, "retrying request",
		"request_id", v.ID,
		"method", v.Method,
		"url", v.URL,
		"status", resp.StatusCode,
		"attempt", attempt+1,
		"max_retries", c.retry.MaxRetries,
	)

	if err := c.retry.Wait(ctx, attempt); err != nil {
		return &apierrors.NetworkError{Err: err, URL: v.URL, Attempt: attempt + 1}
	}
	return nil
}

func (c *Client) logAttempt(ctx context.Context, v *RequestValues, attempt int) {
	c.logger.DebugContext(ctx, "sending request",
		"request_id", v.ID,
		"method", v.Method,
		"url", v.URL,
		"attempt", attempt+1,
		"key", c.fingerprint,
	)
}

func drain(resp *http.Response) {
	if resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
