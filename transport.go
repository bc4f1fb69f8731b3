package sparkpost

import (
	"context"
	"net/http"

	"github.com/sparkpost/client-go/future"
	"github.com/sparkpost/client-go/internal/api"
)

// HTTPClient sends a request and blocks until the response arrives.
// *http.Client satisfies it.
type HTTPClient = api.Doer

// AsyncHTTPClient is an HTTPClient that can also send without blocking.
// Asynchronous dispatch is only available with one.
type AsyncHTTPClient interface {
	HTTPClient
	DoAsync(req *http.Request) *future.Future[*http.Response]
}

// AsyncClient adds non-blocking sends to an *http.Client by running each
// request on its own goroutine.
type AsyncClient struct {
	*http.Client
}

var _ AsyncHTTPClient = (*AsyncClient)(nil)

// NewAsyncClient wraps hc. A nil hc gets a client with DefaultTimeout.
func NewAsyncClient(hc *http.Client) *AsyncClient {
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	return &AsyncClient{Client: hc}
}

// DoAsync sends req in the background. Canceling the request's context
// rejects the future.
func (a *AsyncClient) DoAsync(req *http.Request) *future.Future[*http.Response] {
	return future.Go(req.Context(), func(context.Context) (*http.Response, error) {
		return a.Client.Do(req)
	})
}
