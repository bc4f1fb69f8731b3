package sparkpost

import (
	"context"
	"net/http"
)

// Resource maps HTTP verbs onto one API endpoint.
type Resource struct {
	client   *Client
	endpoint string
}

// Endpoint returns the endpoint path, for example "transmissions".
func (r *Resource) Endpoint() string {
	return r.endpoint
}

func (r *Resource) path(uri string) string {
	if uri == "" {
		return r.endpoint
	}
	return r.endpoint + "/" + uri
}

// Get fetches endpoint/uri; payload is sent as the query string.
func (r *Resource) Get(ctx context.Context, uri string, payload Payload, headers Headers) (*Promise, error) {
	return r.Request(ctx, http.MethodGet, uri, payload, headers)
}

// Put updates endpoint/uri with payload.
func (r *Resource) Put(ctx context.Context, uri string, payload Payload, headers Headers) (*Promise, error) {
	return r.Request(ctx, http.MethodPut, uri, payload, headers)
}

// Post creates a new item on the endpoint.
func (r *Resource) Post(ctx context.Context, payload Payload, headers Headers) (*Promise, error) {
	return r.Request(ctx, http.MethodPost, "", payload, headers)
}

// Delete removes endpoint/uri.
func (r *Resource) Delete(ctx context.Context, uri string, payload Payload, headers Headers) (*Promise, error) {
	return r.Request(ctx, http.MethodDelete, uri, payload, headers)
}

// Request sends an arbitrary method to endpoint/uri.
func (r *Resource) Request(ctx context.Context, method, uri string, payload Payload, headers Headers) (*Promise, error) {
	return r.client.Request(ctx, method, r.path(uri), payload, headers)
}
