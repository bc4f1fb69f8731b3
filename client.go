package sparkpost

import (
	"log/slog"
	"sync"

	"github.com/sparkpost/client-go/internal/api"
)

// Version is the client library version sent in the User-Agent header.
const Version = "1.0.0"

const userAgent = "sparkpost-go/" + Version

// Client is the SparkPost API client.
type Client struct {
	mu        sync.RWMutex
	cfg       clientConfig
	apiClient *api.Client

	// Transmissions is the transmissions endpoint.
	Transmissions *Transmissions
}

// buildAPIClient creates an API client from a validated configuration.
func buildAPIClient(cfg clientConfig) (*api.Client, error) {
	retry := api.DefaultRetryConfig()
	retry.MaxRetries = cfg.opts.Retries
	retry.BaseDelay = cfg.retryBackoff

	return api.NewClient(api.Config{
		Host:       cfg.opts.Host,
		Protocol:   cfg.opts.Protocol,
		Port:       cfg.opts.Port,
		Version:    cfg.opts.Version,
		APIKey:     cfg.opts.Key,
		UserAgent:  userAgent,
		HTTPClient: cfg.httpClient,
		Retry:      retry,
		Logger:     cfg.logger,
	})
}

// resolve applies opts on top of base and validates the result.
func resolve(base clientConfig, opts []Option) (clientConfig, *api.Client, error) {
	for _, opt := range opts {
		opt(&base)
	}
	if err := base.opts.validate(); err != nil {
		return clientConfig{}, nil, err
	}
	if base.httpClient == nil {
		return clientConfig{}, nil, &ConfigurationError{Option: "http client", Message: "must not be nil", Err: ErrInvalidHTTPClient}
	}
	if base.logger == nil {
		base.logger = slog.New(slog.DiscardHandler)
	}

	apiClient, err := buildAPIClient(base)
	if err != nil {
		return clientConfig{}, nil, err
	}
	return base, apiClient, nil
}

// New creates a client for apiKey. The default transport is an AsyncClient,
// so asynchronous dispatch works out of the box.
func New(apiKey string, opts ...Option) (*Client, error) {
	base := clientConfig{
		opts:       DefaultOptions(),
		httpClient: NewAsyncClient(nil),
	}
	base.opts.Key = apiKey

	cfg, apiClient, err := resolve(base, opts)
	if err != nil {
		return nil, err
	}

	c := &Client{cfg: cfg, apiClient: apiClient}
	c.Transmissions = &Transmissions{Resource: c.Resource("transmissions")}
	return c, nil
}

// Options returns a copy of the current options.
func (c *Client) Options() Options {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.opts
}

// SetOptions applies opts to a copy of the current configuration and swaps
// it in. When the result is invalid, for example because the key is blank,
// the error is returned and the previous configuration stays in effect.
// Requests already in flight keep the configuration they started with.
func (c *Client) SetOptions(opts ...Option) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cfg, apiClient, err := resolve(c.cfg, opts)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.apiClient = apiClient
	return nil
}

// SetHTTPClient replaces the transport.
func (c *Client) SetHTTPClient(client HTTPClient) error {
	if client == nil {
		return &ConfigurationError{Option: "http client", Message: "must not be nil", Err: ErrInvalidHTTPClient}
	}
	return c.SetOptions(WithHTTPClient(client))
}

// HTTPClient returns the current transport.
func (c *Client) HTTPClient() HTTPClient {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.httpClient
}

// snapshot returns the configuration a single request runs with.
func (c *Client) snapshot() (Options, *api.Client) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.opts, c.apiClient
}

// Resource returns the generic verb surface for endpoint, such as
// "templates" or "sending-domains".
func (c *Client) Resource(endpoint string) *Resource {
	return &Resource{client: c, endpoint: endpoint}
}
