package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sparkpost/client-go/future"
	"github.com/sparkpost/client-go/internal/apierrors"
)

// Doer sends a request and blocks until the response arrives.
// *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// AsyncDoer sends a request without blocking.
type AsyncDoer interface {
	DoAsync(req *http.Request) *future.Future[*http.Response]
}

// Config holds everything needed to build and dispatch requests.
// A Config is treated as immutable once passed to NewClient.
type Config struct {
	Host      string
	Protocol  string
	Port      int
	Version   string
	APIKey    string
	UserAgent string

	HTTPClient Doer
	Retry      *RetryConfig
	Logger     *slog.Logger
}

// Client builds requests against the versioned API and dispatches them.
type Client struct {
	cfg         Config
	httpClient  Doer
	retry       *RetryConfig
	logger      *slog.Logger
	fingerprint string
}

// NewClient creates a new API client from cfg.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &apierrors.ConfigurationError{Option: "key", Message: "must not be blank", Err: apierrors.ErrMissingAPIKey}
	}
	if cfg.HTTPClient == nil {
		return nil, apierrors.ErrInvalidHTTPClient
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("host is required")
	}

	retry := cfg.Retry
	if retry == nil {
		retry = DefaultRetryConfig()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		cfg:         cfg,
		httpClient:  cfg.HTTPClient,
		retry:       retry,
		logger:      logger,
		fingerprint: KeyFingerprint(cfg.APIKey),
	}, nil
}

// HTTPClient returns the client used to send requests.
func (c *Client) HTTPClient() Doer {
	return c.httpClient
}

// SupportsAsync reports whether the HTTP client can send without blocking.
func (c *Client) SupportsAsync() bool {
	_, ok := c.httpClient.(AsyncDoer)
	return ok
}
