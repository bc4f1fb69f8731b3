package sparkpost

import (
	"log/slog"
	"strings"
	"time"
)

const (
	// DefaultHost is the production API host.
	DefaultHost = "api.sparkpost.com"
	// DefaultProtocol is the scheme used to reach the API.
	DefaultProtocol = "https"
	// DefaultPort is the port placed in request URLs.
	DefaultPort = 443
	// DefaultVersion is the API version path segment.
	DefaultVersion = "v1"
	// DefaultTimeout bounds a single round trip of the default HTTP client.
	DefaultTimeout = 30 * time.Second
)

// Options holds the settings read by every request.
type Options struct {
	Host     string
	Protocol string
	// Port is omitted from request URLs when zero.
	Port    int
	Key     string
	Version string
	// Async selects promise-based dispatch in Client.Request.
	Async bool
	// Debug attaches the request values to every Response and ClientError.
	Debug bool
	// Retries is the number of extra attempts made after a 5xx response.
	Retries int
}

// DefaultOptions returns the options applied before any Option.
func DefaultOptions() Options {
	return Options{
		Host:     DefaultHost,
		Protocol: DefaultProtocol,
		Port:     DefaultPort,
		Version:  DefaultVersion,
		Async:    true,
	}
}

func (o Options) validate() error {
	if strings.TrimSpace(o.Key) == "" {
		return &ConfigurationError{Option: "key", Message: "must not be blank", Err: ErrMissingAPIKey}
	}
	if strings.TrimSpace(o.Host) == "" {
		return &ConfigurationError{Option: "host", Message: "must not be empty"}
	}
	switch o.Protocol {
	case "http", "https":
	default:
		return &ConfigurationError{Option: "protocol", Message: "must be http or https, got " + o.Protocol}
	}
	if o.Port < 0 || o.Port > 65535 {
		return &ConfigurationError{Option: "port", Message: "out of range"}
	}
	if o.Retries < 0 {
		return &ConfigurationError{Option: "retries", Message: "must not be negative"}
	}
	return nil
}

// clientConfig is the full configuration of a Client, replaced wholesale on
// every update.
type clientConfig struct {
	opts         Options
	httpClient   HTTPClient
	logger       *slog.Logger
	retryBackoff time.Duration
}

// Option configures the client.
type Option func(*clientConfig)

// WithKey sets the API key.
func WithKey(key string) Option {
	return func(c *clientConfig) {
		c.opts.Key = key
	}
}

// WithHost sets the API host.
func WithHost(host string) Option {
	return func(c *clientConfig) {
		c.opts.Host = host
	}
}

// WithProtocol sets the URL scheme, http or https.
func WithProtocol(protocol string) Option {
	return func(c *clientConfig) {
		c.opts.Protocol = protocol
	}
}

// WithPort sets the port. Zero omits it from request URLs.
func WithPort(port int) Option {
	return func(c *clientConfig) {
		c.opts.Port = port
	}
}

// WithVersion sets the API version path segment.
func WithVersion(version string) Option {
	return func(c *clientConfig) {
		c.opts.Version = version
	}
}

// WithAsync selects the dispatch mode used by Client.Request.
func WithAsync(async bool) Option {
	return func(c *clientConfig) {
		c.opts.Async = async
	}
}

// WithDebug attaches request values to responses and errors.
func WithDebug(debug bool) Option {
	return func(c *clientConfig) {
		c.opts.Debug = debug
	}
}

// WithRetries sets how many times a request is re-sent after a 5xx response.
// Default: 0
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.opts.Retries = count
	}
}

// WithRetryBackoff sets the delay before the first retry; later retries
// double it. Default: 0 (retries are sent back to back)
func WithRetryBackoff(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.retryBackoff = delay
	}
}

// WithHTTPClient sets the transport. Clients that also implement
// AsyncHTTPClient enable asynchronous dispatch.
func WithHTTPClient(client HTTPClient) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithOptions applies every field of opts at once.
func WithOptions(opts Options) Option {
	return func(c *clientConfig) {
		c.opts = opts
	}
}
