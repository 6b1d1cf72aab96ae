package veevavault

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     hclog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout. Ignored when a custom HTTP
// client is supplied. There is no per-operation timeout beyond this and
// the caller's context deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the diagnostic sink. Successful-call traces are
// emitted at Debug level, so a logger at Debug acts as the verbose
// mode; structured failure detail is emitted at Error level and is
// visible on any non-null logger.
func WithLogger(logger hclog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
