package veevavault

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/veevavault/client-go/internal/api"
	"github.com/veevavault/client-go/internal/apierrors"
)

// Credentials identify a Vault user. They are used once by Authenticate
// and not retained.
type Credentials struct {
	// Host is the versioned API base URL,
	// e.g. "https://myvault.veevavault.com/api/v13.0". Trailing slashes
	// are optional; the client normalizes to exactly one.
	Host     string
	Username string
	Password string
}

// Client is an authenticated Vault session. All operations are methods
// on the client; the session token is held by the client rather than in
// process-wide state, so independent sessions never interfere.
type Client struct {
	apiClient *api.Client
	logger    hclog.Logger
}

// Authenticate exchanges credentials for a session and returns a client
// bound to it. On failure no client is returned and the error matches
// ErrAuthenticationFailed via errors.Is.
func Authenticate(ctx context.Context, creds Credentials, opts ...Option) (*Client, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, apierrors.ErrMissingCredentials
	}

	cfg := &clientConfig{
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		Host:       creds.Host,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	if err := apiClient.Authenticate(ctx, creds.Username, creds.Password); err != nil {
		return nil, &AuthError{Host: apiClient.Host(), Err: wrapError(err)}
	}

	return &Client{
		apiClient: apiClient,
		logger:    cfg.logger,
	}, nil
}

// Host returns the normalized base URL the client was authenticated
// against. It always ends in exactly one "/".
func (c *Client) Host() string {
	return c.apiClient.Host()
}

// SessionID returns the opaque session token.
func (c *Client) SessionID() string {
	return c.apiClient.SessionID()
}
