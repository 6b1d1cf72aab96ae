package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/veevavault/client-go/internal/apierrors"
)

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

// Client is the HTTP API client. It holds the authenticated session:
// the normalized base host and the session id issued by the auth
// endpoint. The session id is written once by Authenticate and read by
// every other call.
type Client struct {
	host       string // always ends in exactly one "/"
	sessionID  string
	httpClient *http.Client
	logger     hclog.Logger
}

// Config configures the API client.
type Config struct {
	// Host is the versioned Vault API base URL,
	// e.g. "https://myvault.veevavault.com/api/v13.0". Trailing slashes
	// are normalized away and exactly one is appended.
	Host string

	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client

	// Timeout sets the default HTTP client timeout. Ignored when
	// HTTPClient is set.
	Timeout time.Duration

	// Logger receives diagnostic output. Success traces are emitted at
	// Debug, failure detail at Error. Defaults to a null logger.
	Logger hclog.Logger
}

// NormalizeHost trims surrounding whitespace and trailing slashes from
// host and appends exactly one trailing slash.
func NormalizeHost(host string) (string, error) {
	host = strings.TrimSpace(host)
	host = strings.TrimRight(host, "/")
	if host == "" {
		return "", apierrors.ErrMissingHost
	}
	return host + "/", nil
}

// NewClient creates an unauthenticated API client. Authenticate must be
// called before any other method.
func NewClient(cfg Config) (*Client, error) {
	host, err := NormalizeHost(cfg.Host)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Client{
		host:       host,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Host returns the normalized base URL, including the trailing slash.
func (c *Client) Host() string {
	return c.host
}

// SessionID returns the active session id, or "" before Authenticate.
func (c *Client) SessionID() string {
	return c.sessionID
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// File is a file attached to a multipart request.
type File struct {
	Field   string // form field name, usually "file"
	Name    string // filename reported to the service
	Content io.Reader
}

// call describes one Vault request. Method defaults to GET. Name and
// Args identify the originating operation for diagnostics and error
// tagging.
type call struct {
	method string
	path   string
	form   url.Values
	file   *File
	name   string
	args   string
	noAuth bool // only the auth call itself omits the session header
}

func (cl *call) httpMethod() string {
	if cl.method == "" {
		return http.MethodGet
	}
	return cl.method
}

// do performs a single Vault call: build the request from the shared
// template, execute it, decode the JSON envelope, and classify the
// result. result must embed Envelope.
func (c *Client) do(ctx context.Context, cl call, result enveloped) error {
	req, err := c.newRequest(ctx, &cl)
	if err != nil {
		return &apierrors.NetworkError{Method: cl.name, URL: c.host + cl.path, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apierrors.NetworkError{Method: cl.name, URL: c.host + cl.path, Err: err}
	}
	defer resp.Body.Close()

	if result == nil {
		result = &Envelope{}
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &apierrors.NetworkError{
			Method: cl.name,
			URL:    c.host + cl.path,
			Err:    fmt.Errorf("decode response (HTTP %d): %w", resp.StatusCode, err),
		}
	}

	return c.classify(cl.name, cl.args, result.envelope())
}

// newRequest builds the baseline request shape shared by every call:
// JSON accept header, session Authorization header, and a form or
// multipart body when the call carries one.
func (c *Client) newRequest(ctx context.Context, cl *call) (*http.Request, error) {
	var body io.Reader
	contentType := ""

	switch {
	case cl.file != nil:
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		for key, values := range cl.form {
			for _, v := range values {
				if err := w.WriteField(key, v); err != nil {
					return nil, fmt.Errorf("write form field %q: %w", key, err)
				}
			}
		}
		part, err := w.CreateFormFile(cl.file.Field, cl.file.Name)
		if err != nil {
			return nil, fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(part, cl.file.Content); err != nil {
			return nil, fmt.Errorf("read file content: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("finalize multipart body: %w", err)
		}
		body = buf
		contentType = w.FormDataContentType()
	case len(cl.form) > 0:
		body = strings.NewReader(cl.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	req, err := http.NewRequestWithContext(ctx, cl.httpMethod(), c.host+cl.path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if !cl.noAuth {
		if c.sessionID == "" {
			return nil, apierrors.ErrNotAuthenticated
		}
		req.Header.Set("Authorization", c.sessionID)
	}

	return req, nil
}
