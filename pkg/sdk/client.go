package cybersearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// WithAPIKey sets the bearer token sent with every request.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = key
	})
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient.Timeout = d
	})
}

// WithLogger enables debug logging of requests.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = logger
	})
}

// Client talks to a cybersearch API server.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.apiKey,
		httpClient: cfg.httpClient,
		logger:     cfg.logger,
	}
}

// GenerateVectors builds a batch of search vectors on the server.
func (c *Client) GenerateVectors(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	var resp GenerateResponse
	if err := c.post(ctx, "/api/v1/vectors", req, &resp); err != nil {
		return GenerateResponse{}, err
	}
	return resp, nil
}

// Health reports whether the server answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	var resp healthResponse
	if err := c.get(ctx, "/health", &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return fmt.Errorf("cybersearch: health status %q", resp.Status)
	}
	return nil
}

// Version fetches the server build metadata.
func (c *Client) Version(ctx context.Context) (VersionInfo, error) {
	var resp VersionInfo
	if err := c.get(ctx, "/version", &resp); err != nil {
		return VersionInfo{}, err
	}
	return resp, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("cybersearch: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("cybersearch: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("cybersearch: build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	c.logger.Debug("api request", "method", req.Method, "path", req.URL.Path)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cybersearch: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= http.StatusBadRequest {
		return c.apiError(res)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("cybersearch: decode response: %w", err)
	}
	return nil
}

// apiError turns an error response into *APIError. A body that is not
// the documented error shape still yields a usable error.
func (c *Client) apiError(res *http.Response) error {
	var er errorResponse
	if err := json.NewDecoder(res.Body).Decode(&er); err != nil || er.Code == "" {
		return &APIError{
			StatusCode: res.StatusCode,
			Code:       ErrorCodeInternalError,
			Message:    http.StatusText(res.StatusCode),
		}
	}
	return &APIError{
		StatusCode: res.StatusCode,
		Code:       ErrorCode(er.Code),
		Message:    er.Message,
	}
}
