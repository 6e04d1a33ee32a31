package cybersearch

import (
	"context"
	"fmt"

	"github.com/enotkrutoy/CyberSearch/internal/browser"
	"github.com/enotkrutoy/CyberSearch/internal/domain/vector"
	"github.com/enotkrutoy/CyberSearch/internal/metrics"
	"github.com/enotkrutoy/CyberSearch/internal/usecase/generate"
)

// Client is the cybersearch SDK entry point.
type Client struct {
	svc      generate.Generator
	defaults vector.Params
	launcher *browser.Launcher
}

// New creates a Client. Without options it uses the built-in parameter
// defaults, no logging and the per-OS browser command.
func New(opts ...Option) *Client {
	cfg := defaultClientConfig()
	for _, o := range opts {
		o.apply(cfg)
	}

	var svc generate.Generator = generate.New()
	if cfg.logger != nil {
		metrics.RegisterGenerationMetrics()
		svc = generate.NewInstrumented(generate.New(), cfg.logger)
	}

	return &Client{
		svc:      svc,
		defaults: vector.NewParams(cfg.vectors, cfg.density, cfg.page),
		launcher: browser.New(cfg.browserCommand, cfg.browserDisabled),
	}
}

// Generate builds a batch for term with the client's default parameters.
func (c *Client) Generate(ctx context.Context, term string) (Result, error) {
	result, err := c.svc.Generate(ctx, term, c.defaults)
	if err != nil {
		return Result{}, err
	}
	return toResult(result), nil
}

// Batch starts a fluent builder for term, seeded with the client's
// default parameters.
func (c *Client) Batch(term string) *BatchBuilder {
	return &BatchBuilder{
		client:  c,
		term:    term,
		vectors: c.defaults.Vectors(),
		density: c.defaults.Density(),
		page:    c.defaults.Page(),
	}
}

// Open launches rawURL in the local browser. Only http and https URLs
// are accepted.
func (c *Client) Open(rawURL string) error {
	if err := c.launcher.Open(rawURL); err != nil {
		return fmt.Errorf("open: %w", err)
	}
	return nil
}
