package cybersearch

import (
	"go.uber.org/zap"

	"github.com/enotkrutoy/CyberSearch/internal/domain/vector"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	vectors int
	density int
	page    int

	logger *zap.Logger

	browserCommand  string
	browserDisabled bool
}

// WithDefaults sets the parameters used by Generate and as the builder
// starting point. Out-of-range values are clamped.
func WithDefaults(vectors, density, page int) Option {
	return optionFunc(func(c *clientConfig) {
		c.vectors = vectors
		c.density = density
		c.page = page
	})
}

// WithLogger enables structured logging and metrics for every batch.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = logger
	})
}

// WithBrowserCommand overrides the per-OS browser launch command.
func WithBrowserCommand(command string) Option {
	return optionFunc(func(c *clientConfig) {
		c.browserCommand = command
	})
}

// WithoutBrowser disables browser launching. Launch still builds the
// batch and reports the refusal as a popup-blocked diagnostic.
func WithoutBrowser() Option {
	return optionFunc(func(c *clientConfig) {
		c.browserDisabled = true
	})
}

func defaultClientConfig() *clientConfig {
	return &clientConfig{
		vectors: vector.DefaultVectors,
		density: vector.DefaultDensity,
		page:    vector.DefaultPage,
	}
}
