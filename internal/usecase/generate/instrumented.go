package generate

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/enotkrutoy/CyberSearch/internal/domain/vector"
	"github.com/enotkrutoy/CyberSearch/internal/metrics"
)

// Instrumented wraps a Generator with logging and Prometheus metrics.
// Counters increment whether or not RegisterGenerationMetrics ran;
// registration is only required where /metrics is exposed.
type Instrumented struct {
	inner  Generator
	logger *zap.Logger
}

// NewInstrumented wraps a generator with observability.
func NewInstrumented(inner Generator, logger *zap.Logger) *Instrumented {
	return &Instrumented{inner: inner, logger: logger}
}

// Generate delegates to the inner generator and records the outcome.
func (g *Instrumented) Generate(ctx context.Context, rawTerm string, params vector.Params) (Result, error) {
	start := time.Now()

	res, err := g.inner.Generate(ctx, rawTerm, params)

	duration := time.Since(start)

	if err != nil {
		metrics.GenerationsTotal.WithLabelValues("refused").Inc()
		g.logger.Warn("Generation refused",
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return Result{}, fmt.Errorf("generate: %w", err)
	}

	metrics.GenerationsTotal.WithLabelValues("ok").Inc()
	metrics.GenerationDuration.Observe(duration.Seconds())
	metrics.VectorsBuiltTotal.Add(float64(len(res.Vectors)))
	for _, d := range res.Diagnostics {
		metrics.DiagnosticsTotal.WithLabelValues(string(d.Kind())).Inc()
	}

	g.logger.Debug("Generation completed",
		zap.String("generation_id", res.ID),
		zap.Int("vectors", len(res.Vectors)),
		zap.Int("diagnostics", len(res.Diagnostics)),
		zap.Duration("duration", duration),
	)

	return res, nil
}
