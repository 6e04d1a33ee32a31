package generate

import (
	"context"

	"github.com/enotkrutoy/CyberSearch/internal/domain/vector"
)

// Generator produces vector batches from raw search phrases.
// Service is the plain implementation; Instrumented decorates it with
// logging and metrics.
type Generator interface {
	Generate(ctx context.Context, rawTerm string, params vector.Params) (Result, error)
}
