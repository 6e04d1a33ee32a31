package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/enotkrutoy/CyberSearch/internal/domain"
	"github.com/enotkrutoy/CyberSearch/internal/domain/diagnostic"
	"github.com/enotkrutoy/CyberSearch/internal/domain/query"
	"github.com/enotkrutoy/CyberSearch/internal/domain/vector"
)

// Result is the outcome of one generation.
type Result struct {
	ID          string
	Term        string
	Params      vector.Params
	Vectors     []vector.Vector
	Diagnostics []diagnostic.Diagnostic
	Elapsed     time.Duration
}

// Service turns raw search phrases into vector batches.
type Service struct{}

// New creates a generation service.
func New() *Service {
	return &Service{}
}

// Generate sanitizes and syntax-checks the raw term, then builds the
// full vector batch. Findings along the way are collected as advisory
// diagnostics; the only refusal is a term that is empty once sanitized.
func (s *Service) Generate(ctx context.Context, rawTerm string, params vector.Params) (Result, error) {
	start := time.Now()

	var diags []diagnostic.Diagnostic

	term := query.Sanitize(rawTerm)
	if term != rawTerm {
		diags = append(diags, diagnostic.New(diagnostic.Sanitized,
			"input characters removed or replaced during sanitization"))
	}
	if term == "" {
		return Result{}, domain.ErrEmptyTerm
	}

	if !query.IsBalanced(term) {
		term = query.ProcessTerm(term)
		diags = append(diags, diagnostic.New(diagnostic.UnbalancedSyntax,
			"term failed the balance check, parentheses escaped"))
	}

	if params.Density() > diagnostic.DensityRiskThreshold {
		diags = append(diags, diagnostic.New(diagnostic.DensityRisk,
			fmt.Sprintf("density %d above advisory threshold %d",
				params.Density(), diagnostic.DensityRiskThreshold)))
	}

	return Result{
		ID:          uuid.NewString(),
		Term:        term,
		Params:      params,
		Vectors:     vector.Build(term, params),
		Diagnostics: diags,
		Elapsed:     time.Since(start),
	}, nil
}
