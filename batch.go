package cybersearch

import (
	"context"

	"github.com/enotkrutoy/CyberSearch/internal/domain/diagnostic"
	"github.com/enotkrutoy/CyberSearch/internal/domain/vector"
)

// BatchBuilder is a fluent builder for one batch generation.
type BatchBuilder struct {
	client *Client

	term    string
	vectors int
	density int
	page    int
}

// Vectors sets the number of vectors to build (1-20, clamped).
func (b *BatchBuilder) Vectors(n int) *BatchBuilder {
	b.vectors = n
	return b
}

// Density sets the iteration density of the primary vector
// (128-1024, clamped).
func (b *BatchBuilder) Density(n int) *BatchBuilder {
	b.density = n
	return b
}

// Page sets the result page offset (0-9, clamped).
func (b *BatchBuilder) Page(n int) *BatchBuilder {
	b.page = n
	return b
}

// Do builds the batch.
func (b *BatchBuilder) Do(ctx context.Context) (Result, error) {
	params := vector.NewParams(b.vectors, b.density, b.page)
	result, err := b.client.svc.Generate(ctx, b.term, params)
	if err != nil {
		return Result{}, err
	}
	return toResult(result), nil
}

// Launch builds the batch and opens the primary vector in the local
// browser. A failed launch does not invalidate the batch: the result is
// returned with a popup-blocked diagnostic appended.
func (b *BatchBuilder) Launch(ctx context.Context) (Result, error) {
	result, err := b.Do(ctx)
	if err != nil {
		return Result{}, err
	}
	if err := b.client.launcher.Open(result.Vectors[0].URL); err != nil {
		d := diagnostic.New(diagnostic.PopupBlocked, err.Error())
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Kind: Kind(d.Kind()),
			Text: d.Text(),
			At:   d.At(),
		})
	}
	return result, nil
}
