package mock

import (
	"context"

	"github.com/amontero/boletin"
)

var _ boletin.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of boletin.Embedder.
type Embedder struct {
	EmbedFn      func(ctx context.Context, texts []string) ([][]float32, error)
	DimensionsFn func() int
}

func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedFn(ctx, texts)
}

func (e *Embedder) Dimensions() int {
	return e.DimensionsFn()
}
