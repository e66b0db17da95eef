package vector_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amontero/boletin"
	"github.com/amontero/boletin/mock"
	"github.com/amontero/boletin/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingEmbedder returns a deterministic 2-dimensional vector per
// segment: the running segment ordinal, so order is observable.
func countingEmbedder() *mock.Embedder {
	var n float32
	return &mock.Embedder{
		DimensionsFn: func() int { return 2 },
		EmbedFn: func(ctx context.Context, texts []string) ([][]float32, error) {
			out := make([][]float32, len(texts))
			for i := range texts {
				out[i] = []float32{n, float32(len(texts[i]))}
				n++
			}
			return out, nil
		},
	}
}

func TestBuilder_Update(t *testing.T) {
	t.Parallel()

	t.Run("appends vectors in record-then-segment order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		builder := &vector.Builder{Dir: dir, Embedder: countingEmbedder()}

		result, err := builder.Update(context.Background(), []boletin.ArticleSummary{
			{ID: "BOE-A-2025-00001", Title: "Uno", Text: "Parrafo unico."},
			{ID: "BOE-A-2025-00002", Title: "Dos", Text: "Primero.\nSegundo."},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Articles)
		assert.Equal(t, 3, result.Segments)
		assert.Equal(t, 3, result.Total)

		idx, err := vector.Load(dir, 2)
		require.NoError(t, err)
		require.Equal(t, 3, idx.Len())
		assert.Equal(t, []vector.Entry{
			{ArticleID: "BOE-A-2025-00001", Title: "Uno"},
			{ArticleID: "BOE-A-2025-00002", Title: "Dos"},
			{ArticleID: "BOE-A-2025-00002", Title: "Dos"},
		}, idx.Entries())
	})

	t.Run("skips records with no segments", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		builder := &vector.Builder{Dir: dir, Embedder: countingEmbedder()}

		result, err := builder.Update(context.Background(), []boletin.ArticleSummary{
			{ID: "BOE-A-2025-00001", Title: "Vacio", Text: "   \n\t\n "},
		})
		require.NoError(t, err)
		assert.Zero(t, result.Articles)
		assert.Zero(t, result.Segments)
		assert.Zero(t, result.Total)

		idx, err := vector.Load(dir, 2)
		require.NoError(t, err)
		assert.Zero(t, idx.Len(), "no placeholder vector or sidecar entry for empty records")
	})

	t.Run("accumulates across passes", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		builder := &vector.Builder{Dir: dir, Embedder: countingEmbedder()}
		ctx := context.Background()

		_, err := builder.Update(ctx, []boletin.ArticleSummary{
			{ID: "BOE-A-2025-00001", Title: "Uno", Text: "Parrafo."},
		})
		require.NoError(t, err)

		result, err := builder.Update(ctx, []boletin.ArticleSummary{
			{ID: "BOE-A-2025-00002", Title: "Dos", Text: "Otro parrafo."},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
	})

	t.Run("embed failure aborts the pass without touching disk", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		ctx := context.Background()

		builder := &vector.Builder{Dir: dir, Embedder: countingEmbedder()}
		_, err := builder.Update(ctx, []boletin.ArticleSummary{
			{ID: "BOE-A-2025-00001", Title: "Uno", Text: "Parrafo."},
		})
		require.NoError(t, err)

		failing := &vector.Builder{Dir: dir, Embedder: &mock.Embedder{
			DimensionsFn: func() int { return 2 },
			EmbedFn: func(ctx context.Context, texts []string) ([][]float32, error) {
				return nil, errors.New("embedding service down")
			},
		}}
		_, err = failing.Update(ctx, []boletin.ArticleSummary{
			{ID: "BOE-A-2025-00002", Title: "Dos", Text: "Otro."},
		})
		require.Error(t, err)

		idx, err := vector.Load(dir, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, idx.Len(), "failed pass must leave prior index intact")
	})
}

func TestBuilder_Search(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	embedder := &mock.Embedder{
		DimensionsFn: func() int { return 2 },
		EmbedFn: func(ctx context.Context, texts []string) ([][]float32, error) {
			out := make([][]float32, len(texts))
			for i, text := range texts {
				// Place "impuestos" texts near (1,0), everything else near (0,1).
				if len(text)%2 == 0 {
					out[i] = []float32{1, 0}
				} else {
					out[i] = []float32{0, 1}
				}
			}
			return out, nil
		},
	}

	builder := &vector.Builder{Dir: dir, Embedder: embedder}
	_, err := builder.Update(ctx, []boletin.ArticleSummary{
		{ID: "BOE-A-2025-00001", Title: "Par", Text: "ab"},
		{ID: "BOE-A-2025-00002", Title: "Impar", Text: "abc"},
	})
	require.NoError(t, err)

	results, err := builder.Search(ctx, "xy", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "BOE-A-2025-00001", results[0].Entry.ArticleID)
}
