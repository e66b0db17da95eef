package vector

import (
	"context"
	"fmt"

	"github.com/amontero/boletin"
)

// Builder maintains the on-disk index from stored article records.
//
// Update is a load, mutate in memory, persist-whole operation: it is
// not safe for concurrent invocation against the same directory.
// Callers must serialize updates to a given index location.
type Builder struct {
	Dir      string
	Embedder boletin.Embedder
}

// UpdateResult summarizes one indexing pass.
type UpdateResult struct {
	// Articles is the number of records that produced segments.
	Articles int

	// Segments is the number of vectors appended by this pass.
	Segments int

	// Total is the index size after the pass.
	Total int
}

// Update segments and embeds each record's text and appends the
// resulting vectors and sidecar entries, in record-then-segment order.
// Records whose text segments to nothing are skipped entirely. The
// index is persisted once, after every record succeeded; any failure
// aborts the pass and leaves the prior on-disk state untouched.
func (b *Builder) Update(ctx context.Context, summaries []boletin.ArticleSummary) (*UpdateResult, error) {
	idx, err := Load(b.Dir, b.Embedder.Dimensions())
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}

	result := &UpdateResult{}
	for _, summary := range summaries {
		segments := boletin.SegmentText(boletin.CleanText(summary.Text))
		if len(segments) == 0 {
			continue
		}

		vectors, err := b.Embedder.Embed(ctx, segments)
		if err != nil {
			return nil, fmt.Errorf("embed article %s: %w", summary.ID, err)
		}

		entries := make([]Entry, len(vectors))
		for i := range vectors {
			entries[i] = Entry{ArticleID: summary.ID, Title: summary.Title}
		}
		if err := idx.Add(vectors, entries); err != nil {
			return nil, fmt.Errorf("append article %s: %w", summary.ID, err)
		}

		result.Articles++
		result.Segments += len(vectors)
	}

	if err := idx.Save(b.Dir); err != nil {
		return nil, fmt.Errorf("persist index: %w", err)
	}

	result.Total = idx.Len()
	return result, nil
}

// Search embeds the query and returns the k nearest sidecar entries
// from the persisted index.
func (b *Builder) Search(ctx context.Context, query string, k int) ([]Result, error) {
	idx, err := Load(b.Dir, b.Embedder.Dimensions())
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}

	vectors, err := b.Embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, boletin.Errorf(boletin.EINTERNAL, "embedder returned %d vectors for one query", len(vectors))
	}

	return idx.Search(vectors[0], k)
}
