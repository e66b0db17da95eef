// Package vector maintains a local vector similarity index with a
// row-aligned metadata sidecar. The vector store is a flat matrix of
// fixed dimensionality; the sidecar holds one entry per row, in row
// order, identifying the article and segment the vector came from.
package vector

import (
	"sort"

	"github.com/amontero/boletin"
)

// Entry is the sidecar record aligned with one vector row.
type Entry struct {
	ArticleID string `json:"id"`
	Title     string `json:"title"`
}

// Result is one similarity search match.
type Result struct {
	Entry    Entry
	Distance float32
}

// Index is an in-memory flat vector index. The dimensionality is fixed
// at creation. Mutations happen in memory only; persistence is a whole
// load/save cycle (see Load and Save).
type Index struct {
	dim     int
	data    []float32
	entries []Entry
}

// New creates an empty index at the given dimensionality.
func New(dim int) (*Index, error) {
	if dim <= 0 {
		return nil, boletin.Errorf(boletin.EINVALID, "index dimensionality must be positive, got %d", dim)
	}
	return &Index{dim: dim}, nil
}

// Dim returns the index dimensionality.
func (x *Index) Dim() int {
	return x.dim
}

// Len returns the number of vectors in the index. It always equals the
// sidecar length.
func (x *Index) Len() int {
	return len(x.entries)
}

// Entries returns a copy of the sidecar in row order. Mutating the
// returned slice does not affect the index.
func (x *Index) Entries() []Entry {
	out := make([]Entry, len(x.entries))
	copy(out, x.entries)
	return out
}

// Add appends vectors with their sidecar entries, preserving order.
// The two slices must be aligned one-to-one and every vector must match
// the index dimensionality.
func (x *Index) Add(vectors [][]float32, entries []Entry) error {
	if len(vectors) != len(entries) {
		return boletin.Errorf(boletin.EINVALID, "got %d vectors for %d sidecar entries", len(vectors), len(entries))
	}
	for _, v := range vectors {
		if len(v) != x.dim {
			return boletin.Errorf(boletin.EINVALID, "vector dimensionality %d does not match index dimensionality %d", len(v), x.dim)
		}
	}
	for i, v := range vectors {
		x.data = append(x.data, v...)
		x.entries = append(x.entries, entries[i])
	}
	return nil
}

// Search returns the k entries nearest to query by squared L2 distance,
// closest first. Fewer than k results are returned when the index is
// smaller than k.
func (x *Index) Search(query []float32, k int) ([]Result, error) {
	if len(query) != x.dim {
		return nil, boletin.Errorf(boletin.EINVALID, "query dimensionality %d does not match index dimensionality %d", len(query), x.dim)
	}
	if k <= 0 {
		return nil, boletin.Errorf(boletin.EINVALID, "result count must be positive, got %d", k)
	}

	results := make([]Result, 0, x.Len())
	for i, entry := range x.entries {
		row := x.data[i*x.dim : (i+1)*x.dim]
		var dist float32
		for j, q := range query {
			d := row[j] - q
			dist += d * d
		}
		results = append(results, Result{Entry: entry, Distance: dist})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}
