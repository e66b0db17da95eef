package boletin

import "context"

// Embedder computes fixed-dimensionality embedding vectors for text
// segments.
type Embedder interface {
	// Embed returns one vector per input text, in input order. Every
	// vector has exactly Dimensions() elements.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding dimensionality. It is fixed for
	// the lifetime of the embedder and determines the vector index
	// dimensionality at creation.
	Dimensions() int
}
