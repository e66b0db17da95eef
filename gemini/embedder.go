// Package gemini provides text embeddings using the Google Gemini API.
package gemini

import (
	"context"

	"github.com/amontero/boletin"
	"google.golang.org/genai"
)

const embeddingModel = "gemini-embedding-001"

// embeddingDimensions is the vector width requested from the model.
// Every index built with this embedder shares this dimensionality.
const embeddingDimensions = 768

// Ensure Embedder implements boletin.Embedder at compile time.
var _ boletin.Embedder = (*Embedder)(nil)

// Embedder implements boletin.Embedder using Google Gemini.
type Embedder struct {
	client *genai.Client
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *genai.Client) *Embedder {
	return &Embedder{client: client}
}

// Dimensions returns the width of the vectors Embed produces.
func (e *Embedder) Dimensions() int {
	return embeddingDimensions
}

// Embed returns one vector per input text, in input order, from a
// single batched API call.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = &genai.Content{Parts: []*genai.Part{{Text: text}}}
	}

	dim := int32(embeddingDimensions)
	result, err := e.client.Models.EmbedContent(ctx, embeddingModel, contents, &genai.EmbedContentConfig{
		OutputDimensionality: &dim,
	})
	if err != nil {
		return nil, err
	}

	var got int
	if result != nil {
		got = len(result.Embeddings)
	}
	if got != len(texts) {
		return nil, boletin.Errorf(boletin.EINTERNAL, "gemini returned %d embeddings for %d texts", got, len(texts))
	}

	vectors := make([][]float32, len(texts))
	for i, embedding := range result.Embeddings {
		if embedding == nil || len(embedding.Values) != embeddingDimensions {
			return nil, boletin.Errorf(boletin.EINTERNAL, "gemini returned a malformed embedding at position %d", i)
		}
		vectors[i] = embedding.Values
	}

	return vectors, nil
}
