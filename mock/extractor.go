package mock

import (
	"context"

	"github.com/amontero/boletin"
)

var _ boletin.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of boletin.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, url string) (string, error)
}

func (f *PageFetcher) FetchPage(ctx context.Context, url string) (string, error) {
	return f.FetchPageFn(ctx, url)
}

var _ boletin.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of boletin.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ boletin.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of boletin.PageStore.
type PageStore struct {
	StoreFn func(name, text string) (string, error)
}

func (s *PageStore) Store(name, text string) (string, error) {
	return s.StoreFn(name, text)
}
