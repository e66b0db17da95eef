package mock

import (
	"context"

	"github.com/amontero/boletin"
)

var _ boletin.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of boletin.ArticleService.
type ArticleService struct {
	ExistsFn          func(ctx context.Context, id string) (bool, error)
	UpsertFn          func(ctx context.Context, article *boletin.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*boletin.Article, error)
	FindArticlesFn    func(ctx context.Context) ([]boletin.ArticleSummary, error)
}

func (s *ArticleService) Exists(ctx context.Context, id string) (bool, error) {
	return s.ExistsFn(ctx, id)
}

func (s *ArticleService) Upsert(ctx context.Context, article *boletin.Article) error {
	return s.UpsertFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*boletin.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context) ([]boletin.ArticleSummary, error) {
	return s.FindArticlesFn(ctx)
}
