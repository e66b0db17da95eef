package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/amontero/boletin"
)

// Ensure LoggingArticleService implements boletin.ArticleService.
var _ boletin.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with debug logging.
type LoggingArticleService struct {
	next   boletin.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next boletin.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

// Exists delegates to the wrapped service.
func (s *LoggingArticleService) Exists(ctx context.Context, id string) (bool, error) {
	return s.next.Exists(ctx, id)
}

// Upsert delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) Upsert(ctx context.Context, article *boletin.Article) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("upsert article",
			"id", article.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Upsert(ctx, article)
}

// FindArticleByID delegates to the wrapped service.
func (s *LoggingArticleService) FindArticleByID(ctx context.Context, id string) (*boletin.Article, error) {
	return s.next.FindArticleByID(ctx, id)
}

// FindArticles delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) FindArticles(ctx context.Context) (summaries []boletin.ArticleSummary, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find articles",
			"count", len(summaries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindArticles(ctx)
}
