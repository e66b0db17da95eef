// Package slog provides logging decorators for the domain services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/amontero/boletin"
)

// Ensure LoggingGazetteClient implements boletin.GazetteClient.
var _ boletin.GazetteClient = (*LoggingGazetteClient)(nil)

// LoggingGazetteClient wraps a GazetteClient with debug logging.
type LoggingGazetteClient struct {
	next   boletin.GazetteClient
	logger *slog.Logger
}

// NewLoggingGazetteClient creates a new LoggingGazetteClient.
func NewLoggingGazetteClient(next boletin.GazetteClient, logger *slog.Logger) *LoggingGazetteClient {
	return &LoggingGazetteClient{next: next, logger: logger}
}

// FetchDayIndex delegates to the wrapped client and logs the operation.
func (c *LoggingGazetteClient) FetchDayIndex(ctx context.Context, date boletin.Date) (markup string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("fetch day index",
			"date", date.ISO(),
			"published", markup != "",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.FetchDayIndex(ctx, date)
}

// FetchArticle delegates to the wrapped client and logs the operation.
func (c *LoggingGazetteClient) FetchArticle(ctx context.Context, id string) (markup string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("fetch article",
			"id", id,
			"bytes", len(markup),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.FetchArticle(ctx, id)
}

// ArticleXMLURL delegates to the wrapped client.
func (c *LoggingGazetteClient) ArticleXMLURL(id string) string {
	return c.next.ArticleXMLURL(id)
}

// ArticlePDFURL delegates to the wrapped client.
func (c *LoggingGazetteClient) ArticlePDFURL(id string, date boletin.Date) string {
	return c.next.ArticlePDFURL(id, date)
}
