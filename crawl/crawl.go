// Package crawl orchestrates the ingestion of one gazette day:
// publication index fetch, identifier extraction, concurrent article
// download and parse, and serialized storage.
package crawl

import (
	"context"
	"fmt"

	"github.com/amontero/boletin"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultConcurrency is the number of article workers when Crawler.Concurrency is unset.
const DefaultConcurrency = 4

// Crawler ingests one gazette day into article storage.
type Crawler struct {
	Gazette  boletin.GazetteClient
	Index    boletin.IndexParser
	Parser   boletin.ArticleParser
	Articles boletin.ArticleService

	// Limiter paces article downloads across all workers. Optional.
	Limiter *rate.Limiter

	Concurrency int
}

// Result holds the outcome of a day's ingestion.
type Result struct {
	// Found is the number of identifiers in the day's publication index.
	Found int

	// Saved counts articles fetched, parsed, and stored by this run.
	Saved int

	// Skipped counts articles already stored by a previous run.
	Skipped int

	// Failed counts articles whose fetch, parse, or store failed. A
	// failed article never aborts the day.
	Failed int
}

// ProgressEvent reports progress during a day's ingestion.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	ArticleID string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting ingestion progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single article.
type crawlResult struct {
	id      string
	article *boletin.Article
	err     error
}

// CrawlDay ingests every article published on date. Articles already in
// storage are skipped without refetching. A failure on the publication
// index is fatal; a failure on an individual article is recorded and
// the run continues. The progress callback, if provided, receives
// events as ingestion proceeds.
func (c *Crawler) CrawlDay(ctx context.Context, date boletin.Date, progress ProgressFunc) (*Result, error) {
	markup, err := c.Gazette.FetchDayIndex(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetch day index %s: %w", date.Compact(), err)
	}
	if markup == "" {
		// No gazette published that day.
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFinished})
		}
		return &Result{}, nil
	}

	ids, err := c.Index.ExtractArticleIDs(markup)
	if err != nil {
		return nil, fmt.Errorf("extract article ids %s: %w", date.Compact(), err)
	}

	result := &Result{Found: len(ids)}

	// Filter out already-stored articles before spinning up workers.
	var pending []string
	for _, id := range ids {
		exists, err := c.Articles.Exists(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("check article %s: %w", id, err)
		}
		if exists {
			result.Skipped++
			continue
		}
		pending = append(pending, id)
	}

	total := len(pending)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}
	if total == 0 {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFinished, Total: total})
		}
		return result, nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan crawlResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, id := range pending {
			g.Go(func() error {
				resultCh <- c.processArticle(gctx, date, id)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Upserts happen only on this goroutine, so storage writes are
	// serialized no matter how many workers are fetching.
	var completed int
	for r := range resultCh {
		completed++

		if r.err == nil {
			r.err = c.Articles.Upsert(ctx, r.article)
		}
		if r.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     total,
					ArticleID: r.id,
					Error:     r.err,
				})
			}
			continue
		}

		result.Saved++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				ArticleID: r.id,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// processArticle fetches and parses a single article.
func (c *Crawler) processArticle(ctx context.Context, date boletin.Date, id string) crawlResult {
	result := crawlResult{id: id}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			result.err = err
			return result
		}
	}

	markup, err := c.Gazette.FetchArticle(ctx, id)
	if err != nil {
		result.err = err
		return result
	}

	article, err := c.Parser.ParseArticle(markup)
	if err != nil {
		result.err = err
		return result
	}

	// The index identifier is authoritative over whatever the article
	// markup carries.
	article.ID = id
	article.Date = date.ISO()
	article.URLXML = c.Gazette.ArticleXMLURL(id)
	article.URLPDF = c.Gazette.ArticlePDFURL(id, date)

	result.article = article
	return result
}
