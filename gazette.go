package boletin

import "context"

// GazetteClient retrieves gazette markup from the official BOE API.
// Implementations own the retry contract for transient failures; a day
// with no publication is a legitimate empty result, not an error.
type GazetteClient interface {
	// FetchDayIndex retrieves the raw XML publication index for a date.
	// Returns an empty string when the gazette was not published that
	// day. A successful response that is not XML-flavored is an EINVALID
	// error and is never retried.
	FetchDayIndex(ctx context.Context, date Date) (string, error)

	// FetchArticle retrieves one article's raw XML by identifier.
	// A missing article is always an error.
	FetchArticle(ctx context.Context, id string) (string, error)

	// ArticleXMLURL returns the canonical XML URL for an article.
	ArticleXMLURL(id string) string

	// ArticlePDFURL returns the canonical PDF URL for an article
	// published on the given date. The PDF is referenced, never fetched.
	ArticlePDFURL(id string, date Date) string
}

// IndexParser extracts article identifiers from a day's publication
// index markup.
type IndexParser interface {
	// ExtractArticleIDs scans the entire markup tree, attribute values
	// and text content alike, for article identifiers and returns the
	// deduplicated set. Order is not significant.
	ExtractArticleIDs(markup string) ([]string, error)
}

// ArticleParser parses one article's markup into a structured record.
type ArticleParser interface {
	// ParseArticle extracts the article fields from raw XML. Missing
	// optional fields and blocks yield empty defaults, not errors.
	ParseArticle(markup string) (*Article, error)
}
