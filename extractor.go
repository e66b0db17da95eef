package boletin

import "context"

// PageFetcher retrieves a page by absolute URL.
// Used by the ad-hoc scrape command, not by the gazette pipeline.
type PageFetcher interface {
	// FetchPage retrieves the raw body of url.
	FetchPage(ctx context.Context, url string) (string, error)
}

// TextExtractor extracts visible text from an HTML page.
// Used by the ad-hoc scrape command, not by the gazette pipeline.
type TextExtractor interface {
	// ExtractText parses raw HTML and returns its visible text with
	// scripts and styles removed.
	ExtractText(html string) (string, error)
}

// PageStore persists raw scraped text under a caller-chosen name.
type PageStore interface {
	// Store writes text under name and returns the path written.
	Store(name, text string) (string, error)
}
