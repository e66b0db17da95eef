package main

import (
	"context"
	"io"

	"github.com/amontero/boletin"
	"github.com/amontero/boletin/crawl"
	"github.com/amontero/boletin/vector"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Articles  boletin.ArticleService
	Gazette   boletin.GazetteClient
	Crawler   *crawl.Crawler
	Builder   *vector.Builder
	Fetcher   boletin.PageFetcher
	Extractor boletin.TextExtractor
	Pages     boletin.PageStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl  CrawlCmd  `cmd:"" help:"Download and store every article published on a date"`
	Index  IndexCmd  `cmd:"" help:"Rebuild the semantic search index from stored articles"`
	Search SearchCmd `cmd:"" help:"Search indexed articles by meaning"`
	Show   ShowCmd   `cmd:"" help:"Show a stored article"`
	Scrape ScrapeCmd `cmd:"" help:"Fetch a web page and store its visible text"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Date        string  `arg:"" optional:"" default:"2025/06/28" help:"Gazette date (YYYY/MM/DD)"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent download limit"`
	Rate        float64 `short:"r" default:"2" help:"Download rate limit in requests per second"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Natural language query"`
	Limit int    `short:"n" default:"5" help:"Maximum number of results"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Article identifier (e.g. BOE-A-2025-13297)"`
	Full bool   `help:"Include the article body text"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL  string `arg:"" help:"Page URL to fetch"`
	Name string `arg:"" help:"File name for the stored text"`
}
