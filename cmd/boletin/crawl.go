package main

import (
	"fmt"

	"github.com/amontero/boletin"
	"github.com/amontero/boletin/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	date, err := boletin.ParseDate(c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", boletin.ErrorMessage(err))
		return err
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Fetching %d new articles\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.ArticleID, event.Error)
		case crawl.ProgressFinished:
			// Summary printed after the crawl completes
		}
	}

	result, err := deps.Crawler.CrawlDay(deps.Ctx, date, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	if result.Found == 0 {
		fmt.Fprintf(deps.Stdout, "No gazette published on %s\n", date.ISO())
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Saved %d of %d articles (%d already stored, %d failed)\n",
		result.Saved, result.Found, result.Skipped, result.Failed)
	return nil
}
