package main

import (
	"fmt"

	"github.com/amontero/boletin"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.FetchPage(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", boletin.ErrorMessage(err))
		return err
	}

	text, err := deps.Extractor.ExtractText(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", boletin.ErrorMessage(err))
		return err
	}

	path, err := deps.Pages.Store(c.Name, text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", boletin.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s (%d bytes)\n", path, len(text))
	return nil
}
