package main

import (
	"fmt"

	"github.com/amontero/boletin"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	summaries, err := deps.Articles.FindArticles(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", boletin.ErrorMessage(err))
		return err
	}

	if len(summaries) == 0 {
		fmt.Fprintln(deps.Stdout, "No stored articles. Run 'boletin crawl' first.")
		return nil
	}

	result, err := deps.Builder.Update(deps.Ctx, summaries)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", boletin.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d articles: %d new vectors, %d total\n",
		result.Articles, result.Segments, result.Total)
	return nil
}
