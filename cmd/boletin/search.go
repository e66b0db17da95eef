package main

import (
	"fmt"

	"github.com/amontero/boletin"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Builder.Search(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", boletin.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results. Run 'boletin index' to build the search index.")
		return nil
	}

	for i, result := range results {
		fmt.Fprintf(deps.Stdout, "%d. %s  %s (distance %.4f)\n",
			i+1, result.Entry.ArticleID, result.Entry.Title, result.Distance)
	}
	return nil
}
